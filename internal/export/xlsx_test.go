package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/liinaD3210/Tender-Expert/internal/analysis"
)

func sampleResult() *analysis.AnalysisResult {
	return &analysis.AnalysisResult{
		RunID:     "run-1",
		Suppliers: []string{"Supplier A", "Supplier B"},
		Table: []analysis.ComparisonRow{
			{
				ItemName:         "Bearing 6205-2RS",
				PriceBySupplier:  map[string]float64{"Supplier A": 100, "Supplier B": 105},
				CheapestSupplier: "Supplier A",
			},
			{
				ItemName:         "Grease Litol-24",
				PriceBySupplier:  map[string]float64{"Supplier B": 40},
				CheapestSupplier: "Supplier B",
			},
		},
		Totals: map[string]float64{"Supplier A": 100, "Supplier B": 145},
	}
}

func TestWorkbook_RoundTrip(t *testing.T) {
	data, err := Workbook(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 2 items + total, got %d rows", len(rows))
	}
	if rows[0][0] != "Item" || rows[0][1] != "Supplier A" || rows[0][2] != "Supplier B" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Bearing 6205-2RS" || rows[1][1] != "100" || rows[1][2] != "105" {
		t.Errorf("unexpected first item row: %v", rows[1])
	}
	if rows[3][0] != "TOTAL" || rows[3][1] != "100" || rows[3][2] != "145" {
		t.Errorf("unexpected totals row: %v", rows[3])
	}
}

func TestWorkbook_MissingCellStaysBlank(t *testing.T) {
	data, err := Workbook(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	// Grease has no Supplier A offer; the cell must be empty, not zero.
	val, err := f.GetCellValue(sheetName, "B3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if val != "" {
		t.Errorf("expected blank cell for missing offer, got %q", val)
	}
}

func TestWorkbook_DefaultSheetRemoved(t *testing.T) {
	data, err := Workbook(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != sheetName {
		t.Errorf("expected single %q sheet, got %v", sheetName, sheets)
	}
}
