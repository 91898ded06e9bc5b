package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/liinaD3210/Tender-Expert/internal/analysis"
)

const sheetName = "Comparison"

// Workbook renders a comparison result as a single-sheet XLSX. Missing prices
// stay blank; writing zeros would misrepresent "no offer" as "free".
func Workbook(result *analysis.AnalysisResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheetName, cell, v)
	}

	write(1, 1, "Item")
	for i, s := range result.Suppliers {
		write(i+2, 1, s)
	}

	row := 2
	for _, r := range result.Table {
		write(1, row, r.ItemName)
		for i, s := range result.Suppliers {
			if price, ok := r.PriceBySupplier[s]; ok {
				write(i+2, row, price)
			}
		}
		row++
	}

	write(1, row, "TOTAL")
	for i, s := range result.Suppliers {
		if total, ok := result.Totals[s]; ok && total > 0 {
			write(i+2, row, total)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 42)
	if len(result.Suppliers) > 0 {
		last, _ := excelize.ColumnNumberToName(len(result.Suppliers) + 1)
		_ = f.SetColWidth(sheetName, "B", last, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
