package analysis

import (
	"reflect"
	"testing"
)

func TestRoster_SortedDistinct(t *testing.T) {
	items := []LineItem{
		{Name: "a", Supplier: "Beta"},
		{Name: "b", Supplier: "Alpha"},
		{Name: "c", Supplier: "Beta"},
	}
	got := Roster(items)
	want := []string{"Alpha", "Beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBuildTable_ColumnPerOriginalSupplier(t *testing.T) {
	// Supplier C's items were entirely filtered out during grouping; it must
	// still get a column because the roster is computed pre-grouping.
	items := []LineItem{
		{Name: "Bearing 6205", PricePerUnit: ptr(100), Supplier: "Supplier A"},
		{Name: "Bearing 6205-2RS", PricePerUnit: ptr(105), Supplier: "Supplier B"},
		{Name: "Something odd", Supplier: "Supplier C"},
	}
	groups := []CanonicalGroup{
		{CanonicalName: "Bearing 6205", Offers: []Offer{
			{Supplier: "Supplier A", PricePerUnit: ptr(100)},
			{Supplier: "Supplier B", PricePerUnit: ptr(105)},
		}},
	}

	rows, suppliers := BuildTable(groups, items)

	want := []string{"Supplier A", "Supplier B", "Supplier C"}
	if !reflect.DeepEqual(suppliers, want) {
		t.Errorf("expected roster %v, got %v", want, suppliers)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row per group, got %d", len(rows))
	}
	if _, ok := rows[0].PriceBySupplier["Supplier C"]; ok {
		t.Error("expected missing cell for Supplier C, found a value")
	}
}

func TestBuildTable_MissingIsNotZero(t *testing.T) {
	items := []LineItem{
		{Name: "x", Supplier: "A"},
		{Name: "y", Supplier: "B"},
	}
	groups := []CanonicalGroup{
		{CanonicalName: "x", Offers: []Offer{{Supplier: "A", PricePerUnit: ptr(50)}}},
	}
	rows, suppliers := BuildTable(groups, items)

	if v, ok := rows[0].PriceBySupplier["B"]; ok {
		t.Errorf("expected B's cell missing, got %v", v)
	}
	totals := TotalsBySupplier(rows, suppliers)
	if totals["B"] != 0 {
		t.Errorf("expected B excluded from totals, got %v", totals["B"])
	}
	if totals["A"] != 50 {
		t.Errorf("expected A total 50, got %v", totals["A"])
	}
	if rows[0].CheapestSupplier != "A" {
		t.Errorf("expected cheapest A, got %q", rows[0].CheapestSupplier)
	}
}

func TestBuildTable_OfferWithoutPriceIsMissing(t *testing.T) {
	items := []LineItem{{Name: "x", Supplier: "A"}, {Name: "x2", Supplier: "B"}}
	groups := []CanonicalGroup{
		{CanonicalName: "x", Offers: []Offer{
			{Supplier: "A", PricePerUnit: ptr(10)},
			{Supplier: "B"}, // offer present, price absent
		}},
	}
	rows, _ := BuildTable(groups, items)
	if _, ok := rows[0].PriceBySupplier["B"]; ok {
		t.Error("expected priceless offer to render as missing cell")
	}
}

func TestBuildTable_RowOrderFollowsGroups(t *testing.T) {
	items := []LineItem{{Name: "x", Supplier: "A"}}
	groups := []CanonicalGroup{
		{CanonicalName: "Zeta", Offers: []Offer{{Supplier: "A", PricePerUnit: ptr(1)}}},
		{CanonicalName: "Alpha", Offers: []Offer{{Supplier: "A", PricePerUnit: ptr(2)}}},
	}
	rows, _ := BuildTable(groups, items)
	if rows[0].ItemName != "Zeta" || rows[1].ItemName != "Alpha" {
		t.Errorf("expected group order preserved, got %q then %q", rows[0].ItemName, rows[1].ItemName)
	}
}

func TestBuildTable_Idempotent(t *testing.T) {
	items := []LineItem{
		{Name: "Bearing 6205", PricePerUnit: ptr(100), Supplier: "Supplier A"},
		{Name: "Bearing 6205-2RS", PricePerUnit: ptr(105), Supplier: "Supplier B"},
	}
	groups := []CanonicalGroup{
		{CanonicalName: "Bearing 6205", Offers: []Offer{
			{Supplier: "Supplier A", PricePerUnit: ptr(100)},
			{Supplier: "Supplier B", PricePerUnit: ptr(105)},
		}},
	}

	rows1, sup1 := BuildTable(groups, items)
	rows2, sup2 := BuildTable(groups, items)
	if !reflect.DeepEqual(rows1, rows2) || !reflect.DeepEqual(sup1, sup2) {
		t.Error("expected identical output on repeated builds")
	}
}

func TestBuildTable_BearingScenario(t *testing.T) {
	items := []LineItem{
		{Name: "Bearing 6205", PricePerUnit: ptr(100), Supplier: "Supplier A"},
		{Name: "Bearing 6205-2RS", PricePerUnit: ptr(105), Supplier: "Supplier B"},
	}
	groups := []CanonicalGroup{
		{CanonicalName: "Bearing 6205-2RS", Offers: []Offer{
			{Supplier: "Supplier A", PricePerUnit: ptr(100)},
			{Supplier: "Supplier B", PricePerUnit: ptr(105)},
		}},
	}

	rows, suppliers := BuildTable(groups, items)
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0].PriceBySupplier["Supplier A"] != 100 || rows[0].PriceBySupplier["Supplier B"] != 105 {
		t.Errorf("unexpected cells: %+v", rows[0].PriceBySupplier)
	}

	totals := TotalsBySupplier(rows, suppliers)
	if totals["Supplier A"] != 100 || totals["Supplier B"] != 105 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if rows[0].CheapestSupplier != "Supplier A" {
		t.Errorf("expected Supplier A cheapest, got %q", rows[0].CheapestSupplier)
	}
}
