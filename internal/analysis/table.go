package analysis

import "sort"

// Roster returns the sorted distinct supplier identifiers of the original
// line item collection. It is computed pre-grouping so that every supplier
// gets a table column even if none of its items survived grouping.
func Roster(items []LineItem) []string {
	seen := make(map[string]bool, len(items))
	var suppliers []string
	for _, it := range items {
		if it.Supplier == "" || seen[it.Supplier] {
			continue
		}
		seen[it.Supplier] = true
		suppliers = append(suppliers, it.Supplier)
	}
	sort.Strings(suppliers)
	return suppliers
}

// BuildTable produces one comparison row per canonical group, in group order,
// with one column per roster supplier. A supplier absent from a group's
// offers (or present without a price) yields no cell entry: missing, not
// zero; a zero would corrupt cheapest-cell and total computations.
func BuildTable(groups []CanonicalGroup, items []LineItem) ([]ComparisonRow, []string) {
	suppliers := Roster(items)

	rows := make([]ComparisonRow, 0, len(groups))
	for _, g := range groups {
		offers := make(map[string]*float64, len(g.Offers))
		for _, o := range g.Offers {
			offers[o.Supplier] = o.PricePerUnit
		}

		row := ComparisonRow{
			ItemName:        g.CanonicalName,
			PriceBySupplier: make(map[string]float64, len(suppliers)),
		}
		for _, s := range suppliers {
			price, ok := offers[s]
			if !ok || price == nil {
				continue
			}
			row.PriceBySupplier[s] = *price
			if row.CheapestSupplier == "" || *price < row.PriceBySupplier[row.CheapestSupplier] {
				row.CheapestSupplier = s
			}
		}
		rows = append(rows, row)
	}
	return rows, suppliers
}

// TotalsBySupplier sums each supplier's present cells. Missing cells are
// excluded from the sum entirely.
func TotalsBySupplier(rows []ComparisonRow, suppliers []string) map[string]float64 {
	totals := make(map[string]float64, len(suppliers))
	for _, s := range suppliers {
		totals[s] = 0
	}
	for _, row := range rows {
		for s, price := range row.PriceBySupplier {
			totals[s] += price
		}
	}
	return totals
}
