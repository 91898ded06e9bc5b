package analysis

import "time"

// LineItem is one product row extracted from a single supplier's quotation.
// Supplier is stamped by the extraction stage from the source document
// identity, never taken from the model output. Optional numeric fields are
// nil when the document does not state them; they are never fabricated.
type LineItem struct {
	Name         string   `json:"name"`
	SKU          string   `json:"sku,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	PricePerUnit *float64 `json:"price_per_unit,omitempty"`
	TotalPrice   *float64 `json:"total_price,omitempty"`
	Supplier     string   `json:"supplier"`
}

// Offer is a single supplier's quotation for a canonical group's product.
type Offer struct {
	Supplier     string   `json:"supplier"`
	PricePerUnit *float64 `json:"price_per_unit,omitempty"`
}

// CanonicalGroup unites line items from different suppliers that refer to the
// same real-world product under one display name. A group holds at most one
// offer per supplier; offer order is insertion order from the grouping
// response.
type CanonicalGroup struct {
	CanonicalName string  `json:"canonical_name"`
	Offers        []Offer `json:"offers"`
}

// ComparisonRow is one comparison-table row. PriceBySupplier has an entry
// only for suppliers that offered the product; a missing entry renders as a
// blank cell, never as zero. CheapestSupplier is the supplier with the lowest
// present price in this row, empty when no row cell has a price.
type ComparisonRow struct {
	ItemName         string             `json:"item_name"`
	PriceBySupplier  map[string]float64 `json:"price_by_supplier"`
	CheapestSupplier string             `json:"cheapest_supplier,omitempty"`
}

// AnalysisResult is the session-level aggregate of one successful run. It is
// created whole and replaced whole on the next run, never partially mutated.
type AnalysisResult struct {
	RunID     string             `json:"run_id"`
	Table     []ComparisonRow    `json:"table"`
	Suppliers []string           `json:"suppliers"`
	Totals    map[string]float64 `json:"totals_by_supplier"`
	Insight   string             `json:"insight"`
	Warnings  []string           `json:"warnings,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// Document is one uploaded supplier quotation. The supplier identifier for
// all items extracted from it is the filename without its extension.
type Document struct {
	Filename string
	Data     []byte
}
