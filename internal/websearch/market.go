package websearch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/liinaD3210/Tender-Expert/internal/llm"
)

const queryRewritePrompt = `You are a procurement assistant.
Your task is to craft the ideal Google search query to find the best price for a product.
Add keywords such as "buy", "price", "cost".

Product name: %q

Respond with only the query string. No extra words.`

const offerExtractionPrompt = `You are an analyst studying search-engine results.
Your task is to find commercial offers for the product %q in the provided search snippets.

INSTRUCTIONS:
1. Examine every search result block.
2. If a snippet mentions a price and a company or shop name, extract them.
3. The price must be a number.
4. If no price is discernible, skip that result.
5. Return ONLY a JSON array, one element per offer found.

Example JSON format:
[
  {
    "supplier_name": "PromSnab LLC",
    "price": 15200.50,
    "link": "https://somesite.com/product",
    "snippet": "Short description of the offer with the price..."
  }
]

TEXT TO ANALYZE (SEARCH RESULTS):
---
%s
---`

// MarketOffer is one priced offer extracted from a search snippet.
type MarketOffer struct {
	SupplierName string   `json:"supplier_name"`
	Price        *float64 `json:"price,omitempty"`
	Link         string   `json:"link"`
	Snippet      string   `json:"snippet"`
}

// MarketReport is the outcome of one market search. Found is false when the
// pipeline terminated empty at any stage. Offers are sorted ascending by
// price with priceless offers last. AveragePrice is nil when no offer had a
// price greater than zero.
type MarketReport struct {
	ItemName     string        `json:"item_name"`
	Query        string        `json:"query"`
	Found        bool          `json:"found"`
	Offers       []MarketOffer `json:"offers,omitempty"`
	AveragePrice *float64      `json:"average_price,omitempty"`
}

// Market runs the query-rewriting → search → offer-extraction → aggregation
// pipeline for a single item name.
type Market struct {
	llm         llm.Completer
	search      Searcher
	resultCount int
	log         *slog.Logger
}

func NewMarket(completer llm.Completer, search Searcher, resultCount int, log *slog.Logger) *Market {
	return &Market{llm: completer, search: search, resultCount: resultCount, log: log}
}

// Lookup estimates the market price for an item. Every stage degrades rather
// than fails: a bad query rewrite falls back to the raw item name, and an
// empty search or unextractable snippets end the pipeline with Found=false.
func (m *Market) Lookup(ctx context.Context, itemName string) (*MarketReport, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, fmt.Errorf("item name is required")
	}

	query := m.rewriteQuery(ctx, itemName)
	report := &MarketReport{ItemName: itemName, Query: query}

	results, err := m.search.Search(ctx, query, m.resultCount)
	if err != nil {
		m.log.Warn("web search failed", "query", query, "error", err)
		return report, nil
	}
	if len(results) == 0 {
		m.log.Info("web search returned no results", "query", query)
		return report, nil
	}

	offers := m.extractOffers(ctx, results, itemName)
	if len(offers) == 0 {
		return report, nil
	}

	sortOffers(offers)
	report.Found = true
	report.Offers = offers
	report.AveragePrice = averagePrice(offers)
	return report, nil
}

// rewriteQuery enriches the item name with purchase-intent keywords. On any
// failure the raw item name is used; the rewrite never blocks the pipeline.
func (m *Market) rewriteQuery(ctx context.Context, itemName string) string {
	raw, err := m.llm.Complete(ctx, fmt.Sprintf(queryRewritePrompt, itemName))
	if err != nil {
		m.log.Warn("query rewrite failed, searching as-is", "item", itemName, "error", err)
		return itemName
	}
	query := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
	if query == "" {
		return itemName
	}
	// Keep it to one line; models occasionally append commentary.
	if i := strings.IndexByte(query, '\n'); i >= 0 {
		query = strings.TrimSpace(query[:i])
	}
	return query
}

// extractOffers asks the semantic capability to pull priced offers out of the
// snippets. Malformed output yields an empty offer list; reported, not fatal.
func (m *Market) extractOffers(ctx context.Context, results []Result, itemName string) []MarketOffer {
	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "--- Search result #%d ---\n", i+1)
		fmt.Fprintf(&sb, "Title: %s\n", r.Title)
		fmt.Fprintf(&sb, "Link: %s\n", r.Link)
		fmt.Fprintf(&sb, "Snippet: %s\n\n", r.Snippet)
	}

	raw, err := m.llm.Complete(ctx, fmt.Sprintf(offerExtractionPrompt, itemName, sb.String()))
	if err != nil {
		m.log.Warn("offer extraction failed", "item", itemName, "error", err)
		return nil
	}
	offers, err := llm.DecodeArray[MarketOffer](raw)
	if err != nil {
		m.log.Warn("offer extraction returned malformed data", "item", itemName, "error", err)
		return nil
	}

	out := offers[:0]
	for _, o := range offers {
		o.SupplierName = strings.TrimSpace(o.SupplierName)
		if o.SupplierName == "" {
			o.SupplierName = "Unknown supplier"
		}
		out = append(out, o)
	}
	return out
}

// sortOffers orders offers ascending by price; offers without a price last.
func sortOffers(offers []MarketOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i].Price, offers[j].Price
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

// averagePrice is the arithmetic mean of all prices strictly greater than
// zero, or nil when there are none.
func averagePrice(offers []MarketOffer) *float64 {
	var sum float64
	var n int
	for _, o := range offers {
		if o.Price != nil && *o.Price > 0 {
			sum += *o.Price
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
