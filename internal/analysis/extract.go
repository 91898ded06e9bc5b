package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/liinaD3210/Tender-Expert/internal/llm"
)

// ItemExtractor turns one supplier's document text into structured line
// items via the semantic capability.
type ItemExtractor struct {
	llm llm.Completer
	log *slog.Logger
}

func NewItemExtractor(completer llm.Completer, log *slog.Logger) *ItemExtractor {
	return &ItemExtractor{llm: completer, log: log}
}

// ExtractItems extracts line items from document text and stamps every item
// with the given supplier identifier. A malformed model response is an error;
// the caller degrades it to a contributing-zero-items warning, never a batch
// abort.
func (e *ItemExtractor) ExtractItems(ctx context.Context, text, supplier string) ([]LineItem, error) {
	if strings.TrimSpace(supplier) == "" {
		return nil, fmt.Errorf("supplier identifier is required")
	}

	raw, err := e.llm.Complete(ctx, buildExtractPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("extract items for %s: %w", supplier, err)
	}

	items, err := llm.DecodeArray[LineItem](raw)
	if err != nil {
		return nil, fmt.Errorf("extract items for %s: %w", supplier, err)
	}

	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" {
			continue
		}
		if hasNegative(it.Quantity) || hasNegative(it.PricePerUnit) || hasNegative(it.TotalPrice) {
			e.log.Warn("dropping item with negative numeric field", "supplier", supplier, "item", it.Name)
			continue
		}
		// The supplier identity comes from the source document, regardless of
		// anything the model put in the field.
		it.Supplier = supplier
		out = append(out, it)
	}
	return out, nil
}

func hasNegative(v *float64) bool {
	return v != nil && *v < 0
}
