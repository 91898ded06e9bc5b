package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/liinaD3210/Tender-Expert/internal/llm"
)

// ErrGroupingFailed means the grouping response failed validation. Grouping
// is all-or-nothing: no comparison table can be built from ungrounded items,
// so this error is run-fatal.
var ErrGroupingFailed = errors.New("grouping failed")

// Grouper clusters the combined line items of all suppliers into canonical
// groups in a single semantic-capability call.
type Grouper struct {
	llm llm.Completer
	log *slog.Logger
}

func NewGrouper(completer llm.Completer, log *slog.Logger) *Grouper {
	return &Grouper{llm: completer, log: log}
}

// GroupItems submits the whole batch in one call and validates the returned
// structure. An item quoted by only one supplier still forms its own
// singleton group. Prices are carried through as returned, never re-derived.
func (g *Grouper) GroupItems(ctx context.Context, items []LineItem) ([]CanonicalGroup, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to group", ErrGroupingFailed)
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: marshal items: %v", ErrGroupingFailed, err)
	}

	raw, err := g.llm.Complete(ctx, buildGroupPrompt(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGroupingFailed, err)
	}

	groups, err := llm.DecodeArray[CanonicalGroup](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGroupingFailed, err)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: response contains no groups", ErrGroupingFailed)
	}

	for i := range groups {
		groups[i].CanonicalName = strings.TrimSpace(groups[i].CanonicalName)
		if groups[i].CanonicalName == "" {
			return nil, fmt.Errorf("%w: group %d has no canonical name", ErrGroupingFailed, i)
		}
		groups[i].Offers = collapseOffers(groups[i].Offers, g.log, groups[i].CanonicalName)
	}
	return groups, nil
}

// collapseOffers enforces at-most-one-offer-per-supplier per group. When a
// supplier contributed several line items that landed in the same group, the
// cheapest priced offer wins; an offer with a price beats one without.
// First-seen order of suppliers is preserved.
func collapseOffers(offers []Offer, log *slog.Logger, group string) []Offer {
	out := make([]Offer, 0, len(offers))
	index := make(map[string]int, len(offers))

	for _, o := range offers {
		o.Supplier = strings.TrimSpace(o.Supplier)
		if o.Supplier == "" {
			continue
		}
		i, seen := index[o.Supplier]
		if !seen {
			index[o.Supplier] = len(out)
			out = append(out, o)
			continue
		}
		log.Warn("duplicate supplier offer in group, keeping cheapest", "group", group, "supplier", o.Supplier)
		kept := out[i]
		switch {
		case kept.PricePerUnit == nil && o.PricePerUnit != nil:
			out[i] = o
		case kept.PricePerUnit != nil && o.PricePerUnit != nil && *o.PricePerUnit < *kept.PricePerUnit:
			out[i] = o
		}
	}
	return out
}
