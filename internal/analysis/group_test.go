package analysis

import (
	"context"
	"errors"
	"testing"
)

func sampleItems() []LineItem {
	return []LineItem{
		{Name: "Bearing 6205", PricePerUnit: ptr(100), Supplier: "Supplier A"},
		{Name: "Bearing 6205-2RS", PricePerUnit: ptr(105), Supplier: "Supplier B"},
	}
}

func TestGroupItems_Valid(t *testing.T) {
	c := &scriptedCompleter{responses: []string{`[
		{"canonical_name":"Bearing 6205","offers":[
			{"supplier":"Supplier A","price_per_unit":100},
			{"supplier":"Supplier B","price_per_unit":105}
		]}
	]`}}
	g := NewGrouper(c, testLogger())

	groups, err := g.GroupItems(context.Background(), sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].CanonicalName != "Bearing 6205" {
		t.Errorf("unexpected canonical name %q", groups[0].CanonicalName)
	}
	if len(groups[0].Offers) != 2 {
		t.Errorf("expected 2 offers, got %d", len(groups[0].Offers))
	}
}

func TestGroupItems_SingletonGroupAllowed(t *testing.T) {
	c := &scriptedCompleter{responses: []string{`[
		{"canonical_name":"Grease tube","offers":[{"supplier":"Supplier A","price_per_unit":12}]}
	]`}}
	g := NewGrouper(c, testLogger())

	groups, err := g.GroupItems(context.Background(), sampleItems()[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || len(groups[0].Offers) != 1 {
		t.Errorf("expected a singleton group, got %+v", groups)
	}
}

func TestGroupItems_MalformedResponseFailsRun(t *testing.T) {
	c := &scriptedCompleter{responses: []string{"not an array at all"}}
	g := NewGrouper(c, testLogger())

	groups, err := g.GroupItems(context.Background(), sampleItems())
	if !errors.Is(err, ErrGroupingFailed) {
		t.Fatalf("expected ErrGroupingFailed, got %v", err)
	}
	if groups != nil {
		t.Error("expected no groups on failure")
	}
}

func TestGroupItems_EmptyCanonicalNameFailsRun(t *testing.T) {
	c := &scriptedCompleter{responses: []string{`[{"canonical_name":"  ","offers":[]}]`}}
	g := NewGrouper(c, testLogger())

	if _, err := g.GroupItems(context.Background(), sampleItems()); !errors.Is(err, ErrGroupingFailed) {
		t.Fatalf("expected ErrGroupingFailed, got %v", err)
	}
}

func TestGroupItems_NoItems(t *testing.T) {
	g := NewGrouper(&scriptedCompleter{}, testLogger())
	if _, err := g.GroupItems(context.Background(), nil); !errors.Is(err, ErrGroupingFailed) {
		t.Fatalf("expected ErrGroupingFailed, got %v", err)
	}
}

func TestGroupItems_DuplicateSupplierKeepsCheapest(t *testing.T) {
	c := &scriptedCompleter{responses: []string{`[
		{"canonical_name":"Bearing 6205","offers":[
			{"supplier":"Supplier A","price_per_unit":110},
			{"supplier":"Supplier B","price_per_unit":105},
			{"supplier":"Supplier A","price_per_unit":100}
		]}
	]`}}
	g := NewGrouper(c, testLogger())

	groups, err := g.GroupItems(context.Background(), sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offers := groups[0].Offers
	if len(offers) != 2 {
		t.Fatalf("expected duplicate supplier collapsed, got %d offers", len(offers))
	}
	// First-seen supplier order is preserved.
	if offers[0].Supplier != "Supplier A" || offers[1].Supplier != "Supplier B" {
		t.Errorf("unexpected offer order: %+v", offers)
	}
	if offers[0].PricePerUnit == nil || *offers[0].PricePerUnit != 100 {
		t.Errorf("expected cheapest duplicate kept, got %+v", offers[0].PricePerUnit)
	}
}

func TestGroupItems_DuplicatePricedBeatsUnpriced(t *testing.T) {
	c := &scriptedCompleter{responses: []string{`[
		{"canonical_name":"Bearing 6205","offers":[
			{"supplier":"Supplier A"},
			{"supplier":"Supplier A","price_per_unit":100}
		]}
	]`}}
	g := NewGrouper(c, testLogger())

	groups, err := g.GroupItems(context.Background(), sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offers := groups[0].Offers
	if len(offers) != 1 || offers[0].PricePerUnit == nil || *offers[0].PricePerUnit != 100 {
		t.Errorf("expected priced offer to win over unpriced, got %+v", offers)
	}
}
