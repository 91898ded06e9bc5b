package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/liinaD3210/Tender-Expert/internal/extractor"
	"github.com/liinaD3210/Tender-Expert/internal/llm"
)

// ErrNoItems means no document in the batch produced any structured data.
var ErrNoItems = errors.New("no structured data extracted from any document")

// Pipeline runs one full comparison: per-document text extraction and item
// extraction, one grouping call over the whole batch, table building, and
// insight generation, strictly in sequence. Per-document failures degrade to
// warnings; only a grouping failure (or an all-empty batch) fails the run.
type Pipeline struct {
	items   *ItemExtractor
	groups  *Grouper
	insight *InsightGenerator
	log     *slog.Logger
}

func NewPipeline(completer llm.Completer, log *slog.Logger) *Pipeline {
	return &Pipeline{
		items:   NewItemExtractor(completer, log),
		groups:  NewGrouper(completer, log),
		insight: NewInsightGenerator(completer, log),
		log:     log,
	}
}

// Run executes the comparison over the uploaded documents and returns the
// complete result of this run. On error no partial result is returned; the
// caller keeps whatever older result it holds.
func (p *Pipeline) Run(ctx context.Context, docs []Document) (*AnalysisResult, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents to analyze")
	}

	var allItems []LineItem
	var warnings []string

	for _, doc := range docs {
		supplier := SupplierFromFilename(doc.Filename)
		log := p.log.With("file", doc.Filename, "supplier", supplier)

		text, err := extractor.TextFromFile(bytes.NewReader(doc.Data), doc.Filename)
		if err != nil {
			log.Warn("document unreadable", "error", err)
			warnings = append(warnings, fmt.Sprintf("could not read document: %s", doc.Filename))
			continue
		}

		items, err := p.items.ExtractItems(ctx, text, supplier)
		if err != nil {
			log.Warn("item extraction failed", "error", err)
			warnings = append(warnings, fmt.Sprintf("no structured data extracted from: %s", doc.Filename))
			continue
		}
		if len(items) == 0 {
			log.Warn("document produced no line items")
			warnings = append(warnings, fmt.Sprintf("no structured data extracted from: %s", doc.Filename))
			continue
		}

		log.Info("extracted line items", "count", len(items))
		allItems = append(allItems, items...)
	}

	if len(allItems) == 0 {
		return nil, ErrNoItems
	}

	groups, err := p.groups.GroupItems(ctx, allItems)
	if err != nil {
		return nil, err
	}
	p.log.Info("grouped items", "items", len(allItems), "groups", len(groups))

	table, suppliers := BuildTable(groups, allItems)
	totals := TotalsBySupplier(table, suppliers)
	insight := p.insight.Summarize(ctx, table, totals)

	return &AnalysisResult{
		RunID:     uuid.NewString(),
		Table:     table,
		Suppliers: suppliers,
		Totals:    totals,
		Insight:   insight,
		Warnings:  warnings,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// SupplierFromFilename derives the supplier identifier from the uploaded
// filename: the base name without its extension.
func SupplierFromFilename(filename string) string {
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.TrimSpace(name) == "" {
		return base
	}
	return name
}
