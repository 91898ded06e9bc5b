package analysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/liinaD3210/Tender-Expert/internal/llm"
)

// FallbackInsight is returned whenever the insight cannot be generated.
const FallbackInsight = "The analytical summary could not be generated."

// InsightGenerator produces the natural-language purchasing recommendation
// for a finished comparison.
type InsightGenerator struct {
	llm llm.Completer
	log *slog.Logger
}

func NewInsightGenerator(completer llm.Completer, log *slog.Logger) *InsightGenerator {
	return &InsightGenerator{llm: completer, log: log}
}

// Summarize serializes the comparison data verbatim into the prompt and
// returns the model's summary. Any failure yields the fixed fallback text;
// insight generation never fails a run.
func (g *InsightGenerator) Summarize(ctx context.Context, rows []ComparisonRow, totals map[string]float64) string {
	tableJSON, err := json.Marshal(rows)
	if err != nil {
		g.log.Error("marshal comparison table for insight", "error", err)
		return FallbackInsight
	}
	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		g.log.Error("marshal totals for insight", "error", err)
		return FallbackInsight
	}

	text, err := g.llm.Complete(ctx, buildInsightPrompt(string(tableJSON), string(totalsJSON)))
	if err != nil {
		g.log.Warn("insight generation failed, using fallback", "error", err)
		return FallbackInsight
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackInsight
	}
	return text
}
