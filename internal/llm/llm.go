package llm

import "context"

// Completer is the semantic capability: natural-language instruction in,
// free-form text out. The analysis and websearch stages depend only on this
// interface so that model-backed and scripted implementations are
// interchangeable.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
