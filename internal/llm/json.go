package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// StripCodeFence removes a surrounding markdown code fence, if any. Models
// routinely wrap JSON answers in ```json fences despite being told not to.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFenceRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

// DecodeArray strips any code fence from a model response and parses it as a
// JSON array of T. Anything that is not a well-formed array of the expected
// record shape is an error; callers treat that as an empty/fallback result.
func DecodeArray[T any](raw string) ([]T, error) {
	text := StripCodeFence(raw)
	var out []T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parse response json: %w (raw: %s)", err, truncate(text, 200))
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
