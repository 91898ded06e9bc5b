package extractor

import (
	"fmt"
	"io"
	"strings"
)

// TextExtractor handles plain text and CSV files. The content is already
// textual; it is passed through as-is.
type TextExtractor struct{}

func (p *TextExtractor) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no extractable text in %s", filename)
	}
	return text, nil
}
