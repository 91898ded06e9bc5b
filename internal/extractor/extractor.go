package extractor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor converts raw document bytes into plain text for the
// language-model stages. Implementations are format-specific.
type Extractor interface {
	Extract(r io.Reader, filename string) (string, error)
}

// UnreadableError signals that a document in a supported format could not be
// parsed. The caller reports it per-file; it never aborts a batch.
type UnreadableError struct {
	Filename string
	Err      error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("unreadable document %s: %v", e.Filename, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

// SupportedExtensions lists file extensions with a dedicated extractor.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".xlsx":     true,
	".xls":      true,
	".txt":      true,
	".csv":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// ForFile returns the extractor for a filename, or false when the format has
// no dedicated extractor.
func ForFile(filename string) (Extractor, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return &PDFExtractor{}, true
	case ".docx":
		return &DOCXExtractor{}, true
	case ".xlsx", ".xls":
		return &SpreadsheetExtractor{}, true
	case ".txt", ".csv":
		return &TextExtractor{}, true
	case ".md", ".markdown":
		return &MarkdownExtractor{}, true
	case ".html", ".htm":
		return &HTMLExtractor{}, true
	default:
		return nil, false
	}
}

// IsSupportedExtension checks if a file extension has a dedicated extractor.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// TextFromFile extracts plain text from a document. An unsupported format
// yields a descriptive placeholder string rather than an error, so the file
// still shows up in the run report instead of silently disappearing. A parse
// failure in a supported format returns an UnreadableError.
func TextFromFile(r io.Reader, filename string) (string, error) {
	ex, ok := ForFile(filename)
	if !ok {
		return fmt.Sprintf("The file format %s is not supported.", filepath.Ext(filename)), nil
	}
	text, err := ex.Extract(r, filename)
	if err != nil {
		return "", &UnreadableError{Filename: filename, Err: err}
	}
	return text, nil
}
