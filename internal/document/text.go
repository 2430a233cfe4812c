package document

import (
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/crimezones/internal/model"
)

// TextExtractor passes plain text through, e.g. the output of pdftotext
type TextExtractor struct{}

// NewTextExtractor creates a plain-text extractor
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Name returns the extractor name
func (e *TextExtractor) Name() string {
	return "text"
}

// CanHandle accepts text/plain and text/csv
func (e *TextExtractor) CanHandle(contentType string) bool {
	return contentType == "text/plain" || contentType == "text/csv"
}

// Extract counts pages by form feeds, as pdftotext separates pages with them
func (e *TextExtractor) Extract(data []byte) (*model.Document, error) {
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, " ")
	}

	pages := strings.Count(text, "\f") + 1
	if strings.HasSuffix(strings.TrimRight(text, "\n"), "\f") {
		pages--
	}
	if pages < 1 {
		pages = 1
	}

	return &model.Document{Text: strings.ReplaceAll(text, "\f", "\n"), Pages: pages}, nil
}
