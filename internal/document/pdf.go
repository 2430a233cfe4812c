package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ppiankov/crimezones/internal/model"
)

// PDFExtractor reads the text layer of a PDF, one output line per text row
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF extractor
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Name returns the extractor name
func (e *PDFExtractor) Name() string {
	return "pdf"
}

// CanHandle accepts application/pdf
func (e *PDFExtractor) CanHandle(contentType string) bool {
	return contentType == "application/pdf"
}

// Extract reads every page. Table rows stay on one line so the strategy
// parsers see "Centro 5 3 12 8 336" rather than one token per line.
func (e *PDFExtractor) Extract(data []byte) (doc *model.Document, err error) {
	// The parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("parse pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	pages := r.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		for _, row := range rows {
			b.WriteString(joinRow(row.Content))
			b.WriteByte('\n')
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		text, err = plainText(r)
		if err != nil {
			return nil, err
		}
	}

	return &model.Document{Text: text, Pages: pages}, nil
}

// joinRow glues the text runs of a row, adding a space where the horizontal
// gap between runs is wider than a fraction of the font size.
func joinRow(runs pdf.TextHorizontal) string {
	var b strings.Builder
	var prevEnd float64
	for i, t := range runs {
		if i > 0 && t.X-prevEnd > t.FontSize*0.15 {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return b.String()
}

func plainText(r *pdf.Reader) (string, error) {
	rd, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	raw, err := io.ReadAll(rd)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return string(raw), nil
}
