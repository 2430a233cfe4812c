// Package document turns bulletin bytes into plain text with a page count.
package document

import (
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/ppiankov/crimezones/internal/model"
)

var (
	// ErrUnsupported is returned when no extractor handles the detected type
	ErrUnsupported = errors.New("unsupported document type")
	// ErrNoText is returned when a document decodes but carries no text layer
	ErrNoText = errors.New("document has no extractable text")
)

// Extractor converts one document type to text
type Extractor interface {
	// Name returns the extractor name
	Name() string

	// CanHandle reports whether the extractor reads this MIME type (no parameters)
	CanHandle(contentType string) bool

	// Extract returns the text and page count of data
	Extract(data []byte) (*model.Document, error)
}

// Registry picks an extractor by detected content type
type Registry struct {
	extractors []Extractor
}

// NewRegistry creates a registry with the PDF, HTML and plain-text extractors
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(NewPDFExtractor())
	r.Register(NewHTMLExtractor())
	r.Register(NewTextExtractor())
	return r
}

// Register appends an extractor; earlier registrations win
func (r *Registry) Register(e Extractor) {
	r.extractors = append(r.extractors, e)
}

// Detect sniffs the MIME type of data, without parameters
func Detect(data []byte) string {
	return baseType(mimetype.Detect(data).String())
}

// Find returns the first extractor accepting contentType
func (r *Registry) Find(contentType string) (Extractor, bool) {
	ct := baseType(contentType)
	for _, e := range r.extractors {
		if e.CanHandle(ct) {
			return e, true
		}
	}
	return nil, false
}

// Extract sniffs data and runs the matching extractor.
// source is recorded on the document for reporting only.
func (r *Registry) Extract(source string, data []byte) (*model.Document, error) {
	ct := Detect(data)
	e, ok := r.Find(ct)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ct)
	}

	doc, err := e.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("%s extractor: %w", e.Name(), err)
	}
	if strings.TrimSpace(doc.Text) == "" {
		return nil, fmt.Errorf("%s extractor: %w", e.Name(), ErrNoText)
	}

	doc.Source = source
	doc.ContentType = ct
	doc.Extractor = e.Name()
	if doc.Pages < 1 {
		doc.Pages = 1
	}
	return doc, nil
}

func baseType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	}
	return mt
}
