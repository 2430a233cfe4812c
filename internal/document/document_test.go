package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/crimezones/internal/model"
)

const bulletinHTML = `<!DOCTYPE html>
<html>
<head><title>Anuário</title><style>td { color: red }</style></head>
<body>
<h1>Ocorrências por bairro</h1>
<script>var x = "Centro 1 2 3";</script>
<table>
  <tr><th>BAIRRO</th><th>CVLI</th><th>CVP</th><th>FURTO</th><th>ROUBO</th><th>TOTAL</th></tr>
  <tr><td>Centro</td><td>5</td><td>3</td><td>12</td><td>8</td><td>336</td></tr>
  <tr><td>Cidade  Nova</td><td>1</td><td>2</td><td>3</td><td>4</td><td>120</td></tr>
</table>
<p>Fonte: SSP-AM</p>
</body>
</html>`

func lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func TestHTMLExtractor_TableRowsBecomeLines(t *testing.T) {
	doc, err := NewHTMLExtractor().Extract([]byte(bulletinHTML))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	got := lines(doc.Text)
	want := []string{
		"Ocorrências por bairro",
		"BAIRRO CVLI CVP FURTO ROUBO TOTAL",
		"Centro 5 3 12 8 336",
		"Cidade Nova 1 2 3 4 120",
		"Fonte: SSP-AM",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if strings.Contains(doc.Text, "var x") || strings.Contains(doc.Text, "color") {
		t.Error("script and style content leaked into text")
	}
	if doc.Pages != 1 {
		t.Errorf("expected 1 page, got %d", doc.Pages)
	}
}

func TestTextExtractor_Pages(t *testing.T) {
	tests := []struct {
		in    string
		pages int
	}{
		{"Centro 1200", 1},
		{"page one\fpage two", 2},
		{"page one\fpage two\f", 2},
		{"a\fb\fc\n", 3},
	}

	for _, tt := range tests {
		doc, err := NewTextExtractor().Extract([]byte(tt.in))
		if err != nil {
			t.Fatalf("Extract(%q) failed: %v", tt.in, err)
		}
		if doc.Pages != tt.pages {
			t.Errorf("Extract(%q) pages = %d, want %d", tt.in, doc.Pages, tt.pages)
		}
		if strings.Contains(doc.Text, "\f") {
			t.Errorf("form feeds should become line breaks: %q", doc.Text)
		}
	}
}

func TestRegistry_Extract(t *testing.T) {
	r := NewRegistry()

	doc, err := r.Extract("bulletin.html", []byte(bulletinHTML))
	if err != nil {
		t.Fatalf("Extract html failed: %v", err)
	}
	if doc.Extractor != "html" || doc.ContentType != "text/html" || doc.Source != "bulletin.html" {
		t.Errorf("unexpected document metadata %+v", doc)
	}

	doc, err = r.Extract("bulletin.txt", []byte("BAIRRO CVLI CVP FURTO ROUBO TOTAL\nCentro 5 3 12 8 336\n"))
	if err != nil {
		t.Fatalf("Extract text failed: %v", err)
	}
	if doc.Extractor != "text" || doc.ContentType != "text/plain" {
		t.Errorf("unexpected document metadata %+v", doc)
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	_, err := NewRegistry().Extract("scan.png", png)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestRegistry_NoText(t *testing.T) {
	_, err := NewRegistry().Extract("empty.html", []byte("<html><body><script>x()</script></body></html>"))
	if !errors.Is(err, ErrNoText) {
		t.Errorf("expected ErrNoText, got %v", err)
	}
}

func TestPDFExtractor_Malformed(t *testing.T) {
	_, err := NewPDFExtractor().Extract([]byte("%PDF-1.4\ngarbage"))
	if err == nil {
		t.Error("expected an error for a truncated pdf")
	}
}

type fakeExtractor struct{}

func (fakeExtractor) Name() string             { return "fake" }
func (fakeExtractor) CanHandle(ct string) bool { return ct == "text/plain" }
func (fakeExtractor) Extract([]byte) (*model.Document, error) {
	return &model.Document{Text: "fake"}, nil
}

func TestRegistry_FindOrder(t *testing.T) {
	r := &Registry{}
	r.Register(fakeExtractor{})
	r.Register(NewTextExtractor())

	e, ok := r.Find("text/plain; charset=utf-8")
	if !ok || e.Name() != "fake" {
		t.Errorf("expected the first registered extractor, got %v", e)
	}
	if _, ok := r.Find("application/pdf"); ok {
		t.Error("no extractor should handle pdf in this registry")
	}
}
