// Package textnorm folds free-form bulletin text into comparable forms.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes and drops combining diacritical marks.
// The chain is rebuilt per call because transform.Transformer values carry state.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// StripAccents removes diacritics and leaves everything else untouched
func StripAccents(s string) string {
	out, _, err := transform.String(stripMarks(), s)
	if err != nil {
		return s
	}
	return out
}

// Normalize lower-cases, strips accents, maps anything outside [a-z0-9 ] to a
// space and collapses whitespace. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	folded := StripAccents(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// Slugify turns a name into an identifier: "São José" -> "sao-jose"
func Slugify(name string) string {
	return strings.ReplaceAll(Normalize(name), " ", "-")
}

// Fold strips accents and upper-cases without touching punctuation or
// whitespace, so token positions are preserved.
func Fold(s string) string {
	return strings.ToUpper(StripAccents(s))
}

// TitleCase capitalizes the first rune of every space-separated word
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
