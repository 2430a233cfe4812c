package gazetteer

import (
	"strings"

	"github.com/ppiankov/crimezones/internal/model"
	"github.com/ppiankov/crimezones/internal/textnorm"
)

// Empirically tuned; kept as-is rather than re-derived.
const (
	DefaultContainmentMinLen = 5    // shorter side of a containment match
	DefaultFuzzyMinLen       = 4    // shorter side of a fuzzy match
	DefaultFuzzyThreshold    = 0.85 // character-presence ratio
)

// Tier identifies which step of the cascade produced a match
type Tier string

const (
	TierNone        Tier = ""
	TierExact       Tier = "exact"
	TierContainment Tier = "containment"
	TierFuzzy       Tier = "fuzzy"
)

// Options tunes the resolver cascade
type Options struct {
	ContainmentMinLen int
	FuzzyMinLen       int
	FuzzyThreshold    float64
}

// DefaultOptions returns the standard thresholds
func DefaultOptions() Options {
	return Options{
		ContainmentMinLen: DefaultContainmentMinLen,
		FuzzyMinLen:       DefaultFuzzyMinLen,
		FuzzyThreshold:    DefaultFuzzyThreshold,
	}
}

// Match is a successful resolution
type Match struct {
	Entry model.GazetteerEntry
	Tier  Tier
}

// Resolver maps free-text names to gazetteer entries
type Resolver struct {
	g    *Gazetteer
	opts Options
}

// NewResolver creates a resolver over g. Zero-valued options fall back to defaults.
func NewResolver(g *Gazetteer, opts Options) *Resolver {
	def := DefaultOptions()
	if opts.ContainmentMinLen <= 0 {
		opts.ContainmentMinLen = def.ContainmentMinLen
	}
	if opts.FuzzyMinLen <= 0 {
		opts.FuzzyMinLen = def.FuzzyMinLen
	}
	if opts.FuzzyThreshold <= 0 {
		opts.FuzzyThreshold = def.FuzzyThreshold
	}
	return &Resolver{g: g, opts: opts}
}

// Gazetteer returns the underlying table
func (r *Resolver) Gazetteer() *Gazetteer {
	return r.g
}

// Resolve runs the exact, containment, fuzzy cascade; first match wins.
func (r *Resolver) Resolve(rawName string) (model.GazetteerEntry, bool) {
	m, ok := r.Match(rawName)
	return m.Entry, ok
}

// Match is Resolve with the matching tier reported
func (r *Resolver) Match(rawName string) (Match, bool) {
	n := textnorm.Normalize(rawName)
	if n == "" {
		return Match{}, false
	}

	for i, key := range r.g.normalized {
		if key == n {
			return Match{Entry: r.g.entries[i], Tier: TierExact}, true
		}
	}

	for i, key := range r.g.normalized {
		if r.contains(n, key) {
			return Match{Entry: r.g.entries[i], Tier: TierContainment}, true
		}
	}

	for i, key := range r.g.normalized {
		if r.overlaps(n, key) {
			return Match{Entry: r.g.entries[i], Tier: TierFuzzy}, true
		}
	}

	return Match{}, false
}

// contains reports whether either string contains the other, with the
// contained side long enough that short words don't match everything.
func (r *Resolver) contains(name, key string) bool {
	if len(key) >= r.opts.ContainmentMinLen && strings.Contains(name, key) {
		return true
	}
	return len(name) >= r.opts.ContainmentMinLen && strings.Contains(key, name)
}

// overlaps is an order-insensitive character-presence similarity: the share
// of characters of the shorter string found anywhere in the longer one.
// It favors recall, so a short key can match a long unrelated line; such
// names still need a well-formed numeric row to become a record.
func (r *Resolver) overlaps(name, key string) bool {
	longer, shorter := name, key
	if len(key) >= len(name) {
		longer, shorter = key, name
	}
	if len(shorter) < r.opts.FuzzyMinLen {
		return false
	}

	return presence(shorter, longer) >= r.opts.FuzzyThreshold
}

// presence returns the fraction of bytes of a that occur somewhere in b
func presence(a, b string) float64 {
	matches := 0
	for i := 0; i < len(a); i++ {
		if strings.IndexByte(b, a[i]) >= 0 {
			matches++
		}
	}
	return float64(matches) / float64(len(a))
}
