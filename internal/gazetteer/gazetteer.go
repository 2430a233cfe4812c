// Package gazetteer holds the fixed table of known neighborhoods and resolves
// free-text names found in bulletins against it.
package gazetteer

import (
	"fmt"
	"os"

	"github.com/ppiankov/crimezones/internal/model"
	"github.com/ppiankov/crimezones/internal/textnorm"
	"gopkg.in/yaml.v3"
)

// Gazetteer is an immutable, ordered lookup of canonical neighborhood names.
// Iteration order is definition order so resolution ties are stable.
type Gazetteer struct {
	entries    []model.GazetteerEntry
	normalized []string // normalized[i] == textnorm.Normalize(entries[i].Key)
	byKey      map[string]int
}

// New builds a gazetteer from entries, keeping their order
func New(entries []model.GazetteerEntry) (*Gazetteer, error) {
	g := &Gazetteer{
		entries:    make([]model.GazetteerEntry, 0, len(entries)),
		normalized: make([]string, 0, len(entries)),
		byKey:      make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("entry %d: empty key", i)
		}
		if !e.Zone.Valid() {
			return nil, fmt.Errorf("entry %q: unknown zone %q", e.Key, e.Zone)
		}
		if e.RadiusMeters <= 0 {
			return nil, fmt.Errorf("entry %q: radius must be positive", e.Key)
		}
		if _, dup := g.byKey[e.Key]; dup {
			return nil, fmt.Errorf("entry %q: duplicate key", e.Key)
		}
		g.byKey[e.Key] = len(g.entries)
		g.entries = append(g.entries, e)
		g.normalized = append(g.normalized, textnorm.Normalize(e.Key))
	}

	return g, nil
}

// Len returns the number of entries
func (g *Gazetteer) Len() int {
	return len(g.entries)
}

// Entries returns a copy of the entries in definition order
func (g *Gazetteer) Entries() []model.GazetteerEntry {
	out := make([]model.GazetteerEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Lookup returns the entry for an exact canonical key
func (g *Gazetteer) Lookup(key string) (model.GazetteerEntry, bool) {
	i, ok := g.byKey[key]
	if !ok {
		return model.GazetteerEntry{}, false
	}
	return g.entries[i], true
}

// file is the on-disk YAML layout of a gazetteer
type file struct {
	Entries []model.GazetteerEntry `yaml:"entries"`
}

// LoadFile reads a YAML gazetteer. Entry order in the file is the resolution order.
func LoadFile(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gazetteer: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gazetteer %s: %w", path, err)
	}
	if len(f.Entries) == 0 {
		return nil, fmt.Errorf("gazetteer %s has no entries", path)
	}

	return New(f.Entries)
}

// Load returns the gazetteer at path, or the built-in Manaus table when path is empty
func Load(path string) (*Gazetteer, error) {
	if path == "" {
		return Manaus(), nil
	}
	return LoadFile(path)
}
