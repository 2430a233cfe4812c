package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/crimezones/internal/model"
)

// tsID finds zone identifiers in a generated TypeScript module
var tsID = regexp.MustCompile(`id:\s*"([^"]+)"`)

type idDocument struct {
	Zones []struct {
		ID string `json:"id" yaml:"id"`
	} `json:"zones" yaml:"zones"`
}

// ReadIDs returns the zone identifiers of a previous artifact in file order
func ReadIDs(r io.Reader, f Format) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var doc idDocument
	switch f {
	case FormatTS:
		var ids []string
		for _, m := range tsID.FindAllSubmatch(data, -1) {
			ids = append(ids, string(m[1]))
		}
		return ids, nil
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json artifact: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml artifact: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown artifact format %q", f)
	}

	ids := make([]string, 0, len(doc.Zones))
	for _, z := range doc.Zones {
		if z.ID != "" {
			ids = append(ids, z.ID)
		}
	}
	return ids, nil
}

// Merge describes how a new zone list relates to a previous artifact.
// It is informational: the new artifact always holds exactly the new zones.
type Merge struct {
	Previous  int      `json:"previous"`
	Preserved []string `json:"preserved"` // In the previous artifact, absent from this run
	Refreshed []string `json:"refreshed"` // In both
	Added     []string `json:"added"`     // New in this run
}

// MergeReport compares previous identifiers against the new zones
func MergeReport(previousIDs []string, zones []model.RiskZone) Merge {
	current := make(map[string]bool, len(zones))
	for _, z := range zones {
		current[z.ID] = true
	}
	previous := make(map[string]bool, len(previousIDs))

	m := Merge{Previous: len(previousIDs)}
	for _, id := range previousIDs {
		if previous[id] {
			continue
		}
		previous[id] = true
		if current[id] {
			m.Refreshed = append(m.Refreshed, id)
		} else {
			m.Preserved = append(m.Preserved, id)
		}
	}
	for _, z := range zones {
		if !previous[z.ID] {
			m.Added = append(m.Added, z.ID)
		}
	}
	return m
}
