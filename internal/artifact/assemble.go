// Package artifact orders classified zones and serializes them into the data
// file consumed by the map application.
package artifact

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ppiankov/crimezones/internal/model"
)

// Assemble orders zones by canonical zone group, then by display name using
// Brazilian Portuguese collation. The input slice is not modified.
func Assemble(zones []model.RiskZone) []model.RiskZone {
	out := make([]model.RiskZone, len(zones))
	copy(out, zones)

	// Collators keep internal buffers, one per call
	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Zone.Rank(), out[j].Zone.Rank()
		if ri != rj {
			return ri < rj
		}
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// Group is a run of zones sharing one zone label
type Group struct {
	Zone  model.Zone
	Zones []model.RiskZone
}

// GroupByZone splits assembled zones into consecutive groups
func GroupByZone(zones []model.RiskZone) []Group {
	var groups []Group
	for _, z := range zones {
		if n := len(groups); n > 0 && groups[n-1].Zone == z.Zone {
			groups[n-1].Zones = append(groups[n-1].Zones, z)
			continue
		}
		groups = append(groups, Group{Zone: z.Zone, Zones: []model.RiskZone{z}})
	}
	return groups
}
