// Package risk turns a deduplicated neighborhood record into a risk zone.
//
// Tiers, crime-type labels, safety tips and peak hours all come from ordered
// rule tables evaluated first-match-wins. Tips and hours are presentation
// heuristics, not statistics.
package risk

import (
	"fmt"

	"github.com/ppiankov/crimezones/internal/model"
	"github.com/ppiankov/crimezones/internal/textnorm"
)

// Crime type labels carried into the artifact
const (
	LabelHomicide    = "Homicide"
	LabelCVLI        = "CVLI"
	LabelRobbery     = "Robbery"
	LabelTheft       = "Theft"
	LabelAssault     = "Assault"
	LabelTrafficking = "Trafficking"
)

// MaxCrimeTypes caps the labels per zone
const MaxCrimeTypes = 4

// Monthly incident thresholds per tier
const (
	thresholdCritical = 120
	thresholdHigh     = 70
	thresholdMedium   = 35
)

var defaultCrimeTypes = []string{LabelRobbery, LabelTheft}

type levelRule struct {
	min   int
	level model.RiskLevel
}

// levelRules are checked from the highest threshold down
var levelRules = []levelRule{
	{thresholdCritical, model.RiskCritical},
	{thresholdHigh, model.RiskHigh},
	{thresholdMedium, model.RiskMedium},
}

type crimeTypeRule struct {
	applies func(rec model.ParsedRecord) bool
	labels  []string
}

var crimeTypeRules = []crimeTypeRule{
	{func(r model.ParsedRecord) bool { return r.CVLI > 3 }, []string{LabelHomicide, LabelCVLI}},
	{func(r model.ParsedRecord) bool { return r.Robbery > 5 }, []string{LabelRobbery}},
	{func(r model.ParsedRecord) bool { return r.Theft > 10 }, []string{LabelTheft}},
	{func(r model.ParsedRecord) bool { return r.CVP > 5 }, []string{LabelAssault}},
	{func(r model.ParsedRecord) bool { return r.CVLI > 5 }, []string{LabelTrafficking}},
}

// labelSet is what tip and peak-hour rules look at
type labelSet struct {
	level model.RiskLevel
	types map[string]bool
	zone  model.Zone
}

func (s labelSet) has(labels ...string) bool {
	for _, l := range labels {
		if s.types[l] {
			return true
		}
	}
	return false
}

type tipRule struct {
	applies func(s labelSet) bool
	tip     func(s labelSet) string
}

func fixedTip(text string) func(labelSet) string {
	return func(labelSet) string { return text }
}

var tipRules = []tipRule{
	{
		func(s labelSet) bool { return s.has(LabelHomicide, LabelCVLI) },
		fixedTip("Area with a history of serious violence. Avoid walking through at night."),
	},
	{
		func(s labelSet) bool { return s.has(LabelTrafficking) },
		func(s labelSet) string {
			return fmt.Sprintf("Area with territorial disputes in %s. Use extreme caution.", s.zone)
		},
	},
	{
		func(s labelSet) bool { return s.has(LabelRobbery) },
		fixedTip("Prefer main, well-lit streets. Avoid displaying valuables."),
	},
	{
		func(s labelSet) bool { return s.has(LabelTheft) },
		fixedTip("Watch out in crowded areas. Keep belongings secure."),
	},
}

const genericTip = "Stay alert and avoid isolated areas at night."

type peakRule struct {
	applies func(s labelSet) bool
	hours   string
}

var peakRules = []peakRule{
	{func(s labelSet) bool { return s.level == model.RiskCritical }, "20h - 04h"},
	{func(s labelSet) bool { return s.has(LabelHomicide, LabelCVLI) }, "21h - 05h"},
	{func(s labelSet) bool { return s.has(LabelTrafficking) }, "19h - 03h"},
	{func(s labelSet) bool { return s.has(LabelRobbery) }, "18h - 23h"},
}

const genericPeakHours = "17h - 22h"

// Level maps monthly incidents to a tier
func Level(monthlyIncidents int) model.RiskLevel {
	for _, r := range levelRules {
		if monthlyIncidents >= r.min {
			return r.level
		}
	}
	return model.RiskLow
}

// CrimeTypes derives up to MaxCrimeTypes unique labels in rule order,
// defaulting to robbery and theft when no rule fires.
func CrimeTypes(rec model.ParsedRecord) []string {
	var types []string
	seen := make(map[string]bool)
	for _, r := range crimeTypeRules {
		if !r.applies(rec) {
			continue
		}
		for _, l := range r.labels {
			if !seen[l] {
				seen[l] = true
				types = append(types, l)
			}
		}
	}

	if len(types) == 0 {
		return append([]string(nil), defaultCrimeTypes...)
	}
	if len(types) > MaxCrimeTypes {
		types = types[:MaxCrimeTypes]
	}
	return types
}

// SafetyTip picks the first matching tip for the labels present
func SafetyTip(types []string, level model.RiskLevel, zone model.Zone) string {
	s := newLabelSet(types, level, zone)
	for _, r := range tipRules {
		if r.applies(s) {
			return r.tip(s)
		}
	}
	return genericTip
}

// PeakHours picks the first matching window
func PeakHours(types []string, level model.RiskLevel) string {
	s := newLabelSet(types, level, "")
	for _, r := range peakRules {
		if r.applies(s) {
			return r.hours
		}
	}
	return genericPeakHours
}

func newLabelSet(types []string, level model.RiskLevel, zone model.Zone) labelSet {
	s := labelSet{level: level, zone: zone, types: make(map[string]bool, len(types))}
	for _, t := range types {
		s.types[t] = true
	}
	return s
}

// Classify builds the risk zone for one record and its gazetteer entry
func Classify(rec model.ParsedRecord, entry model.GazetteerEntry) model.RiskZone {
	level := Level(rec.MonthlyTotal)
	types := CrimeTypes(rec)

	return model.RiskZone{
		ID:               textnorm.Slugify(entry.Key),
		Name:             textnorm.TitleCase(entry.Key),
		Lat:              entry.Lat,
		Lng:              entry.Lng,
		RadiusMeters:     entry.RadiusMeters,
		RiskLevel:        level,
		CrimeTypes:       types,
		MonthlyIncidents: rec.MonthlyTotal,
		Zone:             entry.Zone,
		SafetyTip:        SafetyTip(types, level, entry.Zone),
		PeakHours:        PeakHours(types, level),
	}
}
