package model

// Zone is one of the six administrative zones of Manaus
type Zone string

const (
	ZoneCentroSul   Zone = "Centro-Sul"
	ZoneSul         Zone = "Sul"
	ZoneNorte       Zone = "Norte"
	ZoneLeste       Zone = "Leste"
	ZoneOeste       Zone = "Oeste"
	ZoneCentroOeste Zone = "Centro-Oeste"
)

// ZoneOrder is the canonical artifact ordering of zone groups
var ZoneOrder = []Zone{
	ZoneCentroSul,
	ZoneSul,
	ZoneNorte,
	ZoneLeste,
	ZoneOeste,
	ZoneCentroOeste,
}

// Valid reports whether z is one of the known zones
func (z Zone) Valid() bool {
	return z.Rank() < len(ZoneOrder)
}

// Rank returns the position of z in ZoneOrder, or 9 for unknown zones
func (z Zone) Rank() int {
	for i, known := range ZoneOrder {
		if z == known {
			return i
		}
	}
	return 9
}

// GazetteerEntry describes one canonical neighborhood name
type GazetteerEntry struct {
	Key          string  `json:"key" yaml:"key"`
	Lat          float64 `json:"lat" yaml:"lat"`
	Lng          float64 `json:"lng" yaml:"lng"`
	Zone         Zone    `json:"zone" yaml:"zone"`
	RadiusMeters int     `json:"radius_meters" yaml:"radius_meters"`
}

// ParsedRecord is one neighborhood row recognized by a strategy
type ParsedRecord struct {
	RawName      string   `json:"raw_name"`     // Name as written in the document
	ResolvedKey  string   `json:"resolved_key"` // Canonical gazetteer key
	Strategy     Strategy `json:"strategy"`
	MonthlyTotal int      `json:"monthly_total"` // Always >= 1
	CVLI         int      `json:"cvli"`
	CVP          int      `json:"cvp"`
	Theft        int      `json:"theft"`
	Robbery      int      `json:"robbery"`
	Other        int      `json:"other"`
}

// Strategy identifies a table-shape recognizer
type Strategy string

const (
	StrategyColumns Strategy = "columns" // CVLI / CVP / FURTO / ROUBO / TOTAL header
	StrategyMonthly Strategy = "monthly" // JAN .. DEZ header
	StrategyPairs   Strategy = "pairs"   // one name and one number per line
	StrategyPooled  Strategy = "pooled"  // union of partial results
)

// RiskLevel is the risk tier of a zone
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

// RiskLevels lists tiers from most to least severe
var RiskLevels = []RiskLevel{RiskCritical, RiskHigh, RiskMedium, RiskLow}

// RiskZone is one entry of the final artifact.
// Field names follow the crimeZones data file consumed by the map application.
type RiskZone struct {
	ID               string    `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Lat              float64   `json:"lat" yaml:"lat"`
	Lng              float64   `json:"lng" yaml:"lng"`
	RadiusMeters     int       `json:"radiusMeters" yaml:"radiusMeters"`
	RiskLevel        RiskLevel `json:"riskLevel" yaml:"riskLevel"`
	CrimeTypes       []string  `json:"crimeTypes" yaml:"crimeTypes"`
	MonthlyIncidents int       `json:"monthlyIncidents" yaml:"monthlyIncidents"`
	Zone             Zone      `json:"zone" yaml:"zone"`
	SafetyTip        string    `json:"safetyTip" yaml:"safetyTip"`
	PeakHours        string    `json:"peakHours" yaml:"peakHours"`
}
