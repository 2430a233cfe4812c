package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/crimezones/internal/model"
)

// pairLine accepts a whole line of exactly one name and one number
var pairLine = regexp.MustCompile(`^([A-Za-zÀ-ÿ\s]{5,40})\s+(\d[\d.]*)\s*$`)

// Category shares of the monthly average for single-number tables.
// Presentational estimates, not measurements.
const (
	pairTheftShare   = 0.45
	pairRobberyShare = 0.35
	pairOtherShare   = 0.20
)

// parsePairs recognizes "<name> <annual total>" lines anywhere in the text
func parsePairs(lines []string, res Resolver) Result {
	out := Result{Strategy: model.StrategyPairs}

	for _, line := range lines {
		m := pairLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		rawName := strings.TrimSpace(m[1])
		annual := parseNumber(m[2])

		entry, ok := res.Resolve(rawName)
		if !ok {
			out.miss(rawName)
			continue
		}

		monthly := float64(round(annual / 12))
		out.add(model.ParsedRecord{
			RawName:      rawName,
			ResolvedKey:  entry.Key,
			MonthlyTotal: int(monthly),
			Theft:        round(monthly * pairTheftShare),
			Robbery:      round(monthly * pairRobberyShare),
			Other:        round(monthly * pairOtherShare),
		})
	}

	return out
}
