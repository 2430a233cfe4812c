package extract

import (
	"strings"

	"github.com/ppiankov/crimezones/internal/model"
	"github.com/ppiankov/crimezones/internal/textnorm"
)

var monthAbbreviations = []string{
	"JAN", "FEV", "MAR", "ABR", "MAI", "JUN",
	"JUL", "AGO", "SET", "OUT", "NOV", "DEZ",
}

// minHeaderMonths is how many month abbreviations a line needs to count as a header
const minHeaderMonths = 6

// Category shares for layouts that only publish totals. These are
// presentational estimates, not measurements.
const (
	monthlyTheftShare   = 0.40
	monthlyRobberyShare = 0.35
	monthlyOtherShare   = 0.25
)

func isMonthlyHeader(folded string) bool {
	count := 0
	for _, m := range monthAbbreviations {
		if strings.Contains(folded, m) {
			count++
		}
	}
	return count >= minHeaderMonths
}

// parseMonthly recognizes "BAIRRO JAN FEV ... DEZ [TOTAL]" tables.
// The name is everything before the first number on the row.
func parseMonthly(lines []string, res Resolver) Result {
	out := Result{Strategy: model.StrategyMonthly}

	headerIdx := -1
	for i, line := range lines {
		if isMonthlyHeader(textnorm.Fold(line)) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return out
	}

	for _, line := range lines[headerIdx+1:] {
		tokens := strings.Fields(line)
		if len(tokens) < 4 {
			continue
		}

		nameEnd := 0
		for j, tok := range tokens {
			if isNumeric(tok) {
				nameEnd = j
				break
			}
		}
		if nameEnd == 0 {
			continue
		}

		var nums []float64
		for _, tok := range tokens[nameEnd:] {
			if isNumeric(tok) {
				nums = append(nums, parseNumber(tok))
			}
		}

		rawName := strings.Join(tokens[:nameEnd], " ")
		entry, ok := res.Resolve(rawName)
		if !ok {
			out.miss(rawName)
			continue
		}

		total := sum(nums)
		months := len(nums)
		if months < 12 {
			months = 12
		}

		out.add(model.ParsedRecord{
			RawName:      rawName,
			ResolvedKey:  entry.Key,
			MonthlyTotal: round(total / float64(months)),
			Theft:        round(total * monthlyTheftShare / 12),
			Robbery:      round(total * monthlyRobberyShare / 12),
			Other:        round(total * monthlyOtherShare / 12),
		})
	}

	return out
}
