package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numericToken = regexp.MustCompile(`^\d[\d.,]*$`)

// isNumeric reports whether a token is a bulletin number ("12", "1.234", "3,5")
func isNumeric(token string) bool {
	return numericToken.MatchString(strings.TrimSpace(token))
}

// parseNumber reads a Brazilian-formatted number: dots group thousands and
// a comma marks decimals. Unparseable input yields 0.
func parseNumber(token string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(token), ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	if i := strings.IndexByte(cleaned, ','); i >= 0 {
		cleaned = cleaned[:i]
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// round rounds half up, as the published figures are non-negative
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// atLeastOne clamps monthly totals so no neighborhood drops out of classification
func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Lines splits extracted text into trimmed, non-empty lines
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func sum(nums []float64) float64 {
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return total
}
