package extract

import (
	"strings"

	"github.com/ppiankov/crimezones/internal/model"
	"github.com/ppiankov/crimezones/internal/textnorm"
)

// columnLayout holds the numeric-column offset of each recognized header
// marker, or -1 when the header did not expose that column. Offsets count
// from the first marker; first and width locate it within the header.
type columnLayout struct {
	cvli, cvp, theft, robbery, total int

	first int // header token index of the first marker
	width int // header token count
}

// leading returns how many unlabeled numeric columns a row carries before
// the first marker, by right-aligning its numeric tail under the header.
// A row shorter than the header is read from the first marker.
func (l columnLayout) leading(numCount int) int {
	base := l.width - numCount
	if base < 1 || base >= l.first {
		return 0
	}
	return l.first - base
}

// columnMarkers maps header token substrings to the column they announce.
// Later markers in a header override earlier ones, token by token.
var columnMarkers = []struct {
	substrings []string
	set        func(l *columnLayout, offset int)
}{
	{[]string{"CVLI", "HOMICI"}, func(l *columnLayout, o int) { l.cvli = o }},
	{[]string{"CVP", "PATRIMONIO"}, func(l *columnLayout, o int) { l.cvp = o }},
	{[]string{"FURTO"}, func(l *columnLayout, o int) { l.theft = o }},
	{[]string{"ROUBO"}, func(l *columnLayout, o int) { l.robbery = o }},
	{[]string{"TOTAL"}, func(l *columnLayout, o int) { l.total = o }},
}

// isColumnsHeader matches the first line announcing lethal-violent-crime columns
func isColumnsHeader(folded string) bool {
	return strings.Contains(folded, "CVLI") || strings.Contains(folded, "HOMICIDIO")
}

// readHeader records each marker's position relative to the first marker
// token, so offsets index the numeric tail of a data row regardless of how
// many words the neighborhood name takes.
func readHeader(tokens []string) columnLayout {
	layout := columnLayout{cvli: -1, cvp: -1, theft: -1, robbery: -1, total: -1, width: len(tokens)}

	first := -1
	for idx, tok := range tokens {
		for _, m := range columnMarkers {
			if containsAny(tok, m.substrings) {
				if first == -1 {
					first = idx
				}
				m.set(&layout, idx-first)
			}
		}
	}
	layout.first = first
	return layout
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// parseColumns recognizes "BAIRRO CVLI CVP FURTO ROUBO TOTAL" tables.
// Rows are "<name words> <numbers...>", split at the last non-numeric token.
func parseColumns(lines []string, res Resolver) Result {
	out := Result{Strategy: model.StrategyColumns}

	headerIdx := -1
	var layout columnLayout
	for i, line := range lines {
		folded := textnorm.Fold(line)
		if isColumnsHeader(folded) {
			headerIdx = i
			layout = readHeader(strings.Fields(folded))
			break
		}
	}
	if headerIdx == -1 {
		return out
	}

	for _, line := range lines[headerIdx+1:] {
		tokens := strings.Fields(line)
		if len(tokens) < 3 {
			continue
		}

		nameEnd := 0
		for j := len(tokens) - 1; j >= 0; j-- {
			if !isNumeric(tokens[j]) {
				nameEnd = j + 1
				break
			}
		}
		if nameEnd == 0 || nameEnd == len(tokens) {
			continue
		}

		rawName := strings.Join(tokens[:nameEnd], " ")
		nums := make([]float64, 0, len(tokens)-nameEnd)
		for _, tok := range tokens[nameEnd:] {
			nums = append(nums, parseNumber(tok))
		}

		shift := layout.leading(len(nums))
		cvli := field(nums, layout.cvli, shift, 0)
		cvp := field(nums, layout.cvp, shift, 1)
		theft := field(nums, layout.theft, shift, 2)
		robbery := field(nums, layout.robbery, shift, 3)

		total := sum(nums)
		if layout.total != -1 {
			total = at(nums, layout.total+shift)
		}

		entry, ok := res.Resolve(rawName)
		if !ok {
			out.miss(rawName)
			continue
		}

		monthly := round(total / 12)
		if total <= 0 {
			monthly = round((cvli + cvp + theft + robbery) / 12)
		}

		other := round(total - cvli - cvp - theft - robbery)
		if other < 0 {
			other = 0
		}

		out.add(model.ParsedRecord{
			RawName:      rawName,
			ResolvedKey:  entry.Key,
			MonthlyTotal: monthly,
			CVLI:         round(cvli),
			CVP:          round(cvp),
			Theft:        round(theft),
			Robbery:      round(robbery),
			Other:        other,
		})
	}

	return out
}

// field reads a column by header offset, falling back to a fixed position
// when the header did not name the column.
func field(nums []float64, offset, shift, fallback int) float64 {
	if offset == -1 {
		return at(nums, fallback)
	}
	return at(nums, offset+shift)
}

func at(nums []float64, i int) float64 {
	if i < 0 || i >= len(nums) {
		return 0
	}
	return nums[i]
}
