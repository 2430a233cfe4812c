package extract

import (
	"errors"

	"github.com/ppiankov/crimezones/internal/model"
)

// DefaultMinYield is the record count a single strategy needs to be trusted on its own
const DefaultMinYield = 3

// ErrNoData is returned when no strategy produced a single resolved record
var ErrNoData = errors.New("no data extracted")

// Extraction is the selected record set before deduplication
type Extraction struct {
	Strategy model.Strategy
	Records  []model.ParsedRecord
	Degraded bool
	NotFound []string
	Yields   map[model.Strategy]int
}

// Select picks the strategy with the highest yield when any reaches minYield,
// ties going to the earlier strategy. Otherwise every partial result is pooled
// and the extraction is flagged as degraded.
func Select(results []Result, minYield int) (*Extraction, error) {
	if minYield <= 0 {
		minYield = DefaultMinYield
	}

	yields := make(map[model.Strategy]int, len(results))
	best := -1
	for i, r := range results {
		yields[r.Strategy] = r.Yield()
		if r.Yield() < minYield {
			continue
		}
		if best == -1 || r.Yield() > results[best].Yield() {
			best = i
		}
	}

	if best != -1 {
		chosen := results[best]
		return &Extraction{
			Strategy: chosen.Strategy,
			Records:  chosen.Records,
			NotFound: uniqueNames(chosen.Unresolved),
			Yields:   yields,
		}, nil
	}

	ex := &Extraction{
		Strategy: model.StrategyPooled,
		Degraded: true,
		Yields:   yields,
	}
	var missed []string
	for _, r := range results {
		ex.Records = append(ex.Records, r.Records...)
		missed = append(missed, r.Unresolved...)
	}
	ex.NotFound = uniqueNames(missed)

	if len(ex.Records) == 0 {
		return ex, ErrNoData
	}
	return ex, nil
}

func uniqueNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Run parses lines with every strategy, selects and deduplicates
func Run(lines []string, res Resolver, minYield int) (*Extraction, error) {
	ex, err := Select(ParseAll(lines, res), minYield)
	if err != nil {
		return ex, err
	}
	ex.Records = Dedupe(ex.Records)
	return ex, nil
}
