package extract

import "github.com/ppiankov/crimezones/internal/model"

// Dedupe keeps one record per resolved key: the one with the largest
// monthly total. Equal totals keep the earlier record. Keys come out in
// the order they were first seen.
func Dedupe(records []model.ParsedRecord) []model.ParsedRecord {
	index := make(map[string]int, len(records))
	out := make([]model.ParsedRecord, 0, len(records))

	for _, rec := range records {
		i, ok := index[rec.ResolvedKey]
		if !ok {
			index[rec.ResolvedKey] = len(out)
			out = append(out, rec)
			continue
		}
		if rec.MonthlyTotal > out[i].MonthlyTotal {
			out[i] = rec
		}
	}
	return out
}
