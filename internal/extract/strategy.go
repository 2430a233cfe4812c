// Package extract recognizes neighborhood tables in bulletin text.
//
// Three independent recognizers handle the layouts the bulletins have used:
// an explicit CVLI/CVP/FURTO/ROUBO/TOTAL table, a twelve-month table and
// bare "name number" lines. Each is a pure function of the line sequence.
package extract

import (
	"github.com/ppiankov/crimezones/internal/model"
)

// Resolver maps a raw name to a gazetteer entry
type Resolver interface {
	Resolve(rawName string) (model.GazetteerEntry, bool)
}

// Result is the output of one strategy over the whole document
type Result struct {
	Strategy   model.Strategy
	Records    []model.ParsedRecord
	Unresolved []string // Raw names that looked like rows but matched no entry
}

// Yield is the number of resolved records
func (r Result) Yield() int {
	return len(r.Records)
}

func (r *Result) add(rec model.ParsedRecord) {
	rec.Strategy = r.Strategy
	rec.MonthlyTotal = atLeastOne(rec.MonthlyTotal)
	r.Records = append(r.Records, rec)
}

func (r *Result) miss(rawName string) {
	r.Unresolved = append(r.Unresolved, rawName)
}

type parseFunc func(lines []string, res Resolver) Result

// strategies in declaration order, which is also the tie-break order
var strategies = []struct {
	id    model.Strategy
	parse parseFunc
}{
	{model.StrategyColumns, parseColumns},
	{model.StrategyMonthly, parseMonthly},
	{model.StrategyPairs, parsePairs},
}

// Strategies lists the recognizers in tie-break order
func Strategies() []model.Strategy {
	ids := make([]model.Strategy, len(strategies))
	for i, s := range strategies {
		ids[i] = s.id
	}
	return ids
}

// Parse runs a single strategy. Unknown strategies yield an empty result.
func Parse(strategy model.Strategy, lines []string, res Resolver) Result {
	for _, s := range strategies {
		if s.id == strategy {
			return s.parse(lines, res)
		}
	}
	return Result{Strategy: strategy}
}

// ParseAll runs every strategy in declaration order
func ParseAll(lines []string, res Resolver) []Result {
	results := make([]Result, len(strategies))
	for i, s := range strategies {
		results[i] = s.parse(lines, res)
	}
	return results
}
