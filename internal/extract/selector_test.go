package extract

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ppiankov/crimezones/internal/gazetteer"
	"github.com/ppiankov/crimezones/internal/model"
)

func records(strategy model.Strategy, keys ...string) []model.ParsedRecord {
	out := make([]model.ParsedRecord, len(keys))
	for i, k := range keys {
		out[i] = model.ParsedRecord{RawName: k, ResolvedKey: k, Strategy: strategy, MonthlyTotal: 10}
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name         string
		results      []Result
		wantStrategy model.Strategy
		wantCount    int
		wantDegraded bool
		wantErr      error
	}{
		{
			name: "single strategy above threshold",
			results: []Result{
				{Strategy: model.StrategyColumns, Records: records(model.StrategyColumns, "a", "b", "c", "d", "e")},
				{Strategy: model.StrategyMonthly},
				{Strategy: model.StrategyPairs, Records: records(model.StrategyPairs, "f")},
			},
			wantStrategy: model.StrategyColumns,
			wantCount:    5,
		},
		{
			name: "highest yield wins over earlier strategy",
			results: []Result{
				{Strategy: model.StrategyColumns, Records: records(model.StrategyColumns, "a", "b", "c")},
				{Strategy: model.StrategyMonthly, Records: records(model.StrategyMonthly, "a", "b", "c", "d")},
				{Strategy: model.StrategyPairs},
			},
			wantStrategy: model.StrategyMonthly,
			wantCount:    4,
		},
		{
			name: "tie goes to declaration order",
			results: []Result{
				{Strategy: model.StrategyColumns, Records: records(model.StrategyColumns, "a", "b", "c")},
				{Strategy: model.StrategyMonthly, Records: records(model.StrategyMonthly, "d", "e", "f")},
				{Strategy: model.StrategyPairs, Records: records(model.StrategyPairs, "g", "h", "i")},
			},
			wantStrategy: model.StrategyColumns,
			wantCount:    3,
		},
		{
			name: "partial results are pooled",
			results: []Result{
				{Strategy: model.StrategyColumns, Records: records(model.StrategyColumns, "a", "b")},
				{Strategy: model.StrategyMonthly},
				{Strategy: model.StrategyPairs, Records: records(model.StrategyPairs, "c")},
			},
			wantStrategy: model.StrategyPooled,
			wantCount:    3,
			wantDegraded: true,
		},
		{
			name: "nothing extracted",
			results: []Result{
				{Strategy: model.StrategyColumns},
				{Strategy: model.StrategyMonthly},
				{Strategy: model.StrategyPairs},
			},
			wantStrategy: model.StrategyPooled,
			wantDegraded: true,
			wantErr:      ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.results, DefaultMinYield)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got.Strategy != tt.wantStrategy {
				t.Errorf("expected strategy %q, got %q", tt.wantStrategy, got.Strategy)
			}
			if len(got.Records) != tt.wantCount {
				t.Errorf("expected %d records, got %d", tt.wantCount, len(got.Records))
			}
			if got.Degraded != tt.wantDegraded {
				t.Errorf("expected degraded=%v, got %v", tt.wantDegraded, got.Degraded)
			}
			if len(got.Yields) != len(tt.results) {
				t.Errorf("expected yields for every strategy, got %v", got.Yields)
			}
		})
	}
}

func TestSelect_NotFound(t *testing.T) {
	results := []Result{
		{Strategy: model.StrategyColumns, Records: records(model.StrategyColumns, "a"), Unresolved: []string{"Total", "Manaus"}},
		{Strategy: model.StrategyMonthly, Unresolved: []string{"Total"}},
		{Strategy: model.StrategyPairs, Unresolved: []string{"Fonte"}},
	}

	got, err := Select(results, DefaultMinYield)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Total", "Manaus", "Fonte"}
	if !reflect.DeepEqual(got.NotFound, want) {
		t.Errorf("NotFound = %q, want %q", got.NotFound, want)
	}

	results[0].Records = records(model.StrategyColumns, "a", "b", "c")
	got, err = Select(results, DefaultMinYield)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []string{"Total", "Manaus"}
	if !reflect.DeepEqual(got.NotFound, want) {
		t.Errorf("NotFound of chosen strategy = %q, want %q", got.NotFound, want)
	}
}

func TestSelect_ColumnsTableWithFiveRows(t *testing.T) {
	res := gazetteer.NewResolver(gazetteer.Manaus(), gazetteer.DefaultOptions())
	lines := []string{
		"BAIRRO CVLI CVP FURTO ROUBO TOTAL",
		"Centro 5 3 12 8 336",
		"Compensa 2 4 20 15 480",
		"Flores 1 1 5 3 120",
		"Alvorada 0 2 8 6 240",
		"Japiim 3 1 9 7 300",
	}

	got, err := Select(ParseAll(lines, res), DefaultMinYield)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Strategy != model.StrategyColumns {
		t.Errorf("expected columns strategy, got %q", got.Strategy)
	}
	if len(got.Records) != 5 {
		t.Errorf("expected 5 records, got %d", len(got.Records))
	}
	if got.Degraded {
		t.Error("expected a non-degraded extraction")
	}
	if got.Yields[model.StrategyMonthly] != 0 || got.Yields[model.StrategyPairs] != 0 {
		t.Errorf("unexpected yields %v", got.Yields)
	}
}

func TestDedupe_MaxWins(t *testing.T) {
	in := []model.ParsedRecord{
		{RawName: "Praça 14", ResolvedKey: "praça 14", MonthlyTotal: 40},
		{RawName: "Centro", ResolvedKey: "centro", MonthlyTotal: 7},
		{RawName: "Pça 14", ResolvedKey: "praça 14", MonthlyTotal: 55},
	}

	got := Dedupe(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ResolvedKey != "praça 14" || got[0].MonthlyTotal != 55 || got[0].RawName != "Pça 14" {
		t.Errorf("expected the 55 record to win, got %+v", got[0])
	}
	if got[1].ResolvedKey != "centro" {
		t.Errorf("expected first-seen key order, got %+v", got[1])
	}
}

func TestDedupe_TieKeepsFirst(t *testing.T) {
	in := []model.ParsedRecord{
		{RawName: "first", ResolvedKey: "centro", MonthlyTotal: 10},
		{RawName: "second", ResolvedKey: "centro", MonthlyTotal: 10},
	}
	got := Dedupe(in)
	if len(got) != 1 || got[0].RawName != "first" {
		t.Errorf("expected the first record on ties, got %+v", got)
	}
}

func TestRun_EndToEnd(t *testing.T) {
	res := gazetteer.NewResolver(gazetteer.Manaus(), gazetteer.DefaultOptions())
	lines := []string{"BAIRRO CVLI CVP FURTO ROUBO TOTAL", "Centro 5 3 12 8 336"}

	got, err := Run(lines, res, DefaultMinYield)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Degraded {
		t.Error("a single record is below the yield threshold and should be pooled")
	}
	if len(got.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got.Records))
	}
	rec := got.Records[0]
	if rec.ResolvedKey != "centro" || rec.MonthlyTotal != 28 || rec.Theft != 12 || rec.Robbery != 8 {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestRun_NoData(t *testing.T) {
	res := gazetteer.NewResolver(gazetteer.Manaus(), gazetteer.DefaultOptions())
	_, err := Run([]string{"Relatório anual", "sem tabelas"}, res, DefaultMinYield)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
