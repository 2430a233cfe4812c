package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/crimezones/internal/artifact"
	"github.com/ppiankov/crimezones/internal/llm"
	"github.com/ppiankov/crimezones/internal/model"
)

const rule = "═══════════════════════════════════════════════════════════"

var riskGlyphs = map[model.RiskLevel]string{
	model.RiskCritical: "🔴",
	model.RiskHigh:     "🟠",
	model.RiskMedium:   "🟡",
	model.RiskLow:      "🟢",
}

// newSummarizer returns nil unless the narrative was requested
func newSummarizer(cfg *model.Config, enabled bool) (*llm.Summarizer, error) {
	if !enabled || cfg.LLM.Provider == "" {
		return nil, nil
	}
	s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	return s, nil
}

func requireLLMKey(cfg *model.Config, enabled bool) error {
	if enabled && strings.EqualFold(cfg.LLM.Provider, "openai") && cfg.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return nil
}

// printSummary writes the per-tier tally of an extraction
func printSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "  %s\n", report.Source)
	fmt.Fprintf(w, "%s\n\n", rule)
	fmt.Fprintf(w, "  Strategy:   %s\n", report.Strategy)
	fmt.Fprintf(w, "  Zones:      %d\n", len(report.Zones))

	counts := report.CountByRisk()
	for _, level := range model.RiskLevels {
		fmt.Fprintf(w, "  %s %-9s %d\n", riskGlyphs[level], level, counts[level])
	}

	if report.Degraded {
		fmt.Fprintf(w, "\n⚠️  No single table layout reached the yield threshold; results were pooled (yields: %s)\n",
			formatYields(report.Yields))
	}
	if len(report.NotFound) > 0 {
		fmt.Fprintf(w, "\n⚠️  %d names not found in gazetteer: %s\n", len(report.NotFound), strings.Join(report.NotFound, ", "))
	}
	fmt.Fprintln(w)
}

func formatYields(yields map[model.Strategy]int) string {
	parts := make([]string, 0, len(yields))
	for _, s := range []model.Strategy{model.StrategyColumns, model.StrategyMonthly, model.StrategyPairs} {
		parts = append(parts, fmt.Sprintf("%s=%d", s, yields[s]))
	}
	return strings.Join(parts, " ")
}

// printPreview lists the first n zones
func printPreview(w io.Writer, zones []model.RiskZone, n int) {
	if len(zones) == 0 {
		return
	}
	fmt.Fprintf(w, "Preview:\n")
	for i, z := range zones {
		if i >= n {
			fmt.Fprintf(w, "  ... and %d more\n", len(zones)-n)
			break
		}
		fmt.Fprintf(w, "  %s %-28s %-13s %4d/month  %s\n",
			riskGlyphs[z.RiskLevel], z.Name, z.Zone, z.MonthlyIncidents, strings.Join(z.CrimeTypes, ", "))
	}
	fmt.Fprintln(w)
}

// printText shows the head of the extracted text
func printText(w io.Writer, title, text string, limit int) {
	fmt.Fprintf(w, "── %s (first %d chars) ──\n%s\n── end ──\n\n", title, limit, truncate(text, limit))
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// printMerge compares the new zones with the artifact already at path
func printMerge(w io.Writer, path string, format artifact.Format, zones []model.RiskZone) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "No previous artifact at %s, every zone is new\n", path)
		return nil
	}
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	ids, err := artifact.ReadIDs(f, format)
	if err != nil {
		return fmt.Errorf("read previous ids: %w", err)
	}

	m := artifact.MergeReport(ids, zones)
	fmt.Fprintf(w, "Merge against %s:\n", path)
	fmt.Fprintf(w, "  Previous:   %d\n", m.Previous)
	fmt.Fprintf(w, "  Preserved:  %d\n", len(m.Preserved))
	fmt.Fprintf(w, "  Refreshed:  %d\n", len(m.Refreshed))
	fmt.Fprintf(w, "  Added:      %d\n\n", len(m.Added))
	return nil
}

// writeArtifact renders to memory first; a failed render leaves
// the previous file intact
func writeArtifact(path string, a artifact.Artifact, format artifact.Format) error {
	var buf bytes.Buffer
	if err := artifact.Render(&buf, a, format); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// summaryPath places the narrative next to the artifact:
// crimeZones.ts -> crimeZones.summary.md
func summaryPath(artifactPath string) string {
	return strings.TrimSuffix(artifactPath, filepath.Ext(artifactPath)) + ".summary.md"
}

func writeSummary(artifactPath string, summary *model.LLMSummary) error {
	md := llm.RenderSeparateMarkdown(summary)
	if md == "" {
		if summary != nil {
			for _, warning := range summary.Warnings {
				fmt.Fprintf(os.Stderr, "⚠️  %s\n", warning)
			}
		}
		return nil
	}
	path := summaryPath(artifactPath)
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote LLM summary: %s\n", path)
	return nil
}
