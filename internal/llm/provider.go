package llm

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ppiankov/crimezones/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize writes a narrative of the extracted zones
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	Report model.Report

	// AllowedNumbers is the STRICT allowlist of integers the summary may cite.
	// Any other figure is treated as invented.
	AllowedNumbers []int

	// Prompt overrides the default prompt when set
	Prompt string

	Model     string
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	Summary string

	// CitedNumbers are the integers found in the summary (for verification)
	CitedNumbers []int

	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	Model string

	// APIKey for OpenAI; Ollama ignores it
	APIKey string

	// BaseURL for OpenAI-compatible endpoints
	BaseURL string

	Timeout int // seconds

	// Strict rejects summaries citing numbers absent from the zone data
	Strict bool

	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		Strict:    true,
		MaxTokens: 800,
	}
}

// maxPromptZones bounds the zone table sent to the model
const maxPromptZones = 25

// BuildPrompt constructs the default prompt listing the highest-risk zones
func BuildPrompt(report model.Report, allowed []int) string {
	counts := report.CountByRisk()

	var b strings.Builder
	fmt.Fprintf(&b, `You are summarizing crime statistics extracted from a public-security bulletin for Manaus, Brazil.

CRITICAL RULES:
1. Use ONLY numbers from this allowed list: %s
2. Do not estimate, average, or compute new figures.
3. Do not name neighborhoods that are not listed below.
4. Describe the data; do not speculate about causes.

Extraction Summary:
- Source: %s
- Strategy: %s (degraded: %t)
- Zones: %d (critical %d, high %d, medium %d, low %d)
- Unresolved names: %d

Zones by monthly incidents:
`, joinNumbers(allowed), report.Source, report.Strategy, report.Degraded,
		len(report.Zones), counts[model.RiskCritical], counts[model.RiskHigh],
		counts[model.RiskMedium], counts[model.RiskLow], len(report.NotFound))

	zones := slices.Clone(report.Zones)
	slices.SortStableFunc(zones, func(a, b model.RiskZone) int {
		return b.MonthlyIncidents - a.MonthlyIncidents
	})
	for i, z := range zones {
		if i >= maxPromptZones {
			fmt.Fprintf(&b, "... and %d more zones\n", len(zones)-maxPromptZones)
			break
		}
		fmt.Fprintf(&b, "- %s (%s): %d/month, %s, %s\n",
			z.Name, z.Zone, z.MonthlyIncidents, z.RiskLevel, strings.Join(z.CrimeTypes, ", "))
	}

	b.WriteString("\nWrite a 3-5 sentence Markdown summary of where risk concentrates across the city zones.")
	return b.String()
}

// AllowedNumbers collects every integer a faithful summary could cite:
// monthly counts and their breakdowns, zone tallies and the figures in
// peak-hour windows.
func AllowedNumbers(report model.Report) []int {
	seen := make(map[int]bool)
	add := func(n int) { seen[n] = true }

	add(len(report.Zones))
	add(len(report.Records))
	add(len(report.NotFound))
	add(len(model.ZoneOrder))
	for _, n := range report.CountByRisk() {
		add(n)
	}
	if !report.ProcessedAt.IsZero() {
		add(report.ProcessedAt.Year())
	}
	for _, r := range report.Records {
		add(r.MonthlyTotal)
		add(r.CVLI)
		add(r.CVP)
		add(r.Theft)
		add(r.Robbery)
		add(r.Other)
	}
	for _, z := range report.Zones {
		add(z.MonthlyIncidents)
		for _, n := range extractNumbers(z.PeakHours) {
			add(n)
		}
	}

	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func joinNumbers(nums []int) string {
	if len(nums) == 0 {
		return "(none)"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
