package llm

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/crimezones/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	response  *SummarizeResponse
	err       error
	lastReq   SummarizeRequest
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

func sampleReport() model.Report {
	return model.Report{
		Source:      "anuario-2024.pdf",
		ProcessedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Strategy:    model.StrategyColumns,
		Records: []model.ParsedRecord{
			{ResolvedKey: "centro", MonthlyTotal: 28, CVLI: 5, CVP: 3, Theft: 12, Robbery: 8, Other: 308},
		},
		Zones: []model.RiskZone{
			{ID: "centro", Name: "Centro", Zone: model.ZoneCentroSul, MonthlyIncidents: 28,
				RiskLevel: model.RiskLow, CrimeTypes: []string{"Theft", "Robbery"}, PeakHours: "08h - 18h"},
			{ID: "compensa", Name: "Compensa", Zone: model.ZoneOeste, MonthlyIncidents: 130,
				RiskLevel: model.RiskCritical, CrimeTypes: []string{"Homicide"}, PeakHours: "18h - 02h"},
		},
	}
}

func TestNewSummarizer_DisabledProvider(t *testing.T) {
	summarizer, err := NewSummarizer(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if summarizer.IsEnabled() {
		t.Error("Expected summarizer to be disabled")
	}
	if summarizer.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}

	summary, err := summarizer.GenerateSummary(context.Background(), sampleReport())
	if err != nil || summary != nil {
		t.Errorf("Expected nil summary when disabled, got %v, %v", summary, err)
	}
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	if _, err := NewSummarizer(Config{Provider: "mystery"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestSummarizer_GenerateSummary_ProviderUnavailable(t *testing.T) {
	summarizer := &Summarizer{
		provider: &MockProvider{name: "test-provider", available: false},
		config:   Config{Strict: true},
	}

	summary, err := summarizer.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if summary == nil {
		t.Fatal("Expected summary object with warnings")
	}
	if summary.Enabled {
		t.Error("Expected summary to be marked as disabled")
	}
	if len(summary.Warnings) == 0 || !strings.Contains(summary.Warnings[0], "not available") {
		t.Errorf("Expected warning about provider unavailability, got %v", summary.Warnings)
	}
}

func TestSummarizer_GenerateSummary_Success(t *testing.T) {
	mock := &MockProvider{
		name:      "test-provider",
		available: true,
		response: &SummarizeResponse{
			Summary:      "Compensa concentrates 130 incidents per month.",
			CitedNumbers: []int{130},
			Model:        "test-model",
			TokensUsed:   150,
		},
	}
	summarizer := &Summarizer{provider: mock, config: Config{Model: "test-model", Strict: true}}

	summary, err := summarizer.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !summary.Enabled || summary.Provider != "test-provider" || summary.Model != "test-model" {
		t.Errorf("Unexpected summary header: %+v", summary)
	}
	if !summary.Strict {
		t.Error("Expected strict mode to be recorded")
	}
	if summary.SummaryMD != "Compensa concentrates 130 incidents per month." {
		t.Errorf("Unexpected summary text: %q", summary.SummaryMD)
	}
	if !slices.Contains(mock.lastReq.AllowedNumbers, 130) {
		t.Errorf("Provider should receive the allowlist, got %v", mock.lastReq.AllowedNumbers)
	}

	var foundTokens, foundVerified bool
	for _, w := range summary.Warnings {
		foundTokens = foundTokens || strings.Contains(w, "Tokens used")
		foundVerified = foundVerified || strings.Contains(w, "Verified")
	}
	if !foundTokens || !foundVerified {
		t.Errorf("Expected token and verification notes, got %v", summary.Warnings)
	}
}

func TestSummarizer_GenerateSummary_ProviderError(t *testing.T) {
	summarizer := &Summarizer{
		provider: &MockProvider{name: "test-provider", available: true, err: errors.New("API rate limit exceeded")},
		config:   Config{Strict: true},
	}

	// Should not fail the run, just return a summary with warnings
	summary, err := summarizer.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Errorf("Expected no error (graceful degradation), got %v", err)
	}
	if summary == nil || !summary.Enabled {
		t.Fatal("Expected enabled summary carrying the failure")
	}
	if len(summary.Warnings) == 0 || !strings.Contains(summary.Warnings[0], "rate limit") {
		t.Errorf("Expected warning to mention error: %v", summary.Warnings)
	}
}

func TestAllowedNumbers(t *testing.T) {
	allowed := AllowedNumbers(sampleReport())

	for _, n := range []int{28, 130, 2, 2024, 5, 3, 12, 8, 308, 18, 6, 1} {
		if !slices.Contains(allowed, n) {
			t.Errorf("expected %d in allowlist %v", n, allowed)
		}
	}
	if slices.Contains(allowed, 95) {
		t.Error("95 appears nowhere in the data")
	}
	if !slices.IsSorted(allowed) {
		t.Error("allowlist should be sorted")
	}
}

func TestBuildPrompt(t *testing.T) {
	report := sampleReport()
	prompt := BuildPrompt(report, AllowedNumbers(report))

	for _, element := range []string{
		"CRITICAL RULES",
		"Use ONLY numbers from this allowed list",
		"Source: anuario-2024.pdf",
		"Strategy: columns (degraded: false)",
		"Zones: 2 (critical 1, high 0, medium 0, low 1)",
		"- Compensa (Oeste): 130/month, critical, Homicide",
	} {
		if !strings.Contains(prompt, element) {
			t.Errorf("Expected prompt to contain %q", element)
		}
	}

	// Highest monthly count first
	if strings.Index(prompt, "Compensa") > strings.Index(prompt, "- Centro") {
		t.Error("zones should be listed by descending monthly incidents")
	}
}

func TestRenderSeparateMarkdown(t *testing.T) {
	if RenderSeparateMarkdown(nil) != "" {
		t.Error("Expected empty markdown when nil")
	}
	if RenderSeparateMarkdown(&model.LLMSummary{Enabled: false}) != "" {
		t.Error("Expected empty markdown when disabled")
	}

	md := RenderSeparateMarkdown(&model.LLMSummary{
		Enabled:   true,
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		Strict:    true,
		SummaryMD: "Risk concentrates in the Oeste zone.",
		Warnings:  []string{"Tokens used: 150"},
	})
	for _, section := range []string{
		"# LLM Summary",
		"GENERATED CONTENT",
		"determined independently",
		"**Provider**: openai",
		"**Model**: gpt-4o-mini",
		"**Strict Numbers**: true",
		"Risk concentrates in the Oeste zone.",
		"## Notes",
		"Tokens used: 150",
	} {
		if !strings.Contains(md, section) {
			t.Errorf("Expected markdown to contain %q", section)
		}
	}

	empty := RenderSeparateMarkdown(&model.LLMSummary{Enabled: true, Provider: "ollama"})
	if !strings.Contains(empty, "No summary generated") {
		t.Error("Expected message about no summary")
	}
}
