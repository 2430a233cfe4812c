package model

import "time"

// Document is the text extracted from a bulletin by an ingestion extractor
type Document struct {
	Source      string `json:"source"`       // Path or URL the bytes came from
	ContentType string `json:"content_type"` // Detected MIME type
	Extractor   string `json:"extractor"`    // Extractor that produced the text
	Pages       int    `json:"pages"`
	Text        string `json:"-"`
}

// FetchMeta contains HTTP metadata when the bulletin was downloaded
type FetchMeta struct {
	StatusCode   int               `json:"status_code"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	FromCache    bool              `json:"from_cache"`
	Headers      map[string]string `json:"headers,omitempty"`
}

// Report is the outcome of one pipeline run over one bulletin
type Report struct {
	RunID       string     `json:"run_id"`
	Source      string     `json:"source"`
	ProcessedAt time.Time  `json:"processed_at"`
	FetchMeta   *FetchMeta `json:"fetch_meta,omitempty"` // Only for URL sources
	Document    Document   `json:"document"`

	Strategy Strategy         `json:"strategy"`
	Yields   map[Strategy]int `json:"yields"`   // Records per strategy before selection
	Degraded bool             `json:"degraded"` // No strategy reached the yield threshold
	NotFound []string         `json:"not_found,omitempty"`

	Records []ParsedRecord `json:"records"` // Deduplicated records
	Zones   []RiskZone     `json:"zones"`   // Assembled, ordered zones

	LLM *LLMSummary `json:"llm,omitempty"` // Optional narrative, never affects zones
}

// CountByRisk tallies zones per risk level
func (r *Report) CountByRisk() map[RiskLevel]int {
	counts := make(map[RiskLevel]int, len(RiskLevels))
	for _, level := range RiskLevels {
		counts[level] = 0
	}
	for _, z := range r.Zones {
		counts[z.RiskLevel]++
	}
	return counts
}

// LLMSummary contains the optional LLM-generated narrative
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	Strict    bool     `json:"strict"` // Whether number enforcement was enabled
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
