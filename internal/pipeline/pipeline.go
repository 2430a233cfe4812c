package pipeline

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ppiankov/crimezones/internal/artifact"
	"github.com/ppiankov/crimezones/internal/cache"
	"github.com/ppiankov/crimezones/internal/document"
	"github.com/ppiankov/crimezones/internal/extract"
	"github.com/ppiankov/crimezones/internal/gazetteer"
	"github.com/ppiankov/crimezones/internal/llm"
	"github.com/ppiankov/crimezones/internal/model"
	"github.com/ppiankov/crimezones/internal/risk"
	"github.com/ppiankov/crimezones/internal/worker"
)

// Options carries collaborators that callers may share or replace
type Options struct {
	// Gazetteer overrides Extraction.GazetteerFile and the built-in table
	Gazetteer *gazetteer.Gazetteer

	// Limiter is shared across pipelines in a batch so hosts see one budget
	Limiter *worker.Limiter

	// Summarizer is optional; nil disables the narrative
	Summarizer *llm.Summarizer

	// Now stamps reports; defaults to time.Now
	Now func() time.Time
}

// Pipeline turns one bulletin into ordered risk zones:
// load -> ingest -> strategies -> select -> dedupe -> classify -> assemble.
type Pipeline struct {
	fetcher    *Fetcher
	registry   *document.Registry
	gazetteer  *gazetteer.Gazetteer
	resolver   *gazetteer.Resolver
	summarizer *llm.Summarizer
	config     *model.Config
	now        func() time.Time

	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a pipeline from configuration
func New(cfg *model.Config, opts Options) (*Pipeline, error) {
	g := opts.Gazetteer
	if g == nil {
		var err error
		g, err = gazetteer.Load(cfg.Extraction.GazetteerFile)
		if err != nil {
			return nil, err
		}
	}

	fetcher := NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
		cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy).
		WithMaxRetries(cfg.HTTP.MaxRetries)
	if cfg.Cache.Enabled {
		fetcher.WithCache(cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL), cfg.Cache.DiskTTL)
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
	}
	fetcher.WithLimiter(limiter)
	if cfg.HTTP.RespectRobots {
		fetcher.WithRobots()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Pipeline{
		fetcher:   fetcher,
		registry:  document.NewRegistry(),
		gazetteer: g,
		resolver: gazetteer.NewResolver(g, gazetteer.Options{
			ContainmentMinLen: cfg.Extraction.ContainmentMinLen,
			FuzzyMinLen:       cfg.Extraction.FuzzyMinLen,
			FuzzyThreshold:    cfg.Extraction.FuzzyThreshold,
		}),
		summarizer: opts.Summarizer,
		config:     cfg,
		now:        now,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Run processes one source, a local path or an http(s) URL.
//
// When no strategy yields a record the partially filled report is returned
// together with extract.ErrNoData, so callers can show the extracted text.
func (p *Pipeline) Run(ctx context.Context, source string) (*model.Report, error) {
	started := p.now()
	report := &model.Report{
		RunID:       p.newRunID(started),
		Source:      source,
		ProcessedAt: started.UTC(),
	}
	logger := slog.With("run_id", report.RunID, "source", source)

	// 1. Load bytes
	data, meta, err := p.load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	report.FetchMeta = meta

	// 2. Ingest text
	doc, err := p.registry.Extract(source, data)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	report.Document = *doc
	logger.Debug("document ingested", "extractor", doc.Extractor, "content_type", doc.ContentType, "pages", doc.Pages, "chars", len(doc.Text))

	// 3. Run strategies, select and dedupe
	ex, err := extract.Run(extract.Lines(doc.Text), p.resolver, p.config.Extraction.MinStrategyYield)
	if ex != nil {
		report.Strategy = ex.Strategy
		report.Yields = ex.Yields
		report.Degraded = ex.Degraded
		report.NotFound = ex.NotFound
	}
	if err != nil {
		if errors.Is(err, extract.ErrNoData) {
			logger.Warn("no strategy recognized any neighborhood", "yields", report.Yields)
		}
		return report, err
	}
	report.Records = ex.Records

	if ex.Degraded {
		logger.Warn("degraded extraction, results pooled from partial strategies", "yields", ex.Yields)
	}
	if len(ex.NotFound) > 0 {
		logger.Info("names not found in gazetteer", "count", len(ex.NotFound))
	}

	// 4. Classify and assemble
	report.Zones = artifact.Assemble(p.classify(ex.Records, logger))
	logger.Info("extraction finished", "strategy", report.Strategy, "records", len(report.Records), "zones", len(report.Zones))

	// 5. Optional narrative (AFTER classification, never affects zones)
	if p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			logger.Warn("LLM summary generation failed", "error", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return report, nil
}

// Artifact wraps a report's zones with the reference year
func (p *Pipeline) Artifact(report *model.Report) artifact.Artifact {
	year := p.config.Output.Year
	if year == 0 {
		year = report.ProcessedAt.Year()
	}
	return artifact.Artifact{
		Year:        year,
		GeneratedAt: report.ProcessedAt,
		Source:      report.Source,
		RunID:       report.RunID,
		Zones:       report.Zones,
	}
}

// Gazetteer returns the table the pipeline resolves against
func (p *Pipeline) Gazetteer() *gazetteer.Gazetteer {
	return p.gazetteer
}

func (p *Pipeline) classify(records []model.ParsedRecord, logger *slog.Logger) []model.RiskZone {
	zones := make([]model.RiskZone, 0, len(records))
	for _, rec := range records {
		entry, ok := p.gazetteer.Lookup(rec.ResolvedKey)
		if !ok {
			logger.Warn("record references unknown gazetteer key", "key", rec.ResolvedKey)
			continue
		}
		zones = append(zones, risk.Classify(rec, entry))
	}
	return zones
}

func (p *Pipeline) load(ctx context.Context, source string) ([]byte, *model.FetchMeta, error) {
	if isURL(source) {
		result, err := p.fetcher.FetchWithRetry(ctx, source)
		if err != nil {
			return nil, nil, err
		}
		return result.Body, &result.Meta, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}

func (p *Pipeline) newRunID(t time.Time) string {
	p.idMu.Lock()
	defer p.idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), p.entropy).String()
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
