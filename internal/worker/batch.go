package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/crimezones/internal/model"
)

// Extractor runs the full pipeline on one bulletin source (path or URL)
type Extractor interface {
	Run(ctx context.Context, source string) (*model.Report, error)
}

// ExtractJob processes one source
type ExtractJob struct {
	Source    string
	Extractor Extractor
}

// Execute runs the pipeline for the job's source
func (j *ExtractJob) Execute(ctx context.Context) Result {
	report, err := j.Extractor.Run(ctx, j.Source)
	return &ExtractResult{Source: j.Source, Report: report, Error: err}
}

// ExtractResult is the outcome for one source. Report may be set even when
// Error is, e.g. when no data was extracted.
type ExtractResult struct {
	Source string
	Report *model.Report
	Error  error
}

// GetError returns the pipeline error
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts several bulletins concurrently
type BatchProcessor struct {
	extractor Extractor
	pool      *Pool
}

// NewBatchProcessor creates a batch processor with the given concurrency
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	return &BatchProcessor{extractor: extractor, pool: NewPool(concurrency)}
}

// Process runs every source and returns results in input order
func (b *BatchProcessor) Process(ctx context.Context, sources []string) []*ExtractResult {
	jobs := make([]Job, len(sources))
	for i, s := range sources {
		jobs[i] = &ExtractJob{Source: s, Extractor: b.extractor}
	}

	raw := b.pool.Run(ctx, jobs)
	out := make([]*ExtractResult, len(raw))
	for i, r := range raw {
		if er, ok := r.(*ExtractResult); ok {
			out[i] = er
			continue
		}
		out[i] = &ExtractResult{Source: sources[i], Error: r.GetError()}
	}
	return out
}

// ProcessFile reads sources from a file and processes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*ExtractResult, error) {
	sources, err := ReadSources(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.Process(ctx, sources), nil
}

// ReadSources reads one path or URL per line, skipping blanks and # comments
// and dropping duplicates.
func ReadSources(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			sources = append(sources, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return sources, nil
}
