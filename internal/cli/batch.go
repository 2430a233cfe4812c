package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/crimezones/internal/extract"
	"github.com/ppiankov/crimezones/internal/pipeline"
	"github.com/ppiankov/crimezones/internal/textnorm"
	"github.com/ppiankov/crimezones/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchFormat  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract risk zones from several bulletins concurrently",
	Long: `Batch reads one bulletin path or URL per line ("#" starts a comment,
duplicates are skipped) and writes one artifact per source into the output
directory, named after the source: anuario-2024.pdf -> anuario-2024.ts

Example:
  crimezones batch bulletins.txt
  crimezones batch bulletins.txt --concurrency 8 --output-dir ./zones --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Batch-specific flags
	batchCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "number of concurrent workers (default: concurrency.workers)")
	batchCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "./zones", "output directory for artifacts")
	batchCmd.Flags().StringVar(&batchFormat, "format", "ts", "artifact format: ts, json, yaml")
	batchCmd.Flags().DurationVar(&batchTimeout, "batch-timeout", 30*time.Minute, "timeout for entire batch")

	// Shared with extract
	batchCmd.Flags().IntVar(&year, "year", 0, "reference year (default: current year)")
	batchCmd.Flags().StringVar(&gazetteerFile, "gazetteer", "", "YAML gazetteer (default: built-in Manaus table)")
	batchCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "per-download timeout")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh download)")
	batchCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "write an LLM narrative next to each artifact")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	batchCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "OpenAI-compatible endpoint")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}
	if flags.Changed("year") {
		cfg.Output.Year = year
	}
	if flags.Changed("gazetteer") {
		cfg.Extraction.GazetteerFile = gazetteerFile
	}
	if flags.Changed("timeout") {
		cfg.HTTP.Timeout = timeout
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if insecureTLS {
		cfg.HTTP.InsecureTLS = true
	}
	applyLLMFlags(flags.Changed, cfg)

	format, err := resolveFormat(batchFormat, "")
	if err != nil {
		return err
	}
	if err := requireLLMKey(cfg, llmEnabled); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n%s\n", rule)
	fmt.Fprintf(os.Stderr, "  crimezones Batch Processing\n")
	fmt.Fprintf(os.Stderr, "%s\n\n", rule)
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Format:       %s\n", format)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if cfg.LLM.Provider != "" && llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	summarizer, err := newSummarizer(cfg, llmEnabled)
	if err != nil {
		return err
	}
	// One pipeline and one limiter for the whole batch, so each host sees a single budget
	p, err := pipeline.New(cfg, pipeline.Options{
		Summarizer: summarizer,
		Limiter:    worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
	})
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	fmt.Fprintf(os.Stderr, "⚙️  Processing sources...\n\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount, failureCount := 0, 0
	used := make(map[string]int)

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			if errors.Is(result.Error, extract.ErrNoData) {
				fmt.Fprintf(os.Stderr, "✗ %s: no neighborhood table recognized\n", result.Source)
			} else {
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Source, result.Error)
			}
			continue
		}

		outPath := filepath.Join(outputDir, outputName(result.Source, used)+"."+string(format))
		if err := writeArtifact(outPath, p.Artifact(result.Report), format); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Source, err)
			continue
		}
		if err := writeSummary(outPath, result.Report.LLM); err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  %s: failed to write LLM summary: %v\n", result.Source, err)
		}

		successCount++
		note := ""
		if result.Report.Degraded {
			note = " (degraded)"
		}
		fmt.Fprintf(os.Stderr, "✓ %s -> %s (%d zones, %s)%s\n",
			result.Source, outPath, len(result.Report.Zones), result.Report.Strategy, note)
	}

	fmt.Fprintf(os.Stderr, "\n%s\n", rule)
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "%s\n\n", rule)
	fmt.Fprintf(os.Stderr, "  Total:     %d sources\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n\n", outputDir)

	if successCount == 0 && failureCount > 0 {
		return fmt.Errorf("all %d sources failed", failureCount)
	}
	return nil
}

// outputName derives a filesystem-safe artifact name from a path or URL,
// suffixing repeats: anuario.pdf, anuario.pdf -> anuario, anuario-2
func outputName(source string, used map[string]int) string {
	var base string
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		base = path.Base(u.Path)
		if base == "/" || base == "." {
			base = u.Host
		} else {
			base = strings.TrimSuffix(base, path.Ext(base))
		}
	} else {
		base = filepath.Base(source)
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	slug := textnorm.Slugify(base)
	if slug == "" {
		slug = "bulletin"
	}

	used[slug]++
	if n := used[slug]; n > 1 {
		return fmt.Sprintf("%s-%d", slug, n)
	}
	return slug
}
