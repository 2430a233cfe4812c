package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/crimezones/internal/artifact"
	"github.com/ppiankov/crimezones/internal/extract"
	"github.com/ppiankov/crimezones/internal/model"
	"github.com/ppiankov/crimezones/internal/pipeline"
)

const (
	debugTextChars  = 3000
	noDataTextChars = 1500
	previewZones    = 5
)

var (
	dryRun        bool
	debugText     bool
	outputPath    string
	outputFormat  string
	year          int
	mergeOutput   bool
	gazetteerFile string
	timeout       time.Duration
	noCache       bool
	insecureTLS   bool
	llmEnabled    bool
	llmProvider   string
	llmModel      string
	llmBaseURL    string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <pdf|url>",
	Short: "Extract neighborhood risk zones from one bulletin",
	Long: `Extract reads one SSP-AM bulletin (local path or http(s) URL), runs the
three table recognizers, keeps the best one and writes the risk zones.

Example:
  crimezones extract anuario-2024.pdf
  crimezones extract anuario-2024.pdf --dry-run
  crimezones extract https://www.ssp.am.gov.br/anuario.pdf --output zones.json
  crimezones extract anuario-2024.pdf --merge --llm`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Output flags
	extractCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the summary and a preview without writing files")
	extractCmd.Flags().BoolVar(&debugText, "debug", false, "print the first 3000 characters of extracted text")
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "crimeZones.ts", "artifact path")
	extractCmd.Flags().StringVar(&outputFormat, "format", "", "artifact format: ts, json, yaml (default: from extension)")
	extractCmd.Flags().IntVar(&year, "year", 0, "reference year (default: current year)")
	extractCmd.Flags().BoolVar(&mergeOutput, "merge", false, "report which zone ids of the existing artifact are kept")

	// Extraction flags
	extractCmd.Flags().StringVar(&gazetteerFile, "gazetteer", "", "YAML gazetteer (default: built-in Manaus table)")

	// HTTP flags
	extractCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh download)")
	extractCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")

	// LLM flags
	extractCmd.Flags().BoolVar(&llmEnabled, "llm", false, "write an LLM narrative next to the artifact")
	extractCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	extractCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	extractCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "OpenAI-compatible endpoint")
}

func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	applyExtractFlags(cmd, cfg)

	format, err := resolveFormat(cfg.Output.Format, cfg.Output.Path)
	if err != nil {
		return err
	}
	if err := requireLLMKey(cfg, llmEnabled); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", cfg.HTTP.Timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	summarizer, err := newSummarizer(cfg, llmEnabled)
	if err != nil {
		return err
	}
	p, err := pipeline.New(cfg, pipeline.Options{Summarizer: summarizer})
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	report, err := p.Run(ctx, source)
	if report != nil && cfg.Output.Debug {
		printText(os.Stderr, "Extracted text", report.Document.Text, debugTextChars)
	}
	if errors.Is(err, extract.ErrNoData) {
		if report != nil && !cfg.Output.Debug {
			printText(os.Stderr, "Text sample", report.Document.Text, noDataTextChars)
		}
		return fmt.Errorf("%s: no neighborhood table recognized: %w", source, err)
	}
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	printSummary(os.Stderr, report)
	if cfg.Output.DryRun || cfg.Output.Debug {
		printPreview(os.Stderr, report.Zones, previewZones)
	}

	if cfg.Output.Merge {
		if err := printMerge(os.Stderr, cfg.Output.Path, format, report.Zones); err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Merge check skipped: %v\n", err)
		}
	}

	if cfg.Output.DryRun {
		fmt.Fprintf(os.Stderr, "\nDry run: nothing written\n")
		return nil
	}

	if err := writeArtifact(cfg.Output.Path, p.Artifact(report), format); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote %d zones: %s\n", len(report.Zones), cfg.Output.Path)

	if err := writeSummary(cfg.Output.Path, report.LLM); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Failed to write LLM summary: %v\n", err)
	}
	return nil
}

// applyExtractFlags overrides configuration with explicitly set flags
func applyExtractFlags(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	cfg.Output.DryRun = dryRun
	cfg.Output.Debug = debugText
	cfg.Output.Merge = mergeOutput
	if flags.Changed("output") {
		cfg.Output.Path = outputPath
	}
	if flags.Changed("format") {
		cfg.Output.Format = outputFormat
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
}

// applyLLMFlags turns the narrative on when --llm is given
func applyLLMFlags(changed func(string) bool, cfg *model.Config) {
	if !llmEnabled {
		return
	}
	if changed("llm-provider") || cfg.LLM.Provider == "" {
		cfg.LLM.Provider = llmProvider
	}
	if changed("llm-model") || cfg.LLM.Model == "" {
		cfg.LLM.Model = llmModel
	}
	if changed("llm-base-url") {
		cfg.LLM.BaseURL = llmBaseURL
	}
}

func resolveFormat(explicit, path string) (artifact.Format, error) {
	if explicit == "" {
		return artifact.FormatFromPath(path), nil
	}
	return artifact.ParseFormat(explicit)
}
