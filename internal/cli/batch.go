package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clauscan/clauscan/internal/model"
	"github.com/clauscan/clauscan/internal/pipeline"
	"github.com/clauscan/clauscan/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// noFooter and the LLM flags are defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple documents from a list in parallel",
	Long: `Batch analyzes multiple documents concurrently:
- Read sources from an input file (one file path or URL per line)
- Analyze sources in parallel with a configurable worker count
- Generate individual JSON and text reports for each document

Example:
  clauscan batch documents.txt
  clauscan batch documents.txt --concurrency 8 --output-dir ./reports
  clauscan batch documents.txt --llm openai`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./clauscan-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().StringVar(&userAgent, "ua", "Clauscan/0.1 (+https://github.com/clauscan/clauscan)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in text reports")

	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM classification blending and clause summaries")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	sources, err := readSources(file)
	if err != nil {
		return fmt.Errorf("read sources: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Clauscan Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Sources:      %d\n", len(sources))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.New(cfg)
	pool := worker.NewPool(concurrency, func(ctx context.Context, source string) (*model.Analysis, error) {
		text, err := resolveText(ctx, cfg, source)
		if err != nil {
			return nil, err
		}
		return p.Analyze(ctx, text)
	})

	outcomes := pool.Run(ctx, sources)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Source, outcome.Err)
			continue
		}

		slug := sanitizeFilename(outcome.Source)
		jsonPath := filepath.Join(outputDir, slug+".json")
		txtPath := filepath.Join(outputDir, slug+".txt")

		if err := renderer.RenderJSON(outcome.Analysis, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", outcome.Source, err)
			continue
		}
		if err := renderer.RenderText(outcome.Analysis, txtPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write report: %v\n", outcome.Source, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d clauses)\n", outcome.Source, len(outcome.Analysis.Clauses))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d sources\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// readSources reads one source per line, skipping blanks and comments
func readSources(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var sources []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sources = append(sources, line)
	}

	return sources, scanner.Err()
}

// sanitizeFilename reduces a source path or URL to a safe file stem
func sanitizeFilename(s string) string {
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimSuffix(s, filepath.Ext(s))

	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)

	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "document"
	}

	return s
}
