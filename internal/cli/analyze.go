package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clauscan/clauscan/internal/cache"
	"github.com/clauscan/clauscan/internal/fetch"
	"github.com/clauscan/clauscan/internal/model"
	"github.com/clauscan/clauscan/internal/pipeline"
	"github.com/clauscan/clauscan/internal/store"
)

var (
	outJSON     string
	outTxt      string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
	saveResult  bool
	saveName    string
	ownerID     string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-url>",
	Short: "Analyze a legal document and generate a clause report",
	Long: `Analyze breaks a legal document into clauses and reports on each one:
- Segment the document along SECTION, Article, and list markers
- Classify each clause by legal category
- Extract key points, party obligations, and important dates
- Profile the document's title, type, and purpose
- Generate plain-text and JSON reports

The argument is a local file path or an http(s) URL.

Example:
  clauscan analyze terms-of-service.txt
  clauscan analyze https://example.com/privacy --json report.json
  clauscan analyze contract.txt --llm openai --llm-model gpt-4o-mini
  clauscan analyze contract.txt --save --user alice`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outTxt, "txt", "", "output plain-text report path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in text reports")

	// HTTP flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Clauscan/0.1 (+https://github.com/clauscan/clauscan)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM classification blending and clause summaries")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")

	// Persistence flags
	analyzeCmd.Flags().BoolVar(&saveResult, "save", false, "save the analysis for later listing")
	analyzeCmd.Flags().StringVar(&saveName, "name", "", "name for the saved analysis (default: derived)")
	analyzeCmd.Flags().StringVar(&ownerID, "user", "default", "owner ID for saved analyses")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	text, err := resolveText(ctx, cfg, source)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	p := pipeline.New(cfg)

	analysis, err := p.Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented %d clauses\n", len(analysis.Clauses))
		fmt.Fprintf(os.Stderr, "✓ Extracted %d dates\n", len(analysis.Dates))
		if analysis.Obligations != nil {
			fmt.Fprintf(os.Stderr, "✓ Identified %d obligations\n", analysis.Obligations.Total())
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderAnalysis(analysis, outJSON, outTxt, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if saveResult {
		s, err := store.NewSQLiteStore(cfg.Store.Dir)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = s.Close() }()

		id, err := s.Save(ctx, ownerID, saveName, analysis)
		if err != nil {
			return fmt.Errorf("save analysis: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Saved analysis: %s\n", id)
	}

	return nil
}

// buildConfig assembles the effective configuration from defaults and
// flags. LLM credentials come only from the environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

// resolveText loads document text from a local file or an http(s) URL
func resolveText(ctx context.Context, cfg *model.Config, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		fetcher := fetch.New(cfg.HTTP, cfg.Cache, newDocumentCache(cfg))
		result, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return "", err
		}
		if verbose && result.Cached {
			fmt.Fprintf(os.Stderr, "✓ Cache hit: %s\n", source)
		}
		return result.Text, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// newDocumentCache builds the layered fetch cache, or nil when caching
// is disabled.
func newDocumentCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache disabled: %v\n", err)
			return nil
		}
		dir = filepath.Join(home, ".clauscan", "cache")
	}

	return cache.NewLayeredCache(cfg.Cache.TTL, dir, cfg.Cache.TTL)
}
