// Package pipeline orchestrates the complete document analysis:
// normalization, profiling, segmentation, per-clause classification and
// extraction, and aggregation into a single Analysis.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/clauscan/clauscan/internal/classify"
	"github.com/clauscan/clauscan/internal/extract"
	"github.com/clauscan/clauscan/internal/lang"
	"github.com/clauscan/clauscan/internal/llm"
	"github.com/clauscan/clauscan/internal/model"
	"github.com/clauscan/clauscan/internal/normalize"
	"github.com/clauscan/clauscan/internal/profile"
	"github.com/clauscan/clauscan/internal/segment"
)

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	analyzer    lang.Analyzer
	profiler    *profile.Profiler
	segmenter   *segment.Segmenter
	classifier  *classify.Classifier
	keyPoints   *extract.KeyPointExtractor
	obligations *extract.ObligationExtractor
	dates       *extract.DateExtractor
	provider    llm.Provider // Optional LLM collaborator (nil if disabled)
	config      *model.Config
}

// New creates a pipeline with the given configuration
func New(cfg *model.Config) *Pipeline {
	// Create LLM provider if configured
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.Config{
			Provider:  cfg.LLM.Provider,
			Model:     cfg.LLM.Model,
			APIKey:    cfg.LLM.APIKey,
			BaseURL:   cfg.LLM.BaseURL,
			Timeout:   cfg.LLM.Timeout,
			MaxTokens: cfg.LLM.MaxTokens,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			provider = p
		}
	}

	analyzer := lang.NewHeuristic()

	var classifierModel classify.Model
	if provider != nil {
		classifierModel = provider
	}

	return &Pipeline{
		analyzer:    analyzer,
		profiler:    profile.New(analyzer),
		segmenter:   segment.New(),
		classifier:  classify.New(classifierModel),
		keyPoints:   extract.NewKeyPointExtractor(cfg.Analysis.MaxKeyPoints),
		obligations: extract.NewObligationExtractor(),
		dates:       extract.NewDateExtractor(cfg.Analysis.ContextWindow),
		provider:    provider,
		config:      cfg,
	}
}

// Analyze runs the full pipeline over raw document text. Clause-level
// failures are reported to stderr and the clause skipped; Analyze
// itself only returns what it could extract. Empty input yields an
// empty Analysis, not an error.
func (p *Pipeline) Analyze(ctx context.Context, raw string) (*model.Analysis, error) {
	analysis := &model.Analysis{
		AnalyzedAt:  time.Now().UTC(),
		Obligations: model.NewObligationMap(),
	}

	doc := model.Document{Raw: raw, Normalized: normalize.Text(raw)}
	if doc.Normalized == "" {
		return analysis, nil
	}

	doc.Profile = p.profiler.Profile(doc.Raw, doc.Normalized)
	analysis.Profile = doc.Profile
	analysis.Metadata = model.Metadata{
		Length:           len(doc.Normalized),
		EstimatedClauses: model.EstimateClauses(doc.Normalized),
	}

	clauses := p.segmenter.Split(doc.Normalized)
	clauses = segment.Filter(clauses, p.config.Analysis.MinClauseWords)

	for _, clause := range clauses {
		result, err := p.analyzeClause(ctx, clause)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping clause %q: %v\n", clause.Title, err)
			continue
		}

		analysis.Clauses = append(analysis.Clauses, result)
		analysis.Dates = append(analysis.Dates, result.Dates...)
		analysis.Obligations.Merge(result.Obligations)
	}

	return analysis, nil
}

// analyzeClause runs classification and the three extractors over one
// clause. Extraction shares a single linguistic analysis of the body.
func (p *Pipeline) analyzeClause(ctx context.Context, clause model.Clause) (model.ClauseResult, error) {
	doc, err := p.analyzer.Analyze(clause.Body)
	if err != nil {
		return model.ClauseResult{}, fmt.Errorf("analyze text: %w", err)
	}

	classification := p.classifier.Classify(ctx, clause.Body)

	return model.ClauseResult{
		Title:       clause.Title,
		Category:    classification.Category,
		Confidence:  classification.Confidence,
		Rationale:   classification.Explanation,
		Summary:     p.summarize(ctx, clause.Body),
		KeyPoints:   p.keyPoints.Extract(doc, clause.Body),
		Obligations: p.obligations.Extract(doc, clause.Body),
		Dates:       p.dates.Extract(doc, clause.Body),
		Text:        model.CapClauseText(clause.Body),
	}, nil
}

// summarize produces the clause summary. Short clauses and disabled or
// failing providers fall back to truncation.
func (p *Pipeline) summarize(ctx context.Context, body string) string {
	if p.provider != nil && len(strings.Fields(body)) >= 10 {
		summary, err := p.provider.Summarize(ctx, body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: clause summary failed: %v\n", err)
		} else if summary != "" {
			return summary
		}
	}
	return truncateSummary(body)
}

const summaryTruncateAt = 200

func truncateSummary(body string) string {
	if len(body) <= summaryTruncateAt {
		return body
	}
	return body[:summaryTruncateAt] + "..."
}
