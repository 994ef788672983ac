package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/clauscan/clauscan/internal/model"
)

const sampleAgreement = `SERVICE AGREEMENT

SECTION 1. Definitions. "Services" shall mean the consulting services described in the statement of work.

SECTION 2. Payment. The Client shall pay all invoices within 30 days of receipt. Late payment accrues interest at the statutory rate.

SECTION 3. Termination. Either party may terminate this agreement upon 60 days written notice to the other party.

SECTION 4. Confidentiality. The Receiving Party shall keep all Confidential Information strictly confidential and shall not disclose it to any third party.`

func newTestPipeline() *Pipeline {
	return New(model.DefaultConfig())
}

func TestAnalyze_EndToEnd(t *testing.T) {
	p := newTestPipeline()

	a, err := p.Analyze(context.Background(), sampleAgreement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Clauses) == 0 {
		t.Fatal("expected clauses in analysis")
	}
	if a.Profile.Type != "Service Agreement" {
		t.Errorf("got type %q, want Service Agreement", a.Profile.Type)
	}
	if a.Metadata.Length == 0 {
		t.Error("expected nonzero normalized length")
	}
	if a.Metadata.EstimatedClauses != 5 {
		t.Errorf("got %d estimated clauses, want 5", a.Metadata.EstimatedClauses)
	}

	// Dates and obligations aggregate across clauses.
	if len(a.Dates) == 0 {
		t.Error("expected aggregated dates (30 days, 60 days)")
	}
	if a.Obligations == nil || a.Obligations.Total() == 0 {
		t.Error("expected aggregated obligations")
	}

	for _, clause := range a.Clauses {
		if clause.Category == "" {
			t.Errorf("clause %q has no category", clause.Title)
		}
		if clause.Rationale == "" {
			t.Errorf("clause %q has no rationale", clause.Title)
		}
		if clause.Summary == "" {
			t.Errorf("clause %q has no summary", clause.Title)
		}
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	p := newTestPipeline()

	a, err := p.Analyze(context.Background(), "   \n\t  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Clauses) != 0 {
		t.Errorf("expected no clauses, got %d", len(a.Clauses))
	}
	if a.AnalyzedAt.IsZero() {
		t.Error("expected AnalyzedAt to be set")
	}
}

func TestAnalyze_ShortClausesExcluded(t *testing.T) {
	p := newTestPipeline()

	// SECTION 1's body has four words and must be dropped; SECTION 2
	// survives.
	text := "SECTION 1. Too short to keep.\nSECTION 2. The Supplier shall deliver all ordered goods promptly."
	a, err := p.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, clause := range a.Clauses {
		if clause.Title == "SECTION 1." {
			t.Error("four-word clause should have been filtered out")
		}
	}
	found := false
	for _, clause := range a.Clauses {
		if clause.Title == "SECTION 2." {
			found = true
		}
	}
	if !found {
		t.Error("expected SECTION 2. to survive filtering")
	}
}

func TestSummarize_TruncationFallback(t *testing.T) {
	p := newTestPipeline()

	long := strings.Repeat("The parties agree to the terms herein. ", 20)
	summary := p.summarize(context.Background(), long)
	if len(summary) != summaryTruncateAt+3 {
		t.Errorf("got summary length %d, want %d", len(summary), summaryTruncateAt+3)
	}
	if !strings.HasSuffix(summary, "...") {
		t.Error("expected ellipsis suffix on truncated summary")
	}

	short := "A short clause body."
	if got := p.summarize(context.Background(), short); got != short {
		t.Errorf("short body should pass through, got %q", got)
	}
}

func TestAnalyze_ClauseTextCapped(t *testing.T) {
	p := newTestPipeline()

	text := "SECTION 1. " + strings.Repeat("The parties shall cooperate in good faith at all times. ", 40)
	a, err := p.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Clauses) == 0 {
		t.Fatal("expected a clause")
	}
	if len(a.Clauses[0].Text) > 1000 {
		t.Errorf("clause text not capped: %d chars", len(a.Clauses[0].Text))
	}
}
