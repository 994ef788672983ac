package report

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/clauscan/clauscan/internal/model"
)

func sampleAnalysis() *model.Analysis {
	obligations := model.NewObligationMap()
	obligations.Add(model.NamedParty("ACME"), "ACME shall deliver the goods.")
	obligations.Add(model.AllPartiesSentinel, "All notices must be in writing.")
	obligations.Add(model.AllPartiesSentinel, "Records must be kept for audit.")

	clauseObligations := model.NewObligationMap()
	clauseObligations.Add(model.NamedParty("ACME"), "ACME shall deliver the goods.")

	return &model.Analysis{
		Profile: model.Profile{
			Title:   "Master Service Agreement",
			Type:    "Service Agreement",
			Purpose: "Defines the services to be provided and the terms of provision.",
		},
		Metadata:   model.Metadata{Length: 4200, EstimatedClauses: 6},
		AnalyzedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Clauses: []model.ClauseResult{
			{Title: "SECTION 1.", Category: model.CategoryObligations, Confidence: model.ConfidenceMedium,
				Rationale: model.CategoryObligations.Explanation(), Obligations: clauseObligations},
			{Title: "SECTION 2.", Category: model.CategoryPaymentTerms, Confidence: model.ConfidenceHigh,
				Rationale: model.CategoryPaymentTerms.Explanation(), Summary: "Payment due in 30 days."},
			{Title: "SECTION 3.", Category: model.CategoryObligations, Confidence: model.ConfidenceMedium,
				Rationale: model.CategoryObligations.Explanation()},
		},
		Dates: []model.DateEntry{
			{Text: "30 days", Description: "Notice period: 30 days", Category: model.DateCategoryNotice},
			{Text: "12 months", Description: "Timeframe: 12 months", Category: model.DateCategoryGeneral},
			{Text: "60 days", Description: "Notice period: 60 days", Category: model.DateCategoryNotice},
		},
		Obligations: obligations,
	}
}

func TestExecutiveSummary_CountsSumToClauseTotal(t *testing.T) {
	s := NewSynthesizer(true)
	a := sampleAnalysis()

	summary := s.ExecutiveSummary(a)

	// Every "  <category> <count>" row in the distribution must sum to
	// the clause count.
	rowRe := regexp.MustCompile(`(?m)^  \S.*\s(\d+)$`)
	sum := 0
	for _, match := range rowRe.FindAllStringSubmatch(summary, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			t.Fatalf("bad count in row %q: %v", match[0], err)
		}
		sum += n
	}
	if sum != len(a.Clauses) {
		t.Errorf("distribution sums to %d, expected %d", sum, len(a.Clauses))
	}
}

func TestExecutiveSummary_Contents(t *testing.T) {
	s := NewSynthesizer(true)

	summary := s.ExecutiveSummary(sampleAnalysis())

	for _, want := range []string{
		"Master Service Agreement",
		"Type: Service Agreement",
		"Dates extracted: 3",
		"Obligations identified: 3",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected summary to contain %q\n%s", want, summary)
		}
	}
}

func TestFullReport_PerClauseSections(t *testing.T) {
	s := NewSynthesizer(false)

	report := s.FullReport(sampleAnalysis())

	for _, want := range []string{
		"SECTION 1. - Obligations (Medium confidence)",
		"SECTION 2. - Payment Terms (High confidence)",
		"Summary: Payment due in 30 days.",
		"ACME:",
		"- ACME shall deliver the goods.",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("expected report to contain %q", want)
		}
	}
	if strings.Contains(report, "Generated by clauscan") {
		t.Error("footer should be omitted when disabled")
	}
}

func TestFullReport_DatesGroupedByFirstEncounter(t *testing.T) {
	s := NewSynthesizer(true)

	report := s.FullReport(sampleAnalysis())

	noticeIdx := strings.Index(report, string(model.DateCategoryNotice))
	generalIdx := strings.Index(report, string(model.DateCategoryGeneral))
	if noticeIdx < 0 || generalIdx < 0 {
		t.Fatalf("expected both date groups in report")
	}
	if noticeIdx > generalIdx {
		t.Error("expected Notice Periods group before General Timeframes (first-encounter order)")
	}

	// Both notice entries must land in the one Notice Periods group.
	if !strings.Contains(report, "Notice period: 60 days") {
		t.Error("expected second notice entry in report")
	}
	if !strings.Contains(report, "Generated by clauscan") {
		t.Error("expected footer when enabled")
	}
}

func TestFullReport_Deterministic(t *testing.T) {
	s := NewSynthesizer(true)
	a := sampleAnalysis()

	if s.FullReport(a) != s.FullReport(a) {
		t.Error("expected identical output for repeated rendering")
	}
}
