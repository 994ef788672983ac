// Package report renders an Analysis into plain-text artifacts:
// a short executive summary and a full structured report. Formatting is
// deterministic string concatenation; both artifacts are plain text
// safe to write verbatim to a file or display widget.
package report

import (
	"fmt"
	"strings"

	"github.com/clauscan/clauscan/internal/model"
)

const divider = "═══════════════════════════════════════════════════════════"

// Synthesizer builds report text from a completed analysis.
type Synthesizer struct {
	includeFooter bool
}

// NewSynthesizer creates a report synthesizer.
func NewSynthesizer(includeFooter bool) *Synthesizer {
	return &Synthesizer{includeFooter: includeFooter}
}

// ExecutiveSummary renders the document identity, the clause-type
// distribution, the extracted date count, and the total obligation
// count across parties.
func (s *Synthesizer) ExecutiveSummary(a *model.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", a.Profile.Title)
	fmt.Fprintf(&b, "Type: %s\n", a.Profile.Type)
	fmt.Fprintf(&b, "Purpose: %s\n", a.Profile.Purpose)
	fmt.Fprintf(&b, "Length: %d characters, ~%d clauses estimated, %d analyzed\n",
		a.Metadata.Length, a.Metadata.EstimatedClauses, len(a.Clauses))
	b.WriteString("\n")

	b.WriteString("Clause types:\n")
	for _, category := range categoryDistribution(a.Clauses) {
		fmt.Fprintf(&b, "  %-22s %d\n", category.name, category.count)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Dates extracted: %d\n", len(a.Dates))
	total := 0
	if a.Obligations != nil {
		total = a.Obligations.Total()
	}
	fmt.Fprintf(&b, "Obligations identified: %d\n", total)

	return b.String()
}

// FullReport renders the complete structured report: header, per-clause
// sections, and dates grouped by category.
func (s *Synthesizer) FullReport(a *model.Analysis) string {
	var b strings.Builder

	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "  %s\n", a.Profile.Title)
	fmt.Fprintf(&b, "  %s - %s\n", a.Profile.Type, a.Profile.Purpose)
	b.WriteString(divider + "\n\n")

	for _, clause := range a.Clauses {
		s.writeClause(&b, clause)
	}

	s.writeDates(&b, a.Dates)

	if s.includeFooter {
		b.WriteString("\n---\n")
		b.WriteString("Generated by clauscan. Heuristic extraction; not a substitute for legal review.\n")
	}

	return b.String()
}

// writeClause renders one per-clause section.
func (s *Synthesizer) writeClause(b *strings.Builder, clause model.ClauseResult) {
	fmt.Fprintf(b, "%s - %s (%s confidence)\n", clause.Title, clause.Category, clause.Confidence)
	fmt.Fprintf(b, "  %s\n", clause.Rationale)

	if clause.Summary != "" {
		fmt.Fprintf(b, "  Summary: %s\n", clause.Summary)
	}

	if len(clause.KeyPoints) > 0 {
		b.WriteString("  Key points:\n")
		for _, point := range clause.KeyPoints {
			fmt.Fprintf(b, "    - %s\n", point)
		}
	}

	if clause.Obligations != nil && clause.Obligations.Len() > 0 {
		b.WriteString("  Obligations:\n")
		for _, party := range clause.Obligations.Parties() {
			fmt.Fprintf(b, "    %s:\n", party.Display())
			for _, sentence := range clause.Obligations.Sentences(party) {
				fmt.Fprintf(b, "      - %s\n", sentence)
			}
		}
	}

	b.WriteString("\n")
}

// writeDates renders the aggregated dates grouped by category, groups
// ordered by first encounter.
func (s *Synthesizer) writeDates(b *strings.Builder, dates []model.DateEntry) {
	if len(dates) == 0 {
		return
	}

	b.WriteString("Important dates:\n")

	var order []model.DateCategory
	grouped := make(map[model.DateCategory][]model.DateEntry)
	for _, entry := range dates {
		if _, ok := grouped[entry.Category]; !ok {
			order = append(order, entry.Category)
		}
		grouped[entry.Category] = append(grouped[entry.Category], entry)
	}

	for _, category := range order {
		fmt.Fprintf(b, "  %s:\n", category)
		for _, entry := range grouped[category] {
			fmt.Fprintf(b, "    - %s (%s)\n", entry.Description, entry.Text)
		}
	}
}

// categoryCount is one row of the clause-type distribution.
type categoryCount struct {
	name  string
	count int
}

// categoryDistribution counts clauses per category, ordered by first
// encounter.
func categoryDistribution(clauses []model.ClauseResult) []categoryCount {
	var order []model.Category
	counts := make(map[model.Category]int)
	for _, clause := range clauses {
		if _, ok := counts[clause.Category]; !ok {
			order = append(order, clause.Category)
		}
		counts[clause.Category]++
	}

	dist := make([]categoryCount, 0, len(order))
	for _, category := range order {
		dist = append(dist, categoryCount{name: string(category), count: counts[category]})
	}
	return dist
}
