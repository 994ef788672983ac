package model

import (
	"strings"
	"time"
)

// Profile holds inferred document identity metadata
type Profile struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

// Metadata holds document-level measurements
type Metadata struct {
	Length           int `json:"length"`            // Length of the normalized text in characters
	EstimatedClauses int `json:"estimated_clauses"` // SECTION/Article occurrence heuristic
}

// Analysis is the complete result of one document analysis run.
// It is never mutated after construction; the report stage and the
// persistence collaborator only read it.
type Analysis struct {
	Profile     Profile        `json:"profile"`
	Metadata    Metadata       `json:"metadata"`
	AnalyzedAt  time.Time      `json:"analyzed_at"`
	Clauses     []ClauseResult `json:"clauses"`               // Document order
	Dates       []DateEntry    `json:"dates,omitempty"`       // Aggregated across clauses
	Obligations *ObligationMap `json:"obligations,omitempty"` // Aggregated across clauses
}

// EstimateClauses counts structural headings to approximate clause count.
func EstimateClauses(text string) int {
	return strings.Count(text, "SECTION") + strings.Count(text, "Article") + 1
}
