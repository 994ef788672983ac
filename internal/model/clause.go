package model

// Clause represents a titled contiguous span of document text
type Clause struct {
	Title    string `json:"title"`    // Matched marker text or fallback label
	Body     string `json:"body"`     // Clause text (substring of the document)
	Position int    `json:"position"` // Ordinal position in document order (0-based)
}

// ClauseResult holds the per-clause output of the analysis pipeline
type ClauseResult struct {
	Title       string         `json:"title"`
	Category    Category       `json:"category"`
	Confidence  Confidence     `json:"confidence"`
	Rationale   string         `json:"rationale"`             // Fixed explanation for the category
	Summary     string         `json:"summary,omitempty"`     // LLM summary or truncation fallback
	KeyPoints   []string       `json:"key_points,omitempty"`  // Up to 5 qualifying sentences
	Obligations *ObligationMap `json:"obligations,omitempty"` // Per-clause party obligations
	Dates       []DateEntry    `json:"dates,omitempty"`
	Text        string         `json:"text"` // Clause body, capped at 1000 chars
}

// maxStoredClauseText caps the clause text carried in results.
const maxStoredClauseText = 1000

// CapClauseText truncates a clause body for storage in a ClauseResult.
func CapClauseText(body string) string {
	if len(body) > maxStoredClauseText {
		return body[:maxStoredClauseText]
	}
	return body
}
