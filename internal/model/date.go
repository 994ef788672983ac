package model

// DateCategory buckets an extracted temporal expression
type DateCategory string

const (
	DateCategoryAge       DateCategory = "Age Requirements"
	DateCategoryNotice    DateCategory = "Notice Periods"
	DateCategoryDeletion  DateCategory = "Deletion/Removal Timeframes"
	DateCategoryDeadline  DateCategory = "Deadlines"
	DateCategoryRetention DateCategory = "Retention Periods"
	DateCategoryGeneral   DateCategory = "General Timeframes"
)

// DateEntry is an extracted temporal expression with generated context.
// Duplicates across clauses are preserved.
type DateEntry struct {
	Text        string       `json:"text"`        // The matched date expression
	Context     string       `json:"context"`     // Tokens surrounding the match
	Description string       `json:"description"` // Generated human-readable description
	Sentence    string       `json:"sentence"`    // Full containing sentence
	Category    DateCategory `json:"category"`
}
