// Package lang defines the linguistic analyzer collaborator consumed by
// the extraction engine: sentence and token boundaries, dependency
// roles, and named-entity spans. A heuristic implementation ships with
// the tool; richer analyzers can be plugged in behind the same
// interface. When no analyzer is supplied, date extraction degrades to
// regex matching and obligations attribute to All Parties.
package lang

// DepRole is a token's dependency role
type DepRole string

const (
	DepSubject        DepRole = "nsubj"     // Nominal subject
	DepPassiveSubject DepRole = "nsubjpass" // Passive nominal subject
	DepOther          DepRole = ""
)

// IsSubject reports whether the role is a nominal or passive-nominal subject.
func (d DepRole) IsSubject() bool {
	return d == DepSubject || d == DepPassiveSubject
}

// EntityLabel is a named-entity label
type EntityLabel string

const (
	EntityNone EntityLabel = ""
	EntityOrg  EntityLabel = "ORG"
	EntityDate EntityLabel = "DATE"
)

// Token is one token of a sentence
type Token struct {
	Text   string      // Surface form
	Lower  string      // Lower-cased form with surrounding punctuation stripped
	Offset int         // Byte offset within the sentence text
	Upper  bool        // True when the surface form is all upper-case letters
	Dep    DepRole     // Dependency role
	Entity EntityLabel // Entity label, if the token is part of an entity span
}

// Entity is a named-entity span within one sentence
type Entity struct {
	Text     string
	Label    EntityLabel
	Sentence int // Index of the containing sentence
	Start    int // First token index within the sentence
	End      int // One past the last token index
}

// Sentence is one sentence with its tokens
type Sentence struct {
	Text   string
	Tokens []Token
}

// Doc is the linguistic analysis of a span of text
type Doc struct {
	Sentences []Sentence
	Entities  []Entity
}

// Analyzer produces a linguistic analysis of plain text. Implementations
// must be safe for reuse across documents; per-call failures surface as
// errors and the pipeline skips the affected clause.
type Analyzer interface {
	Analyze(text string) (*Doc, error)
}
