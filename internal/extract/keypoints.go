// Package extract implements the three clause extractors: key points,
// party obligations, and dates. The extractors are independent; a
// failure in one never blocks the others.
package extract

import (
	"strings"

	"github.com/clauscan/clauscan/internal/lang"
)

// modalTokens qualify a sentence as a key point when present as a token.
var modalTokens = map[string]bool{
	"shall": true, "must": true, "will": true, "cannot": true,
}

// legalPhrases qualify a sentence via case-insensitive substring match.
var legalPhrases = []string{"hereby", "notwithstanding", "subject to", "in accordance with"}

// KeyPointExtractor selects the most legally significant sentences of a
// clause: those with modal verbs, legal connector phrases, or
// all-uppercase defined terms.
type KeyPointExtractor struct {
	max int // Cap on returned sentences
}

// NewKeyPointExtractor creates a key-point extractor returning at most
// max sentences per clause.
func NewKeyPointExtractor(max int) *KeyPointExtractor {
	if max <= 0 {
		max = 5
	}
	return &KeyPointExtractor{max: max}
}

// Extract returns the first qualifying sentences in document order,
// capped at the configured maximum. doc is the linguistic analysis of
// body; when nil, sentence and token boundaries fall back to the
// built-in splitter.
func (e *KeyPointExtractor) Extract(doc *lang.Doc, body string) []string {
	var points []string

	for _, sent := range sentencesOf(doc, body) {
		if len(points) >= e.max {
			break
		}
		if qualifiesAsKeyPoint(sent) {
			points = append(points, strings.TrimSpace(sent.Text))
		}
	}

	return points
}

// qualifiesAsKeyPoint checks the three key-point heuristics: modal
// tokens (plus the two-token forms "may not" and "cannot"), legal
// connector phrases, and defined-term style all-uppercase tokens longer
// than 3 characters.
func qualifiesAsKeyPoint(sent lang.Sentence) bool {
	lower := strings.ToLower(sent.Text)

	for _, tok := range sent.Tokens {
		if modalTokens[tok.Lower] {
			return true
		}
		if tok.Upper && len(tok.Text) > 3 {
			return true
		}
	}
	if strings.Contains(lower, "may not") {
		return true
	}
	for _, phrase := range legalPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	return false
}

// sentencesOf returns the analyzed sentences of a clause, or tokenizes
// via the heuristic analyzer when no analysis is available.
func sentencesOf(doc *lang.Doc, body string) []lang.Sentence {
	if doc != nil {
		return doc.Sentences
	}
	fallback, _ := lang.NewHeuristic().Analyze(body)
	return fallback.Sentences
}
