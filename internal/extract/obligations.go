package extract

import (
	"strings"

	"github.com/clauscan/clauscan/internal/lang"
	"github.com/clauscan/clauscan/internal/model"
)

// ObligationExtractor attributes obligation sentences to parties.
type ObligationExtractor struct{}

// NewObligationExtractor creates an obligation extractor.
func NewObligationExtractor() *ObligationExtractor {
	return &ObligationExtractor{}
}

// Extract builds a fresh obligation map for one clause. A sentence
// qualifies when it contains "shall" or "must"; it is attributed to the
// first token that is both a nominal subject and part of an ORG entity.
// Without such a token, or without a linguistic analysis at all, the
// sentence goes to the All Parties bucket. Cross-clause aggregation
// happens one level up.
func (e *ObligationExtractor) Extract(doc *lang.Doc, body string) *model.ObligationMap {
	obligations := model.NewObligationMap()

	if doc == nil {
		for _, sent := range lang.SplitSentences(body) {
			if isObligationSentence(sent) {
				obligations.Add(model.AllPartiesSentinel, strings.TrimSpace(sent))
			}
		}
		return obligations
	}

	for _, sent := range doc.Sentences {
		if !isObligationSentence(sent.Text) {
			continue
		}

		party := model.AllPartiesSentinel
		for _, tok := range sent.Tokens {
			if tok.Dep.IsSubject() && tok.Entity == lang.EntityOrg {
				party = model.NamedParty(tok.Text)
				break
			}
		}

		obligations.Add(party, strings.TrimSpace(sent.Text))
	}

	return obligations
}

// isObligationSentence reports whether the sentence expresses a duty.
func isObligationSentence(sentence string) bool {
	lower := strings.ToLower(sentence)
	return strings.Contains(lower, "shall") || strings.Contains(lower, "must")
}
