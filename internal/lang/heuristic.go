package lang

import (
	"regexp"
	"strings"
	"unicode"
)

// Heuristic is a pure-Go Analyzer built on punctuation-based sentence
// splitting, casing cues for organizations, and regex date spans. It is
// stateless and safe for concurrent use.
type Heuristic struct{}

// NewHeuristic creates the built-in heuristic analyzer.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// orgSuffixes mark the end of an organization name.
var orgSuffixes = map[string]bool{
	"corp": true, "corp.": true, "corporation": true,
	"inc": true, "inc.": true, "incorporated": true,
	"ltd": true, "ltd.": true, "limited": true,
	"llc": true, "llp": true, "plc": true, "gmbh": true,
	"co.": true, "company": true,
}

// modalVerbs anchor the subject window of a sentence.
var modalVerbs = map[string]bool{
	"shall": true, "must": true, "will": true, "cannot": true, "may": true,
}

// dateRes match temporal expressions. Order matters: more specific
// patterns first so "13 years old" is not swallowed by the bare
// duration pattern.
var dateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,3}\s+years?\s+(?:of\s+age|old)\b`),
	regexp.MustCompile(`(?i)\bage\s+of\s+\d{1,3}\b`),
	regexp.MustCompile(`(?i)\b\d{1,4}\s+(?:calendar\s+|business\s+|working\s+)?(?:day|week|month|year)s?\b`),
	regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:,\s*\d{4})?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:january|february|march|april|may|june|july|august|september|october|november|december)(?:\s+\d{4})?\b`),
	regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
}

// Analyze splits text into sentences and tokens, tags organization and
// date spans, and marks subject-window tokens. It never fails; the
// error return satisfies the Analyzer contract.
func (h *Heuristic) Analyze(text string) (*Doc, error) {
	doc := &Doc{}

	for si, sentText := range SplitSentences(text) {
		sent := Sentence{Text: sentText, Tokens: tokenize(sentText)}
		tagSubjects(sent.Tokens)

		doc.Entities = append(doc.Entities, tagOrganizations(sent.Tokens, si)...)
		doc.Entities = append(doc.Entities, tagDates(&sent, si)...)

		doc.Sentences = append(doc.Sentences, sent)
	}

	return doc, nil
}

// SplitSentences splits text on sentence terminators followed by a
// space or end of text.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()

	return sentences
}

// tokenize splits a sentence on whitespace, recording byte offsets.
func tokenize(sentence string) []Token {
	var tokens []Token

	i := 0
	for i < len(sentence) {
		if sentence[i] == ' ' || sentence[i] == '\t' {
			i++
			continue
		}
		j := i
		for j < len(sentence) && sentence[j] != ' ' && sentence[j] != '\t' {
			j++
		}
		surface := sentence[i:j]
		tokens = append(tokens, Token{
			Text:   surface,
			Lower:  strings.ToLower(strings.Trim(surface, `.,;:'"()!?`)),
			Offset: i,
			Upper:  isAllUpper(surface),
		})
		i = j
	}

	return tokens
}

// isAllUpper reports whether s contains letters and all of them are
// upper-case.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// tagSubjects marks capitalized tokens before the first modal verb as
// nominal subjects. Without a parse tree, the pre-modal window is the
// best available stand-in for the grammatical subject.
func tagSubjects(tokens []Token) {
	modalAt := -1
	for i, tok := range tokens {
		if modalVerbs[tok.Lower] {
			modalAt = i
			break
		}
	}
	if modalAt < 0 {
		return
	}
	for i := 0; i < modalAt; i++ {
		if startsUpper(tokens[i].Text) {
			tokens[i].Dep = DepSubject
		}
	}
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// tagOrganizations finds capitalized token runs ending in a corporate
// suffix and labels the whole run ORG.
func tagOrganizations(tokens []Token, sentence int) []Entity {
	var entities []Entity

	for i, tok := range tokens {
		if !orgSuffixes[tok.Lower] {
			continue
		}
		start := i
		for start > 0 && startsUpper(tokens[start-1].Text) {
			start--
		}
		if start == i {
			continue // Suffix with no preceding name
		}
		for j := start; j <= i; j++ {
			tokens[j].Entity = EntityOrg
		}
		var parts []string
		for j := start; j <= i; j++ {
			parts = append(parts, tokens[j].Text)
		}
		entities = append(entities, Entity{
			Text:     strings.Join(parts, " "),
			Label:    EntityOrg,
			Sentence: sentence,
			Start:    start,
			End:      i + 1,
		})
	}

	return entities
}

// tagDates matches temporal expressions in the sentence text and maps
// them onto token spans.
func tagDates(sent *Sentence, sentence int) []Entity {
	var entities []Entity
	claimed := make([]bool, len(sent.Text))

	for _, re := range dateRes {
		for _, loc := range re.FindAllStringIndex(sent.Text, -1) {
			if overlaps(claimed, loc[0], loc[1]) {
				continue
			}
			start, end := tokenSpan(sent.Tokens, loc[0], loc[1])
			if start < 0 {
				continue
			}
			for i := loc[0]; i < loc[1]; i++ {
				claimed[i] = true
			}
			for j := start; j < end; j++ {
				if sent.Tokens[j].Entity == EntityNone {
					sent.Tokens[j].Entity = EntityDate
				}
			}
			entities = append(entities, Entity{
				Text:     sent.Text[loc[0]:loc[1]],
				Label:    EntityDate,
				Sentence: sentence,
				Start:    start,
				End:      end,
			})
		}
	}

	return entities
}

func overlaps(claimed []bool, start, end int) bool {
	for i := start; i < end && i < len(claimed); i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

// tokenSpan returns the token index range covering byte range [start, end).
func tokenSpan(tokens []Token, start, end int) (int, int) {
	first, last := -1, -1
	for i, tok := range tokens {
		tokEnd := tok.Offset + len(tok.Text)
		if tok.Offset < end && tokEnd > start {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return -1, -1
	}
	return first, last + 1
}
