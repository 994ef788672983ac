package extract

import (
	"regexp"
	"strings"

	"github.com/clauscan/clauscan/internal/lang"
	"github.com/clauscan/clauscan/internal/model"
)

// fallbackDateRes is the fixed regex set used when no linguistic
// analysis is available: age, day, and month expressions.
var fallbackDateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,3}\s+years?\s+(?:of\s+age|old)\b`),
	regexp.MustCompile(`(?i)\b\d{1,4}\s+(?:calendar\s+|business\s+)?days?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+months?\b`),
}

// dateRule pairs a description template with its category. Rules are
// checked in a fixed priority order; the first whose keywords co-occur
// in the containing sentence wins, so a sentence with both "notice" and
// "delete" signals is a notice period. That silent first-match-wins
// behavior is part of the contract.
type dateRule struct {
	keywords []string
	prefix   string
	category model.DateCategory
}

var dateRules = []dateRule{
	{[]string{"years old", "years of age", "age of", "minimum age"}, "Age requirement: ", model.DateCategoryAge},
	{[]string{"notice", "notify", "notification"}, "Notice period: ", model.DateCategoryNotice},
	{[]string{"delet", "remov", "erase", "destroy"}, "Deletion timeframe: ", model.DateCategoryDeletion},
	{[]string{"deadline", "due", "no later than", "submit"}, "Deadline: ", model.DateCategoryDeadline},
	{[]string{"retain", "retention", "preserve", "keep"}, "Retention period: ", model.DateCategoryRetention},
}

// DateExtractor extracts temporal expressions with contextual
// descriptions and category buckets.
type DateExtractor struct {
	window int // Tokens of context either side of the match
}

// NewDateExtractor creates a date extractor with the given context
// window size.
func NewDateExtractor(window int) *DateExtractor {
	if window <= 0 {
		window = 5
	}
	return &DateExtractor{window: window}
}

// Extract returns every temporal expression of the clause, in document
// order, duplicates preserved. With a linguistic analysis the DATE
// entity spans drive extraction; without one the fixed regex fallback
// runs over the heuristic sentence split.
func (e *DateExtractor) Extract(doc *lang.Doc, body string) []model.DateEntry {
	if doc == nil {
		return e.extractFallback(body)
	}

	var entries []model.DateEntry
	for _, ent := range doc.Entities {
		if ent.Label != lang.EntityDate {
			continue
		}
		sent := doc.Sentences[ent.Sentence]
		entries = append(entries, e.entry(ent.Text, sent.Text, contextWindow(sent.Tokens, ent.Start, ent.End, e.window)))
	}
	return entries
}

// extractFallback runs the regex-only mode over a heuristic sentence
// split, deriving descriptions and categories through the same rules.
func (e *DateExtractor) extractFallback(body string) []model.DateEntry {
	var entries []model.DateEntry

	for _, sentence := range lang.SplitSentences(body) {
		claimed := make([]bool, len(sentence))
		for _, re := range fallbackDateRes {
			for _, loc := range re.FindAllStringIndex(sentence, -1) {
				if rangeClaimed(claimed, loc[0], loc[1]) {
					continue
				}
				for i := loc[0]; i < loc[1]; i++ {
					claimed[i] = true
				}
				entries = append(entries, e.entry(sentence[loc[0]:loc[1]], sentence, fieldContext(sentence, loc[0], loc[1], e.window)))
			}
		}
	}

	return entries
}

// entry builds one DateEntry from a matched expression, its sentence,
// and its context window.
func (e *DateExtractor) entry(dateText, sentence, context string) model.DateEntry {
	description, category := describeDate(dateText, sentence)
	return model.DateEntry{
		Text:        dateText,
		Context:     context,
		Description: description,
		Sentence:    strings.TrimSpace(sentence),
		Category:    category,
	}
}

// describeDate derives the description and category bucket from keyword
// co-occurrence in the containing sentence, first matching rule wins.
func describeDate(dateText, sentence string) (string, model.DateCategory) {
	lower := strings.ToLower(sentence)
	for _, rule := range dateRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.prefix + dateText, rule.category
			}
		}
	}
	return "Timeframe: " + dateText, model.DateCategoryGeneral
}

// contextWindow joins the tokens within window positions of the entity span.
func contextWindow(tokens []lang.Token, start, end, window int) string {
	lo := start - window
	if lo < 0 {
		lo = 0
	}
	hi := end + window
	if hi > len(tokens) {
		hi = len(tokens)
	}
	parts := make([]string, 0, hi-lo)
	for _, tok := range tokens[lo:hi] {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}

// fieldContext approximates the token window around a byte range using
// whitespace fields, for the regex fallback path.
func fieldContext(sentence string, start, end, window int) string {
	before := strings.Fields(sentence[:start])
	match := sentence[start:end]
	after := strings.Fields(sentence[end:])

	if len(before) > window {
		before = before[len(before)-window:]
	}
	if len(after) > window {
		after = after[:window]
	}

	parts := append(append(before, match), after...)
	return strings.Join(parts, " ")
}

func rangeClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end && i < len(claimed); i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}
