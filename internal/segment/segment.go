// Package segment splits normalized document text into titled clauses.
package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clauscan/clauscan/internal/model"
)

// markerRe matches the structural markers that introduce a clause:
// SECTION/Article headings, leading numbered clauses, lettered
// sub-clauses, and WHEREAS preambles. Alternatives are matched in
// document order, not priority order.
var markerRe = regexp.MustCompile(`SECTION\s+\d+[.:]|Article\s+\d+[.:]|\n\d+\.\s|\n\([a-z]\)|WHEREAS`)

// Segmenter splits text into (title, body) clause pairs.
type Segmenter struct{}

// New creates a new Segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Split partitions text on every marker occurrence. Text before the
// first marker becomes a clause titled "Preamble"; each following span
// is paired with the trimmed marker text that introduced it. If no
// marker occurs anywhere, the text is split on newlines into one
// clause per non-empty line, titled "Paragraph N".
//
// Callers are expected to post-filter the result (see Filter); the
// segmenter itself keeps empty and short clauses.
func (s *Segmenter) Split(text string) []model.Clause {
	locs := markerRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return paragraphFallback(text)
	}

	titles := make([]string, 0, len(locs))
	bodies := make([]string, 0, len(locs)+1)

	bodies = append(bodies, text[:locs[0][0]])
	for i, loc := range locs {
		titles = append(titles, strings.TrimSpace(text[loc[0]:loc[1]]))
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		bodies = append(bodies, text[loc[1]:end])
	}

	clauses := make([]model.Clause, 0, len(bodies))
	clauses = append(clauses, model.Clause{
		Title:    "Preamble",
		Body:     strings.TrimSpace(bodies[0]),
		Position: 0,
	})
	for i := 1; i < len(bodies); i++ {
		// Index-based partitioning keeps titles and bodies aligned, but
		// synthesize a title if they ever diverge.
		title := fmt.Sprintf("Clause %d", i)
		if i-1 < len(titles) {
			title = titles[i-1]
		}
		clauses = append(clauses, model.Clause{
			Title:    title,
			Body:     strings.TrimSpace(bodies[i]),
			Position: i,
		})
	}

	return clauses
}

// paragraphFallback splits marker-less text on newlines, one clause per
// non-empty line.
func paragraphFallback(text string) []model.Clause {
	var clauses []model.Clause
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		clauses = append(clauses, model.Clause{
			Title:    fmt.Sprintf("Paragraph %d", len(clauses)+1),
			Body:     line,
			Position: len(clauses),
		})
	}
	return clauses
}

// Filter drops clauses whose body is empty after trimming or has fewer
// than minWords whitespace-separated tokens. Positions are reassigned
// so retained clauses stay contiguous in document order.
func Filter(clauses []model.Clause, minWords int) []model.Clause {
	var kept []model.Clause
	for _, c := range clauses {
		body := strings.TrimSpace(c.Body)
		if body == "" || len(strings.Fields(body)) < minWords {
			continue
		}
		c.Body = body
		c.Position = len(kept)
		kept = append(kept, c)
	}
	return kept
}
