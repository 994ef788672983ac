// Package normalize cleans raw document text before segmentation.
package normalize

import (
	"regexp"
	"strings"
)

var (
	bracketRe    = regexp.MustCompile(`\[.*?\]`)
	parenRe      = regexp.MustCompile(`\(.*?\)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Text normalizes raw document text: bracketed citations like [1] and
// parenthetical asides are removed (non-greedy, first closing bracket
// terminates the match), then any run of whitespace collapses to a
// single space. Removal is lossy and intentional; citations and
// parentheticals are noise for downstream segmentation.
//
// Stripping before collapsing keeps the function idempotent: the
// removals can leave adjacent spaces, and the collapse pass absorbs
// them, so a second call is a no-op.
func Text(text string) string {
	text = bracketRe.ReplaceAllString(text, "")
	text = parenRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
