// Package profile infers document identity metadata from the opening text.
package profile

import (
	"strings"

	"github.com/clauscan/clauscan/internal/lang"
	"github.com/clauscan/clauscan/internal/model"
)

// documentTypes lists known type names in priority order; the first one
// found in the opening sentences wins.
var documentTypes = []string{
	"Terms of Service",
	"Privacy Policy",
	"License Agreement",
	"Service Agreement",
	"Terms and Conditions",
	"User Agreement",
	"Contract",
	"Policy",
}

// titleKeywords qualify a line as a document title.
var titleKeywords = []string{"terms", "policy", "agreement", "service", "privacy"}

// purposes templates the purpose sentence per document type.
var purposes = map[string]string{
	"Terms of Service":     "Sets out the rules users agree to when using the service.",
	"Privacy Policy":       "Explains how personal information is collected, used, and shared.",
	"License Agreement":    "Grants and conditions the right to use the licensed material.",
	"Service Agreement":    "Defines the services to be provided and the terms of provision.",
	"Terms and Conditions": "Sets out the rules governing the relationship between the parties.",
	"User Agreement":       "Defines the terms under which users may access the product.",
	"Contract":             "Records a binding agreement between the parties.",
	"Policy":               "States the rules and standards the organization follows.",
	"Legal Document":       "Sets out legal rights and responsibilities.",
}

const (
	openingChars  = 1000
	openingSents  = 5
	titleLineScan = 10
	titleMinLen   = 10
	titleMaxLen   = 200
)

// Profiler infers a document's title, type, and purpose.
type Profiler struct {
	analyzer lang.Analyzer // Optional, used for organization-based title synthesis
}

// New creates a Profiler. The analyzer may be nil; title synthesis then
// falls back to the document type alone.
func New(analyzer lang.Analyzer) *Profiler {
	return &Profiler{analyzer: analyzer}
}

// Profile inspects the document's opening text. The type scan uses the
// first sentences of the normalized text; the title scan uses raw lines
// because normalization collapses newlines away.
func (p *Profiler) Profile(raw, normalized string) model.Profile {
	docType := p.detectType(normalized)
	title := p.detectTitle(raw)
	if title == "" {
		title = p.synthesizeTitle(normalized, docType)
	}

	purpose := purposes[docType]
	if purpose == "" {
		purpose = purposes["Legal Document"]
	}

	return model.Profile{
		Title:   title,
		Type:    docType,
		Purpose: purpose,
	}
}

// detectType scans the first sentences of the opening text for known
// document-type names, in priority order.
func (p *Profiler) detectType(normalized string) string {
	opening := normalized
	if len(opening) > openingChars {
		opening = opening[:openingChars]
	}

	sentences := lang.SplitSentences(opening)
	if len(sentences) > openingSents {
		sentences = sentences[:openingSents]
	}
	scan := strings.ToLower(strings.Join(sentences, " "))

	for _, docType := range documentTypes {
		if strings.Contains(scan, strings.ToLower(docType)) {
			return docType
		}
	}
	return "Legal Document"
}

// detectTitle scans the first raw lines for one that looks like a
// title: between 10 and 200 characters and containing a legal keyword.
func (p *Profiler) detectTitle(raw string) string {
	lines := strings.Split(raw, "\n")
	if len(lines) > titleLineScan {
		lines = lines[:titleLineScan]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < titleMinLen || len(line) > titleMaxLen {
			continue
		}
		lower := strings.ToLower(line)
		for _, keyword := range titleKeywords {
			if strings.Contains(lower, keyword) {
				return line
			}
		}
	}
	return ""
}

// synthesizeTitle builds a title from the first detected organization
// plus the document type, or the type alone.
func (p *Profiler) synthesizeTitle(normalized, docType string) string {
	if p.analyzer == nil {
		return docType
	}

	opening := normalized
	if len(opening) > openingChars {
		opening = opening[:openingChars]
	}

	doc, err := p.analyzer.Analyze(opening)
	if err != nil {
		return docType
	}
	for _, ent := range doc.Entities {
		if ent.Label == lang.EntityOrg {
			return ent.Text + " " + docType
		}
	}
	return docType
}
