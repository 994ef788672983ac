package fetch

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements force a line break around their text so that clause
// markers at the start of headings and paragraphs stay line-anchored.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "br": true, "blockquote": true, "pre": true,
}

// skippedElements contribute no visible text
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"head": true, "nav": true, "footer": true,
}

// ExtractText returns the visible text of an HTML document. Block
// elements become line breaks; scripts, styles, and chrome are dropped.
func ExtractText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	visit(doc, &b)

	// Collapse runs of blank lines left by nested blocks.
	lines := strings.Split(b.String(), "\n")
	var out []string
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}

	return strings.TrimSpace(strings.Join(out, "\n")), nil
}

func visit(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && skippedElements[n.Data] {
		return
	}

	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}

	isBlock := n.Type == html.ElementNode && blockElements[n.Data]
	if isBlock {
		b.WriteString("\n")
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c, b)
	}

	if isBlock {
		b.WriteString("\n")
	}
}
