// Package classify assigns a legal category to clause text.
package classify

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clauscan/clauscan/internal/model"
)

// Model is the optional external classification collaborator. It
// predicts a class index in 0-9 under the fixed category mapping.
type Model interface {
	Classify(ctx context.Context, text string) (int, error)
}

// Classifier scores clause text against per-category keyword sets,
// optionally blended with an external model's prediction.
type Classifier struct {
	model Model // nil disables blending
}

// New creates a Classifier. A nil model forces pure rule-based results.
func New(m Model) *Classifier {
	return &Classifier{model: m}
}

// Classify returns the category, confidence, and fixed explanation for
// a clause body. Model failures degrade silently to the rule-based
// result; they never propagate.
func (c *Classifier) Classify(ctx context.Context, body string) model.Classification {
	category := c.scoreKeywords(body)
	confidence := model.ConfidenceMedium

	if c.model != nil {
		index, err := c.model.Classify(ctx, body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: classification model failed: %v\n", err)
		} else {
			predicted := model.CategoryFromModelIndex(index)
			if predicted == category || category == model.CategoryMiscellaneous {
				category = predicted
				confidence = model.ConfidenceHigh
			}
		}
	}

	return model.Classification{
		Category:    category,
		Confidence:  confidence,
		Explanation: category.Explanation(),
	}
}

// scoreKeywords counts keyword occurrences per category in the
// lower-cased body. The strictly highest score wins; equal top scores
// break toward the first-declared category. A zero top score yields
// Miscellaneous.
func (c *Classifier) scoreKeywords(body string) model.Category {
	lower := strings.ToLower(body)

	best := model.CategoryMiscellaneous
	bestScore := 0
	for _, category := range model.ScoredCategories {
		score := 0
		for _, keyword := range categoryKeywords[category] {
			score += strings.Count(lower, keyword)
		}
		if score > bestScore {
			bestScore = score
			best = category
		}
	}

	return best
}
