package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Classify returns the model's clause category as an integer class
	// index in [0, 9]. The mapping to category names is fixed; see
	// model.CategoryFromModelIndex.
	Classify(ctx context.Context, clauseText string) (int, error)

	// Summarize generates a one-to-two sentence plain-language summary
	// of a clause.
	Summarize(ctx context.Context, clauseText string) (string, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for OpenAI
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 256,
	}
}

const classifySystemPrompt = "You are a legal clause classifier. Respond with a single integer and nothing else."

const summarizeSystemPrompt = "You are a legal assistant. Summarize contract clauses in plain language for non-lawyers."

// classIndexLegend enumerates the class indices the model may answer
// with. Index order is fixed and must match model.CategoryFromModelIndex.
var classIndexLegend = []string{
	"0: Definitions",
	"1: Obligations",
	"2: Rights",
	"3: Termination",
	"4: Confidentiality",
	"5: Payment Terms",
	"6: Governing Law",
	"7: Liability",
	"8: Data Protection",
	"9: Miscellaneous",
}

// BuildClassifyPrompt constructs the classification prompt for a clause.
func BuildClassifyPrompt(clauseText string) string {
	return fmt.Sprintf(`Classify the following contract clause into exactly one category.

Categories:
%s

Respond with ONLY the category index (a single integer 0-9).

Clause:
%s`, strings.Join(classIndexLegend, "\n"), clauseText)
}

// BuildSummarizePrompt constructs the summarization prompt for a clause.
func BuildSummarizePrompt(clauseText string) string {
	return fmt.Sprintf(`Summarize the following contract clause in one or two sentences of plain language. State who must do what; do not quote the clause verbatim.

Clause:
%s`, clauseText)
}

// parseClassIndex extracts the integer class index from a model
// response. Models occasionally wrap the digit in prose, so the first
// digit run wins.
func parseClassIndex(response string) (int, error) {
	response = strings.TrimSpace(response)
	start := -1
	for i, r := range response {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, fmt.Errorf("no class index in response: %q", response)
	}
	end := start
	for end < len(response) && response[end] >= '0' && response[end] <= '9' {
		end++
	}
	index := 0
	for _, r := range response[start:end] {
		index = index*10 + int(r-'0')
	}
	if index > 9 {
		return 0, fmt.Errorf("class index %d out of range: %q", index, response)
	}
	return index, nil
}
