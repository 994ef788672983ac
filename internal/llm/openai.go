package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface for OpenAI models
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	// Simple check: try to list models (lightweight API call)
	_, err := p.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Classify asks the model for a clause class index using the Chat
// Completions API.
func (p *OpenAIProvider) Classify(ctx context.Context, clauseText string) (int, error) {
	response, err := p.complete(ctx, classifySystemPrompt, BuildClassifyPrompt(clauseText), 8)
	if err != nil {
		return 0, err
	}
	return parseClassIndex(response)
}

// Summarize generates a clause summary using the Chat Completions API.
func (p *OpenAIProvider) Summarize(ctx context.Context, clauseText string) (string, error) {
	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 256
	}
	return p.complete(ctx, summarizeSystemPrompt, BuildSummarizePrompt(clauseText), maxTokens)
}

func (p *OpenAIProvider) complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	model := p.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3, // Lower temperature for more focused, factual output
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
