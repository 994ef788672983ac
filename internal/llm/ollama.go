package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// OllamaProvider implements the Provider interface for Ollama local models
type OllamaProvider struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

// Ollama API structures
type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	System  string        `json:"system,omitempty"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"` // Max tokens
}

type ollamaResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

type ollamaError struct {
	Error string `json:"error"`
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(config Config) (*OllamaProvider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second // Ollama can be slower for local models
	}

	return &OllamaProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// IsAvailable checks if the provider is properly configured
func (p *OllamaProvider) IsAvailable(ctx context.Context) bool {
	// Check if Ollama is running by trying to list models
	url := fmt.Sprintf("%s/api/tags", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ollama availability check failed (request creation): %v\n", err)
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ollama availability check failed (connection to %s): %v\n", p.baseURL, err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Ollama availability check failed (HTTP %d from %s)\n", resp.StatusCode, p.baseURL)
		return false
	}

	return true
}

// Classify asks the local model for a clause class index.
func (p *OllamaProvider) Classify(ctx context.Context, clauseText string) (int, error) {
	response, err := p.generate(ctx, classifySystemPrompt, BuildClassifyPrompt(clauseText), 8)
	if err != nil {
		return 0, err
	}
	return parseClassIndex(response)
}

// Summarize generates a clause summary using the local model.
func (p *OllamaProvider) Summarize(ctx context.Context, clauseText string) (string, error) {
	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 256
	}
	return p.generate(ctx, summarizeSystemPrompt, BuildSummarizePrompt(clauseText), maxTokens)
}

func (p *OllamaProvider) generate(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	model := p.config.Model
	if model == "" {
		return "", fmt.Errorf("ollama model must be specified (e.g., llama3.1:8b, mistral)")
	}

	apiReq := ollamaRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false, // Get complete response at once
		System: system,
		Options: ollamaOptions{
			Temperature: 0.3, // Lower temperature for more focused output
			NumPredict:  maxTokens,
		},
	}

	resp, err := p.makeRequest(ctx, apiReq)
	if err != nil {
		return "", fmt.Errorf("ollama API error: %w", err)
	}

	return strings.TrimSpace(resp.Response), nil
}

// makeRequest makes an HTTP request to the Ollama API
func (p *OllamaProvider) makeRequest(ctx context.Context, apiReq ollamaRequest) (*ollamaResponse, error) {
	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", p.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr ollamaError
		if err := json.Unmarshal(respBody, &apiErr); err == nil {
			return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &resp, nil
}
