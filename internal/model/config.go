package model

import "time"

// Config holds the complete clauscan configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig configures document fetching
type HTTPConfig struct {
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent      string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS    bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	RequestsPerSec float64       `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// CacheConfig configures the fetched-page cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"` // Empty means ~/.clauscan/cache
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// StoreConfig configures saved-analysis persistence
type StoreConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"` // Empty means ~/.clauscan/data
}

// LLMConfig configures the optional model collaborator
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai", "ollama", "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"` // Never written to config files
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // Seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// AnalysisConfig tunes the core pipeline
type AnalysisConfig struct {
	MinClauseWords int `yaml:"min_clause_words" mapstructure:"min_clause_words"`
	MaxKeyPoints   int `yaml:"max_key_points" mapstructure:"max_key_points"`
	ContextWindow  int `yaml:"context_window" mapstructure:"context_window"` // Tokens either side of a date
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:        30 * time.Second,
			UserAgent:      "Clauscan/0.1 (+https://github.com/clauscan/clauscan)",
			MaxBodyBytes:   2_000_000,
			RequestsPerSec: 1.0,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 300,
		},
		Analysis: AnalysisConfig{
			MinClauseWords: 5,
			MaxKeyPoints:   5,
			ContextWindow:  5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
