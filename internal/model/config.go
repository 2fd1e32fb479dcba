package model

import (
	"fmt"
	"time"
)

// Credentials holds the reddit script-app login. All fields are required.
type Credentials struct {
	ClientID     string `yaml:"client_id" mapstructure:"client_id"`
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret"`
	Username     string `yaml:"username" mapstructure:"username"`
	Password     string `yaml:"password" mapstructure:"password"`
	UserAgent    string `yaml:"user_agent" mapstructure:"user_agent"`
}

// CacheConfig controls the listing cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// HTTPConfig controls the API client.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RetryCount        int           `yaml:"retry_count" mapstructure:"retry_count"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
}

// LLMConfig controls the optional plot commentary. It never affects
// classification, aggregation, or rendering.
type LLMConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// Config is the complete run configuration.
type Config struct {
	Credentials   Credentials `yaml:",inline" mapstructure:",squash"`
	Communities   []string    `yaml:"communities" mapstructure:"communities"`
	Mode          string      `yaml:"mode" mapstructure:"mode"`   // hot, top, comments
	Limit         int         `yaml:"limit" mapstructure:"limit"` // listing size per community
	WallThreshold int         `yaml:"wall_threshold" mapstructure:"wall_threshold"`
	Output        string      `yaml:"output" mapstructure:"output"`
	Workers       int         `yaml:"workers" mapstructure:"workers"`
	Cache         CacheConfig `yaml:"cache" mapstructure:"cache"`
	HTTP          HTTPConfig  `yaml:"http" mapstructure:"http"`
	LLM           LLMConfig   `yaml:"llm" mapstructure:"llm"`
	Verbose       bool        `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults. Credentials and the
// community list have no defaults; they must come from the config file.
func DefaultConfig() *Config {
	return &Config{
		Mode:          ModeHot,
		Limit:         100,
		WallThreshold: 100,
		Output:        "quadrant.png",
		Workers:       4,
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "", // resolved to ~/.quadrant/cache by the CLI
			TTL:     30 * time.Minute,
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			RetryCount:        2,
			RequestsPerSecond: 1, // script apps get 60 requests/minute
			Burst:             5,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			MaxTokens: 600,
		},
	}
}

// Fetch modes, matching the listings the API exposes.
const (
	ModeHot      = "hot"
	ModeTop      = "top"
	ModeComments = "comments" // comments on newest posts
)

// Validate checks the configuration before any network access.
func (c *Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"client_id", c.Credentials.ClientID},
		{"client_secret", c.Credentials.ClientSecret},
		{"username", c.Credentials.Username},
		{"password", c.Credentials.Password},
		{"user_agent", c.Credentials.UserAgent},
	}
	for _, field := range required {
		if field.value == "" {
			return &ConfigError{Reason: field.name + " is required"}
		}
	}
	if len(c.Communities) == 0 {
		return &ConfigError{Reason: "at least one community is required"}
	}
	switch c.Mode {
	case ModeHot, ModeTop, ModeComments:
	default:
		return &ConfigError{Reason: fmt.Sprintf("unknown mode %q (want hot, top or comments)", c.Mode)}
	}
	if c.Limit <= 0 {
		return &ConfigError{Reason: "limit must be positive"}
	}
	if c.Output == "" {
		return &ConfigError{Reason: "output path is required"}
	}
	return nil
}
