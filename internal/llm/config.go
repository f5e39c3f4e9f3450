package llm

import (
	"fmt"
	"os"
	"time"
)

// EnvPrefix namespaces the provider settings read by ConfigFromEnv.
const EnvPrefix = "QUIZDECK_"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a whole generation call, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-haiku"
	BaseURL string // Optional. A proxy or gateway in front of the API.
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Any OpenAI-compatible endpoint.
}

type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-flash"
	BaseURL string // Optional.
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		// Whole question sets are larger than single questions.
		Timeout: 90 * time.Second,
	}
}

// ConfigFromEnv builds a Config from QUIZDECK_* variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	for name, dst := range map[string]*string{
		"LLM_PROVIDER":        &cfg.Provider,
		"ANTHROPIC_API_KEY":   &cfg.Anthropic.APIKey,
		"ANTHROPIC_MODEL":     &cfg.Anthropic.Model,
		"ANTHROPIC_BASE_URL":  &cfg.Anthropic.BaseURL,
		"OPENAI_API_KEY":      &cfg.OpenAI.APIKey,
		"OPENAI_MODEL":        &cfg.OpenAI.Model,
		"OPENAI_BASE_URL":     &cfg.OpenAI.BaseURL,
		"GEMINI_API_KEY":      &cfg.Gemini.APIKey,
		"GEMINI_MODEL":        &cfg.Gemini.Model,
		"GEMINI_BASE_URL":     &cfg.Gemini.BaseURL,
		"OPENROUTER_API_KEY":  &cfg.OpenRouter.APIKey,
		"OPENROUTER_MODEL":    &cfg.OpenRouter.Model,
		"OPENROUTER_BASE_URL": &cfg.OpenRouter.BaseURL,
	} {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv(EnvPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables in
// priority order (Gemini, OpenAI, Anthropic, OpenRouter) and returns a
// Config for the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// ResolveConfig prefers explicit QUIZDECK_* settings and falls back to
// discovery from the vendors' own variables.
func ResolveConfig() Config {
	cfg := ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg
	}
	if discovered, ok := DiscoverConfig(); ok {
		return discovered
	}
	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key, envName string
	switch c.Provider {
	case "anthropic":
		key, envName = c.Anthropic.APIKey, "ANTHROPIC_API_KEY"
	case "openai":
		key, envName = c.OpenAI.APIKey, "OPENAI_API_KEY"
	case "gemini":
		key, envName = c.Gemini.APIKey, "GEMINI_API_KEY"
	case "openrouter":
		key, envName = c.OpenRouter.APIKey, "OPENROUTER_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s%s is required for the %s provider", EnvPrefix, envName, c.Provider)
	}
	return nil
}
