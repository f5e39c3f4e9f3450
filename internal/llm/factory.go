package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// NewProvider builds the configured provider. Real providers are wrapped
// so each attempt is logged and failed attempts are retried:
// RetryProvider → LoggingProvider → vendor client.
// The "mock" provider is returned bare with an empty script.
func NewProvider(ctx context.Context, cfg Config, log logrus.FieldLogger) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newBase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log = log.WithField("provider", cfg.Provider)
	}
	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}

func newBase(ctx context.Context, cfg Config) (p Provider, err error) {
	switch cfg.Provider {
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		p, err = NewOpenRouterProvider(cfg.OpenRouter)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}
