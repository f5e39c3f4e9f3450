// Package llm is the model access layer used by the question-set authoring
// tool. A Provider sends one prompt and returns JSON that has already been
// checked against the request schema. Decorators add logging and retries.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider sends a request to a hosted model.
type Provider interface {
	// Generate returns the model output. With a Schema set, Content is a
	// JSON document that validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider is configured for.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	System   string
	Messages []Message

	// Schema requests structured output. Without it, Content is the model
	// text encoded as a JSON string.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the output must satisfy. Name is sent to the
// provider as the tool or schema name, e.g. "question-set".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is why the model stopped, normalized across providers.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is a checked model reply.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// Usage is the token count for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }

// completion is the provider-neutral part of an SDK reply.
type completion struct {
	text  string
	usage Usage
	model string
	stop  StopReason
}

// finish applies the checks every provider shares: truncated output is an
// error, and structured output must match the schema.
func finish(req Request, c completion) (*Response, error) {
	if c.stop == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: json.RawMessage(c.text)}
	}

	var content json.RawMessage
	if req.Schema != nil {
		content = json.RawMessage(c.text)
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	} else {
		encoded, err := json.Marshal(c.text)
		if err != nil {
			return nil, fmt.Errorf("encode text response: %w", err)
		}
		content = encoded
	}

	return &Response{
		Content:    content,
		Usage:      c.usage,
		Model:      c.model,
		StopReason: c.stop,
	}, nil
}

// resolveModel maps a short alias to a model ID. Unknown names pass
// through so full IDs can be configured directly.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
