// Package llm talks to hosted language models for the short, structured
// answers the game asks for. Providers share one Request/Response shape;
// retries and diagnostics are layered on as decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response per call. When the request carries a
// Schema, the returned Content has already been checked against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request is a single-turn prompt. Fact lookups send one user message.
type Request struct {
	System   string
	Messages []Message

	// Schema asks for structured JSON through the provider's native
	// mechanism. Nil means free text.
	Schema *Schema

	MaxTokens int

	// Temperature is left to the provider default when zero.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name doubles as the OpenAI schema name and
// as the cache key for the compiled validator, so it must be unique per
// definition, e.g. "fun-fact".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // the model that actually answered
	StopReason string // StopEnd or StopMaxTokens
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// finish validates content against the request schema and assembles the
// Response. A truncated answer that fails validation is reported as
// ErrMaxTokensExceeded so callers can tell it apart from a malformed one.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if err := req.Schema.check(content); err != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		return nil, err
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
