package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/llm"
)

// Purpose labels fact requests in the diagnostics log.
const Purpose = "fun-fact"

// DefaultTimeout bounds a single lookup, retries included.
const DefaultTimeout = 8 * time.Second

// factSchema is the structured output every provider must return.
var factSchema = &llm.Schema{
	Name:        "fun-fact",
	Description: "A single short trivia fact about a country",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fact": map[string]any{
				"type":        "string",
				"description": "One fascinating fact, under 15 words, plain text",
			},
		},
		"required":             []any{"fact"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You share geography trivia in a flag quiz game.
Answer with one fact only. No markdown, no bold text, no preamble.`

// LLMClient fetches facts from an LLM provider.
type LLMClient struct {
	provider llm.Provider
	timeout  time.Duration
}

var _ Client = (*LLMClient)(nil)

// NewLLMClient creates a client over provider. A zero timeout uses
// DefaultTimeout.
func NewLLMClient(provider llm.Provider, timeout time.Duration) *LLMClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LLMClient{provider: provider, timeout: timeout}
}

// Fetch asks the provider for one fact about countryName.
func (c *LLMClient) Fetch(ctx context.Context, countryName string, lang country.Lang) (string, error) {
	ctx = llm.WithTag(ctx, llm.Tag{Purpose: Purpose, Subject: countryName, Lang: string(lang)})
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(countryName, lang)},
		},
		Schema:      factSchema,
		MaxTokens:   120,
		Temperature: 0.9,
	})
	if err != nil {
		return "", fmt.Errorf("fetch fact for %s: %w", countryName, err)
	}

	var out struct {
		Fact string `json:"fact"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("decode fact for %s: %w", countryName, err)
	}
	if strings.TrimSpace(out.Fact) == "" {
		return "", ErrEmptyFact
	}
	return strings.TrimSpace(out.Fact), nil
}

func buildPrompt(countryName string, lang country.Lang) string {
	in := "in English"
	if lang == country.LangKhmer {
		in = "in Khmer language"
	}
	return fmt.Sprintf(`Provide a single, very short, fascinating "Did you know?" fact about %s %s. `+
		`Keep it under 15 words. No formatting like bolding or markdown. Return only the text.`,
		countryName, in)
}
