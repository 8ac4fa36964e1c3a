package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicServer answers every call with status and body and hands the
// decoded request to seen.
func anthropicServer(t *testing.T, status int, body any, seen func(map[string]any)) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if seen != nil {
			seen(req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_fact",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 48, "output_tokens": 17},
	}
}

func anthropicError(kind string) map[string]any {
	return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": kind}}
}

func TestAnthropicProvider_FactRequest(t *testing.T) {
	var sent map[string]any
	p := anthropicServer(t, http.StatusOK,
		anthropicMessage(`{"fact":"Cambodia is the only flag with a building."}`, "end_turn"),
		func(req map[string]any) { sent = req })

	req := factRequest()
	req.System = "You share geography trivia in a flag quiz game."
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"fact":"Cambodia is the only flag with a building."}` {
		t.Fatalf("content = %s", resp.Content)
	}
	if resp.StopReason != StopEnd || resp.Usage.TotalTokens != 65 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if sent["max_tokens"] != float64(120) {
		t.Fatalf("max_tokens = %v", sent["max_tokens"])
	}
	cfg, _ := sent["output_config"].(map[string]any)
	format, _ := cfg["format"].(map[string]any)
	schema, _ := format["schema"].(map[string]any)
	if required, _ := schema["required"].([]any); len(required) != 1 || required[0] != "fact" {
		t.Fatalf("fun-fact schema not sent: %v", sent["output_config"])
	}
}

func TestAnthropicProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		check  func(error) bool
	}{
		{
			name:   "fact cut off by token limit",
			status: http.StatusOK,
			body:   anthropicMessage(`{"fact":"Cambodia is the`, "max_tokens"),
			check:  func(err error) bool { return errors.As(err, new(*ErrMaxTokensExceeded)) },
		},
		{
			name:   "answer without fact",
			status: http.StatusOK,
			body:   anthropicMessage(`{"answer":"Angkor Wat"}`, "end_turn"),
			check:  func(err error) bool { return errors.As(err, new(*ErrInvalidResponse)) },
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   anthropicError("rate_limit_error"),
			check:  func(err error) bool { return errors.As(err, new(*ErrRateLimit)) },
		},
		{
			name:   "overloaded",
			status: http.StatusInternalServerError,
			body:   anthropicError("api_error"),
			check:  func(err error) bool { return errors.As(err, new(*ErrProviderUnavailable)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := anthropicServer(t, tt.status, tt.body, nil)
			_, err := p.Generate(context.Background(), factRequest())
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-opus-4-1", "claude-opus-4-1"},
	}
	for _, tt := range tests {
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: tt.input})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != tt.expected {
			t.Errorf("model %q resolved to %q, want %q", tt.input, p.ModelID(), tt.expected)
		}
	}
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
