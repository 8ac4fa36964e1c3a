package llm

import (
	"context"
	"net/http"
	"testing"
)

func TestOpenRouterProvider_FactRequest(t *testing.T) {
	srv := &chatServer{status: http.StatusOK, body: chatCompletion(`{"fact":"Mozambique's flag shows an AK-47."}`, "stop")}
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.0-flash-exp",
		BaseURL: srv.start(t),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(context.Background(), factRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"fact":"Mozambique's flag shows an AK-47."}` {
		t.Fatalf("content = %s", resp.Content)
	}

	if srv.gotPath != "/v1/chat/completions" {
		t.Errorf("path = %q", srv.gotPath)
	}
	if got := srv.gotHeader.Get("Authorization"); got != "Bearer sk-or-test" {
		t.Errorf("Authorization = %q", got)
	}
	if got := srv.gotHeader.Get("X-Title"); got != openRouterTitle {
		t.Errorf("X-Title = %q, want %q", got, openRouterTitle)
	}
	if srv.gotBody["model"] != "google/gemini-2.0-flash-exp" {
		t.Errorf("model = %v, want the ID passed through", srv.gotBody["model"])
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "meta-llama/llama-3-8b"}); err == nil {
		t.Fatal("expected error for empty API key")
	}

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q", p.ModelID())
	}
}
