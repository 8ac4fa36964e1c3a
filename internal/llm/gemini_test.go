package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func geminiServer(t *testing.T, status int, body any, seen func(*http.Request, map[string]any)) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		if seen != nil {
			seen(r, req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return &GeminiProvider{client: client, model: "gemini-2.0-flash"}
}

func geminiAnswer(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 30, "candidatesTokenCount": 12, "totalTokenCount": 42},
	}
}

func TestGeminiProvider_FactRequest(t *testing.T) {
	var (
		path string
		sent map[string]any
	)
	p := geminiServer(t, http.StatusOK,
		geminiAnswer(`{"fact":"ទង់ជាតិកម្ពុជាមានរូបប្រាសាទអង្គរវត្ត"}`, "STOP"),
		func(r *http.Request, req map[string]any) { path, sent = r.URL.Path, req })

	resp, err := p.Generate(context.Background(), factRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"fact":"ទង់ជាតិកម្ពុជាមានរូបប្រាសាទអង្គរវត្ត"}` {
		t.Fatalf("content = %s", resp.Content)
	}
	if resp.Usage != (Usage{InputTokens: 30, OutputTokens: 12, TotalTokens: 42}) {
		t.Fatalf("usage = %+v", resp.Usage)
	}

	if !strings.HasSuffix(path, "models/gemini-2.0-flash:generateContent") {
		t.Errorf("path = %q", path)
	}
	gen, _ := sent["generationConfig"].(map[string]any)
	if gen["responseMimeType"] != "application/json" {
		t.Errorf("responseMimeType = %v", gen["responseMimeType"])
	}
	schema, _ := gen["responseSchema"].(map[string]any)
	if required, _ := schema["required"].([]any); len(required) != 1 || required[0] != "fact" {
		t.Errorf("fun-fact schema not sent: %v", gen["responseSchema"])
	}
}

func TestGeminiProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		check  func(error) bool
	}{
		{
			name:   "fact cut off by token limit",
			status: http.StatusOK,
			body:   geminiAnswer(`{"fact":"Cambodia`, "MAX_TOKENS"),
			check:  func(err error) bool { return errors.As(err, new(*ErrMaxTokensExceeded)) },
		},
		{
			name:   "blocked answer has no text",
			status: http.StatusOK,
			body:   map[string]any{"candidates": []any{}},
			check:  func(err error) bool { return errors.As(err, new(*ErrInvalidResponse)) },
		},
		{
			name:   "quota exhausted",
			status: http.StatusTooManyRequests,
			body:   map[string]any{"error": map[string]any{"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"}},
			check:  func(err error) bool { return errors.As(err, new(*ErrRateLimit)) },
		},
		{
			name:   "backend error",
			status: http.StatusServiceUnavailable,
			body:   map[string]any{"error": map[string]any{"code": 503, "message": "overloaded", "status": "UNAVAILABLE"}},
			check:  func(err error) bool { return errors.As(err, new(*ErrProviderUnavailable)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := geminiServer(t, tt.status, tt.body, nil)
			_, err := p.Generate(context.Background(), factRequest())
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	if !errors.As(mapGeminiError(genai.APIError{Code: 429}), &rl) {
		t.Fatal("value APIError 429 should be a rate limit")
	}
	if !errors.As(mapGeminiError(&genai.APIError{Code: 429}), &rl) {
		t.Fatal("pointer APIError 429 should be a rate limit")
	}
	var un *ErrProviderUnavailable
	if !errors.As(mapGeminiError(errors.New("dial tcp: refused")), &un) {
		t.Fatal("transport errors should be unavailable")
	}
}

func TestBuildGeminiSchema_FunFact(t *testing.T) {
	s := buildGeminiSchema(funFactSchema().Definition)

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 1 || s.Properties["fact"].Type != genai.TypeString {
		t.Fatalf("properties = %+v", s.Properties)
	}
	if len(s.Required) != 1 || s.Required[0] != "fact" {
		t.Fatalf("required = %v", s.Required)
	}
}

func TestGeminiModelMapping(t *testing.T) {
	for in, want := range map[string]string{
		"gemini-flash":          "gemini-2.0-flash",
		"gemini-pro":            "gemini-2.0-pro",
		"gemini-2.5-flash-lite": "gemini-2.5-flash-lite",
	} {
		if got := resolveModel(in, geminiModels); got != want {
			t.Errorf("resolveModel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildGeminiSchema_NestedAndUnknown(t *testing.T) {
	s := buildGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tier":   map[string]any{"type": "string", "enum": []any{"name", "capital", "currency"}},
			"colors": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"odd":    map[string]any{"type": "null"},
		},
	})

	if got := s.Properties["tier"].Enum; len(got) != 3 || got[1] != "capital" {
		t.Errorf("enum = %v", got)
	}
	if s.Properties["colors"].Type != genai.TypeArray || s.Properties["colors"].Items.Type != genai.TypeString {
		t.Errorf("colors = %+v", s.Properties["colors"])
	}
	if s.Properties["odd"].Type != genai.TypeString {
		t.Errorf("unknown types should fall back to STRING, got %s", s.Properties["odd"].Type)
	}
	if s.Required != nil {
		t.Errorf("required = %v, want none", s.Required)
	}
}
