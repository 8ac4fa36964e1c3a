package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// funFactSchema matches the structured output fact lookups request.
func funFactSchema() *Schema {
	return &Schema{
		Name:        "fun-fact",
		Description: "A single short trivia fact about a country",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"fact": map[string]any{"type": "string"},
			},
			"required":             []any{"fact"},
			"additionalProperties": false,
		},
	}
}

func TestSchemaCheck_FunFact(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "english fact", raw: `{"fact":"Nepal's flag is not a rectangle."}`},
		{name: "khmer fact", raw: `{"fact":"ទង់ជាតិកម្ពុជាមានរូបប្រាសាទ"}`},
		{name: "empty fact string", raw: `{"fact":""}`},
		{name: "missing fact", raw: `{"trivia":"Bhutan has a dragon."}`, wantErr: "fun-fact"},
		{name: "extra property", raw: `{"fact":"Cyprus shows its map.","source":"wiki"}`, wantErr: "fun-fact"},
		{name: "fact not a string", raw: `{"fact":15}`, wantErr: "fun-fact"},
		{name: "truncated", raw: `{"fact":"Cambodia is the only`, wantErr: "invalid JSON"},
		{name: "plain text", raw: `Did you know? Kiribati spans four hemispheres.`, wantErr: "invalid JSON"},
		{name: "empty", raw: ``, wantErr: "empty response"},
		{name: "whitespace", raw: "  \n", wantErr: "empty response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := funFactSchema().check(json.RawMessage(tt.raw))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
			if string(inv.Content) != tt.raw {
				t.Fatalf("content = %q, want the raw answer", inv.Content)
			}
		})
	}
}

func TestSchemaCheck_NilSchemaAcceptsAnything(t *testing.T) {
	var s *Schema
	if err := s.check(json.RawMessage(`not json at all`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestSchemaCheck_CompiledOncePerName(t *testing.T) {
	s := funFactSchema()
	a, err := s.compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b, err := funFactSchema().compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if a != b {
		t.Fatal("expected the cached schema to be reused")
	}
}

func TestSchemaCheck_BadDefinition(t *testing.T) {
	s := &Schema{Name: "broken-fact", Definition: map[string]any{"type": 42}}
	err := s.check(json.RawMessage(`{"fact":"x"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) || !strings.Contains(err.Error(), "broken-fact") {
		t.Fatalf("expected a schema error naming broken-fact, got %v", err)
	}
}

func TestFinish_TruncatedInvalidIsMaxTokens(t *testing.T) {
	req := Request{Schema: funFactSchema()}
	_, err := finish(req, json.RawMessage(`{"fact":"Cambodia`), Usage{}, "m", StopMaxTokens)
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}

	_, err = finish(req, json.RawMessage(`{"fact":"Cambodia`), Usage{}, "m", StopEnd)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestFinish_FillsTotalTokens(t *testing.T) {
	resp, err := finish(Request{}, json.RawMessage(`"ok"`), Usage{InputTokens: 3, OutputTokens: 4}, "m", StopEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 7 {
		t.Fatalf("expected 7 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("boom")
	var rl *ErrRateLimit
	if !errors.As(classifyStatus(429, base), &rl) {
		t.Fatal("429 should be a rate limit")
	}
	var un *ErrProviderUnavailable
	if !errors.As(classifyStatus(503, base), &un) {
		t.Fatal("503 should be unavailable")
	}
	if !errors.Is(classifyStatus(400, base), base) {
		t.Fatal("classified error should wrap the cause")
	}
}
