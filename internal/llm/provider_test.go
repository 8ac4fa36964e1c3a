package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_PlaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"fact":"Mozambique's flag has a rifle."}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockFact("Paraguay's flag differs front and back."),
	)

	first, err := mock.Generate(context.Background(), factRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Usage.TotalTokens != 15 {
		t.Fatalf("expected 15 total tokens, got %d", first.Usage.TotalTokens)
	}
	if first.StopReason != StopEnd || first.Model != "mock" {
		t.Fatalf("unexpected response: %+v", first)
	}

	second, err := mock.Generate(context.Background(), factRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"fact":"Paraguay's flag differs front and back."}` {
		t.Fatalf("unexpected content: %s", second.Content)
	}
}

func TestMockProvider_ExhaustedScriptIsUnavailable(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), factRequest())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_ChecksSchema(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"text":"no fact key"}`)},
		MockResponse{Content: json.RawMessage(`{"fact":"Brazil`), Stop: StopMaxTokens},
	)

	_, err := mock.Generate(context.Background(), factRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}

	_, err = mock.Generate(context.Background(), factRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
}

func TestMockProvider_RecordsRequestsAndTags(t *testing.T) {
	mock := NewMockProvider(MockFact("Denmark has the oldest flag in use."), MockFact("x"))

	ctx := WithTag(context.Background(), Tag{Purpose: "fun-fact", Subject: "Denmark", Lang: "en"})
	_, _ = mock.Generate(ctx, factRequest())
	_, _ = mock.Generate(context.Background(), Request{System: "sys"})

	reqs := mock.Requests()
	if len(reqs) != 2 || reqs[0].Schema.Name != "fun-fact" || reqs[1].System != "sys" {
		t.Fatalf("unexpected requests: %+v", reqs)
	}
	tags := mock.Tags()
	if tags[0] != (Tag{Purpose: "fun-fact", Subject: "Denmark", Lang: "en"}) {
		t.Fatalf("tag = %+v", tags[0])
	}
	if tags[1].Purpose != PurposeUnknown {
		t.Fatalf("untagged purpose = %q, want %q", tags[1].Purpose, PurposeUnknown)
	}
}

func TestMockProvider_ReturnsScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})

	_, err := mock.Generate(context.Background(), factRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestTagFrom(t *testing.T) {
	if got := TagFrom(context.Background()); got != (Tag{Purpose: PurposeUnknown}) {
		t.Fatalf("empty context tag = %+v", got)
	}

	ctx := WithTag(context.Background(), Tag{Subject: "Laos", Lang: "km"})
	got := TagFrom(ctx)
	if got.Purpose != PurposeUnknown || got.Subject != "Laos" || got.Lang != "km" {
		t.Fatalf("tag = %+v", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_PrefersGemini(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Fatalf("default provider = %q, want gemini", cfg.Provider)
	}
	if err := (Config{Provider: "none"}).Validate(); err != nil {
		t.Fatalf("none provider should validate: %v", err)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, kv := range keyVars {
		t.Setenv(kv.env, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("OPENROUTER_API_KEY", "sk-or-env")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-ant-env" {
		t.Fatalf("expected anthropic to win over openrouter, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
