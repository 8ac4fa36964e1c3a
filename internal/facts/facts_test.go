package facts

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/llm"
)

// blockingProvider waits for the request context to end.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

// deadlineProvider records whether it was called under a deadline.
type deadlineProvider struct {
	deadline bool
}

func (p *deadlineProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	_, p.deadline = ctx.Deadline()
	return &llm.Response{Content: json.RawMessage(`{"fact":"ok"}`)}, nil
}

func (p *deadlineProvider) ModelID() string { return "deadline" }

func factResponse(text string) llm.MockResponse {
	return llm.MockFact(text)
}

func TestLLMClient_Fetch(t *testing.T) {
	mock := llm.NewMockProvider(factResponse("  Angkor Wat is the only building on a national flag.  "))
	c := NewLLMClient(mock, time.Second)

	got, err := c.Fetch(context.Background(), "Cambodia", country.LangEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Angkor Wat is the only building on a national flag.", got)

	reqs := mock.Requests()
	require.Len(t, reqs, 1)
	req := reqs[0]
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "about Cambodia in English")
	assert.Contains(t, req.Messages[0].Content, "under 15 words")
	require.NotNil(t, req.Schema)
	assert.Equal(t, "fun-fact", req.Schema.Name)
}

func TestLLMClient_KhmerPrompt(t *testing.T) {
	mock := llm.NewMockProvider(factResponse("ប្រាសាទអង្គរវត្ត"))
	c := NewLLMClient(mock, time.Second)

	_, err := c.Fetch(context.Background(), "កម្ពុជា", country.LangKhmer)
	require.NoError(t, err)
	assert.Contains(t, mock.Requests()[0].Messages[0].Content, "in Khmer language")
}

func TestLLMClient_TagAndDeadline(t *testing.T) {
	mock := llm.NewMockProvider(factResponse("Peru's flag shows a vicuña."))
	_, err := NewLLMClient(mock, 0).Fetch(context.Background(), "Peru", country.LangKhmer)
	require.NoError(t, err)
	assert.Equal(t, []llm.Tag{{Purpose: Purpose, Subject: "Peru", Lang: "km"}}, mock.Tags())

	p := &deadlineProvider{}
	_, err = NewLLMClient(p, 0).Fetch(context.Background(), "Peru", country.LangEnglish)
	require.NoError(t, err)
	assert.True(t, p.deadline, "fetch must run under a deadline")
}

func TestLLMClient_MalformedFactIsInvalid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"trivia":"Chile has a star."}`)})
	_, err := NewLLMClient(mock, time.Second).Fetch(context.Background(), "Chile", country.LangEnglish)

	var inv *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestLLMClient_EmptyFact(t *testing.T) {
	c := NewLLMClient(llm.NewMockProvider(factResponse("   ")), time.Second)
	_, err := c.Fetch(context.Background(), "Chile", country.LangEnglish)
	assert.ErrorIs(t, err, ErrEmptyFact)
}

func TestLLMClient_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}})
	_, err := NewLLMClient(mock, time.Second).Fetch(context.Background(), "Chile", country.LangEnglish)

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
		lang     country.Lang
		want     string
		warned   bool
	}{
		{
			name:     "success",
			provider: llm.NewMockProvider(factResponse("Kenya's flag shows a Maasai shield.")),
			lang:     country.LangEnglish,
			want:     "Kenya's flag shows a Maasai shield.",
		},
		{
			name:     "empty english",
			provider: llm.NewMockProvider(factResponse("")),
			lang:     country.LangEnglish,
			want:     "A fascinating country with a rich history!",
			warned:   true,
		},
		{
			name:     "empty khmer",
			provider: llm.NewMockProvider(factResponse("")),
			lang:     country.LangKhmer,
			want:     "ប្រទេសដ៏គួរឱ្យចាប់អារម្មណ៍ដែលមានប្រវត្តិសាស្ត្រដ៏សម្បូរបែប!",
			warned:   true,
		},
		{
			name:     "error english",
			provider: llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}),
			lang:     country.LangEnglish,
			want:     "Explore the world through its flags and cultures!",
			warned:   true,
		},
		{
			name:     "error khmer",
			provider: llm.NewMockProvider(),
			lang:     country.LangKhmer,
			want:     "ស្វែងយល់ពីពិភពលោកតាមរយៈទង់ជាតិ និងវប្បធម៌!",
			warned:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			got := Lookup(context.Background(), NewLLMClient(tt.provider, time.Second), "Kenya", tt.lang, zap.New(core))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.warned, logs.Len() > 0, "warn logs: %v", logs.All())
		})
	}
}

func TestLookup_TimeoutFallsBack(t *testing.T) {
	defer goleak.VerifyNone(t)

	start := time.Now()
	got := Lookup(context.Background(), NewLLMClient(blockingProvider{}, 20*time.Millisecond), "Fiji", country.LangEnglish, nil)
	assert.Equal(t, FallbackFact(country.LangEnglish), got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLookup_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got := Lookup(ctx, NewLLMClient(blockingProvider{}, time.Minute), "Fiji", country.LangKhmer, nil)
	assert.Equal(t, FallbackFact(country.LangKhmer), got)
}

func TestLookup_Offline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	got := Lookup(context.Background(), Offline{}, "Norway", country.LangEnglish, zap.New(core))
	assert.Equal(t, FallbackFact(country.LangEnglish), got)
	assert.Zero(t, logs.Len(), "offline mode is expected, not a warning")

	assert.Equal(t, FallbackFact(country.LangEnglish), Lookup(context.Background(), nil, "Norway", country.LangEnglish, nil))
}

func TestFallbacksDiffer(t *testing.T) {
	for _, lang := range []country.Lang{country.LangEnglish, country.LangKhmer} {
		assert.NotEqual(t, EmptyFact(lang), FallbackFact(lang))
		assert.False(t, strings.Contains(EmptyFact(lang), "*"), "no markdown")
	}
}
