package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted answer. Content goes through the same schema
// check as a real provider, so a malformed fact fails the same way.
type MockResponse struct {
	Content json.RawMessage
	Stop    string // StopEnd when empty
	Usage   Usage
	Err     error
}

// MockFact scripts a well-formed fun-fact answer.
func MockFact(text string) MockResponse {
	b, _ := json.Marshal(map[string]string{"fact": text})
	return MockResponse{Content: b}
}

// MockProvider answers from a script in order and records what it was asked.
// An exhausted script reports the provider as unavailable, which callers
// treat like any outage.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	requests []Request
	tags     []Tag
}

// NewMockProvider returns a provider that plays script.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.tags = append(m.tags, TagFrom(ctx))
	if len(m.script) == 0 {
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}
	stop := next.Stop
	if stop == "" {
		stop = StopEnd
	}
	return finish(req, next.Content, next.Usage, "mock", stop)
}

func (m *MockProvider) ModelID() string { return "mock" }

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

// Tags returns the context tag of every request received so far.
func (m *MockProvider) Tags() []Tag {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Tag(nil), m.tags...)
}
