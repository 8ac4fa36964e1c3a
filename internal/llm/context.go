package llm

import "context"

// PurposeUnknown labels requests made without a Tag.
const PurposeUnknown = "unknown"

// Tag describes why a request was made. It travels on the context so the
// decorators can label logs and diagnostics without widening Request.
type Tag struct {
	Purpose string // e.g. "fun-fact"
	Subject string // what the request is about, usually a country name
	Lang    string
}

type tagKey struct{}

// WithTag attaches t to ctx.
func WithTag(ctx context.Context, t Tag) context.Context {
	return context.WithValue(ctx, tagKey{}, t)
}

// TagFrom returns the Tag on ctx. A missing tag or purpose reads as
// PurposeUnknown.
func TagFrom(ctx context.Context) Tag {
	t, _ := ctx.Value(tagKey{}).(Tag)
	if t.Purpose == "" {
		t.Purpose = PurposeUnknown
	}
	return t
}
