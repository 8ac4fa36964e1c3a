// Package facts looks up short "did you know?" trivia about a country.
package facts

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/vexillo/internal/country"
)

var (
	// ErrUnavailable is returned when no fact source is configured.
	ErrUnavailable = errors.New("fact lookup unavailable")

	// ErrEmptyFact is returned when the source answered with no text.
	ErrEmptyFact = errors.New("fact lookup returned no text")
)

// Client fetches one fact about a country in the given language.
type Client interface {
	Fetch(ctx context.Context, countryName string, lang country.Lang) (string, error)
}

// Offline is the Client used when no LLM provider is configured.
type Offline struct{}

// Fetch always fails with ErrUnavailable.
func (Offline) Fetch(context.Context, string, country.Lang) (string, error) {
	return "", ErrUnavailable
}

// EmptyFact is shown when a lookup succeeds with no usable text.
func EmptyFact(lang country.Lang) string {
	if lang == country.LangKhmer {
		return "ប្រទេសដ៏គួរឱ្យចាប់អារម្មណ៍ដែលមានប្រវត្តិសាស្ត្រដ៏សម្បូរបែប!"
	}
	return "A fascinating country with a rich history!"
}

// FallbackFact is shown when a lookup fails or times out.
func FallbackFact(lang country.Lang) string {
	if lang == country.LangKhmer {
		return "ស្វែងយល់ពីពិភពលោកតាមរយៈទង់ជាតិ និងវប្បធម៌!"
	}
	return "Explore the world through its flags and cultures!"
}

// Lookup fetches a fact and never fails: errors and timeouts yield
// FallbackFact, an empty answer yields EmptyFact. A cancelled ctx still
// returns the fallback; callers that cancel discard the result anyway.
func Lookup(ctx context.Context, client Client, countryName string, lang country.Lang, log *zap.Logger) string {
	if log == nil {
		log = zap.NewNop()
	}
	if client == nil {
		client = Offline{}
	}

	text, err := client.Fetch(ctx, countryName, lang)
	switch {
	case errors.Is(err, ErrEmptyFact):
		log.Warn("empty fun fact", zap.String("country", countryName), zap.String("lang", string(lang)))
		return EmptyFact(lang)
	case errors.Is(err, ErrUnavailable):
		log.Debug("fun fact offline", zap.String("country", countryName))
		return FallbackFact(lang)
	case err != nil:
		log.Warn("fun fact lookup failed",
			zap.String("country", countryName),
			zap.String("lang", string(lang)),
			zap.Error(err))
		return FallbackFact(lang)
	}

	if text = strings.TrimSpace(text); text == "" {
		log.Warn("empty fun fact", zap.String("country", countryName), zap.String("lang", string(lang)))
		return EmptyFact(lang)
	}
	return text
}
