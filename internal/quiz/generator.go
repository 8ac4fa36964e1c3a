package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/vexillo/internal/country"
)

var (
	ErrInvalidLevel       = errors.New("level must be at least 1")
	ErrNotEnoughCountries = errors.New("reference table has fewer countries than options")
)

// Generator produces flag questions.
type Generator interface {
	// Generate returns a question for the given level in lang.
	Generate(level int, lang country.Lang) (*Question, error)
}

// TableGenerator draws questions from a reference table. It is not safe
// for concurrent use; the rng is shared across calls.
type TableGenerator struct {
	table  *country.Table
	rng    *rand.Rand
	config Config
}

var _ Generator = (*TableGenerator)(nil)

// New creates a generator over table. A nil rng seeds a fresh PCG source.
func New(table *country.Table, rng *rand.Rand, cfg Config) *TableGenerator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &TableGenerator{table: table, rng: rng, config: cfg}
}

// Generate picks a tier, a target country and three distractors.
func (g *TableGenerator) Generate(level int, lang country.Lang) (*Question, error) {
	if level < 1 {
		return nil, fmt.Errorf("generate level %d: %w", level, ErrInvalidLevel)
	}
	n := g.table.Len()
	if n == 0 {
		return nil, fmt.Errorf("generate question: %w", country.ErrEmptyTable)
	}
	if n < OptionCount {
		return nil, fmt.Errorf("generate question: %d countries: %w", n, ErrNotEnoughCountries)
	}

	tier := g.config.PickTier(level, g.rng.Float64())
	target := g.table.At(g.rng.IntN(n))

	pool := make([]country.Country, 0, n-1)
	for _, c := range g.table.All() {
		if c.Code != target.Code {
			pool = append(pool, c)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	options := append([]country.Country{target}, pool[:OptionCount-1]...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return NewQuestion(target, tier, lang, options), nil
}
