package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/vexillo/internal/country"
)

func testTable(t *testing.T) *country.Table {
	t.Helper()
	tbl, err := country.Default()
	if err != nil {
		t.Fatalf("load default table: %v", err)
	}
	return tbl
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestPickTier(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		level int
		r     float64
		want  Tier
	}{
		{1, 0.99, TierName},
		{3, 0.75, TierName},
		{4, 0.5, TierName},
		{4, 0.51, TierCapital},
		{6, 0.99, TierCapital},
		{6, 0.1, TierName},
		{7, 0.61, TierCurrency},
		{7, 0.6, TierCapital},
		{8, 0.31, TierCapital},
		{9, 0.3, TierName},
		{10, 0.0, TierName},
		{10, 0.999, TierCurrency},
	}
	for _, tt := range tests {
		if got := cfg.PickTier(tt.level, tt.r); got != tt.want {
			t.Errorf("PickTier(%d, %v) = %s, want %s", tt.level, tt.r, got, tt.want)
		}
	}
}

func TestDefaultThresholdsPinned(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.CapitalLevel != 4 || cfg.CurrencyLevel != 7 {
		t.Errorf("unlock levels = %d/%d, want 4/7", cfg.CapitalLevel, cfg.CurrencyLevel)
	}
	if cfg.MidCapitalAbove != 0.5 || cfg.HighCurrencyAbove != 0.6 || cfg.HighCapitalAbove != 0.3 {
		t.Errorf("thresholds changed: %+v", cfg)
	}
}

func TestGenerate_TiersByLevel(t *testing.T) {
	gen := New(testTable(t), seeded(1), DefaultConfig())

	allowed := map[int]map[Tier]bool{
		1: {TierName: true},
		2: {TierName: true},
		3: {TierName: true},
		4: {TierName: true, TierCapital: true},
		5: {TierName: true, TierCapital: true},
		6: {TierName: true, TierCapital: true},
		7: {TierName: true, TierCapital: true, TierCurrency: true},
		10: {TierName: true, TierCapital: true, TierCurrency: true},
	}

	for level, tiers := range allowed {
		seen := map[Tier]bool{}
		for i := 0; i < 300; i++ {
			q, err := gen.Generate(level, country.LangEnglish)
			if err != nil {
				t.Fatalf("level %d: %v", level, err)
			}
			if !tiers[q.Tier] {
				t.Fatalf("level %d produced tier %s", level, q.Tier)
			}
			seen[q.Tier] = true
		}
		if len(seen) != len(tiers) {
			t.Errorf("level %d: saw tiers %v, want all of %v", level, seen, tiers)
		}
	}
}

func TestGenerate_OptionInvariants(t *testing.T) {
	gen := New(testTable(t), seeded(42), DefaultConfig())

	for _, lang := range []country.Lang{country.LangEnglish, country.LangKhmer} {
		for i := 0; i < 500; i++ {
			level := i%10 + 1
			q, err := gen.Generate(level, lang)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if len(q.Options) != OptionCount {
				t.Fatalf("got %d options, want %d", len(q.Options), OptionCount)
			}

			count := 0
			uniq := map[string]bool{}
			for _, o := range q.Options {
				if o == q.CorrectAnswer {
					count++
				}
				uniq[o] = true
			}
			if count != 1 {
				t.Fatalf("correct answer %q appears %d times in %v", q.CorrectAnswer, count, q.Options)
			}
			if len(uniq) != OptionCount {
				t.Fatalf("duplicate options: %v", q.Options)
			}
			if q.CorrectAnswer != q.Tier.Field(q.Country, lang) {
				t.Fatalf("correct answer %q is not the target's %s", q.CorrectAnswer, q.Tier)
			}

			// No option may leak another tier's value of the target.
			for _, other := range []Tier{TierName, TierCapital, TierCurrency} {
				if other == q.Tier {
					continue
				}
				leak := other.Field(q.Country, lang)
				for _, o := range q.Options {
					if o == leak {
						t.Fatalf("option %q is the target's %s", o, other)
					}
				}
			}
		}
	}
}

func TestGenerate_CorrectPositionVaries(t *testing.T) {
	gen := New(testTable(t), seeded(7), DefaultConfig())
	positions := map[int]bool{}
	for i := 0; i < 200; i++ {
		q, err := gen.Generate(1, country.LangEnglish)
		if err != nil {
			t.Fatal(err)
		}
		positions[q.OptionIndex(q.CorrectAnswer)] = true
	}
	if len(positions) != OptionCount {
		t.Errorf("correct answer only seen at positions %v", positions)
	}
}

func TestGenerate_EmptyTable(t *testing.T) {
	gen := New(country.NewTable(nil), seeded(1), DefaultConfig())
	q, err := gen.Generate(1, country.LangEnglish)
	if q != nil {
		t.Fatal("expected no question")
	}
	if !errors.Is(err, country.ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}

func TestGenerate_TooFewCountries(t *testing.T) {
	tbl := country.NewTable(testTable(t).All()[:3])
	_, err := New(tbl, seeded(1), DefaultConfig()).Generate(1, country.LangEnglish)
	if !errors.Is(err, ErrNotEnoughCountries) {
		t.Fatalf("expected ErrNotEnoughCountries, got %v", err)
	}
}

func TestGenerate_InvalidLevel(t *testing.T) {
	_, err := New(testTable(t), seeded(1), DefaultConfig()).Generate(0, country.LangEnglish)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestLocalizeKeepsOrder(t *testing.T) {
	gen := New(testTable(t), seeded(3), DefaultConfig())
	q, err := gen.Generate(8, country.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	km := q.Localize(country.LangKhmer)

	if km.Lang != country.LangKhmer {
		t.Fatalf("Lang = %s", km.Lang)
	}
	if q.OptionIndex(q.CorrectAnswer) != km.OptionIndex(km.CorrectAnswer) {
		t.Errorf("correct answer moved: %d -> %d", q.OptionIndex(q.CorrectAnswer), km.OptionIndex(km.CorrectAnswer))
	}
	if km.CorrectAnswer != q.Tier.Field(q.Country, country.LangKhmer) {
		t.Errorf("CorrectAnswer = %q", km.CorrectAnswer)
	}
	back := km.Localize(country.LangEnglish)
	for i := range q.Options {
		if back.Options[i] != q.Options[i] {
			t.Errorf("option %d = %q, want %q", i, back.Options[i], q.Options[i])
		}
	}
}

func TestIsCorrect(t *testing.T) {
	tbl := testTable(t).All()
	q := NewQuestion(tbl[0], TierCapital, country.LangEnglish, tbl[:4])
	if !q.IsCorrect(tbl[0].Capital) {
		t.Error("expected capital to be correct")
	}
	if q.IsCorrect(tbl[1].Capital) {
		t.Error("expected other capital to be wrong")
	}
	if q.IsCorrect(" " + tbl[0].Capital) {
		t.Error("comparison must be exact")
	}
}
