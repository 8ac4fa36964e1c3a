package i18n

import (
	"testing"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/quiz"
)

func TestEveryKeyHasBothLanguages(t *testing.T) {
	for _, k := range Keys() {
		if T(country.LangEnglish, k) == "" {
			t.Errorf("key %q has no English label", k)
		}
		if T(country.LangKhmer, k) == "" {
			t.Errorf("key %q has no Khmer label", k)
		}
	}
}

func TestT(t *testing.T) {
	if got := T(country.LangEnglish, Score); got != "Score" {
		t.Errorf("T(en, Score) = %q", got)
	}
	if got := T(country.LangKhmer, Score); got != "ពិន្ទុ" {
		t.Errorf("T(km, Score) = %q", got)
	}
	if got := T(country.LangEnglish, Key("missing")); got != "missing" {
		t.Errorf("unknown key = %q, want the key itself", got)
	}
}

func TestFormat(t *testing.T) {
	got := Format(country.LangEnglish, ExpeditionSub, map[string]string{"level": "10"})
	if got != "You conquered all 10 levels." {
		t.Errorf("Format = %q", got)
	}
}

func TestTierLabels(t *testing.T) {
	tests := []struct {
		tier   quiz.Tier
		prompt string
	}{
		{quiz.TierName, "Which country does this flag belong to?"},
		{quiz.TierCapital, "What is the capital of this country?"},
		{quiz.TierCurrency, "What currency does this country use?"},
	}
	seen := map[string]bool{}
	for _, tt := range tests {
		if got := TierPrompt(country.LangEnglish, tt.tier); got != tt.prompt {
			t.Errorf("TierPrompt(%s) = %q, want %q", tt.tier, got, tt.prompt)
		}
		label := TierLabel(country.LangKhmer, tt.tier)
		if seen[label] {
			t.Errorf("TierLabel(%s) duplicates another tier: %q", tt.tier, label)
		}
		seen[label] = true
	}
}
