package quiz

import "github.com/abhisek/vexillo/internal/country"

// Tier is the difficulty category of a question.
type Tier string

const (
	TierName     Tier = "NAME"
	TierCapital  Tier = "CAPITAL"
	TierCurrency Tier = "CURRENCY"
)

// OptionCount is the number of answer options per question.
const OptionCount = 4

// Field returns the value a question of this tier asks about.
func (t Tier) Field(c country.Country, lang country.Lang) string {
	switch t {
	case TierCapital:
		return c.LocalCapital(lang)
	case TierCurrency:
		return c.LocalCurrency(lang)
	default:
		return c.LocalName(lang)
	}
}

// Question is a single multiple-choice flag question.
type Question struct {
	// Country is the target country whose flag is shown.
	Country country.Country

	// Tier selects which field of Country is asked for.
	Tier Tier

	// Lang is the language Options and CorrectAnswer are rendered in.
	Lang country.Lang

	// Options holds exactly OptionCount strings in display order.
	// One of them equals CorrectAnswer.
	Options []string

	// CorrectAnswer is the target country's field for Tier in Lang.
	CorrectAnswer string

	// sources are the countries behind Options, index for index.
	sources []country.Country
}

// IsCorrect reports whether answer matches the correct answer exactly.
func (q *Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// Localize returns a copy of the question rendered in lang. Option order
// is preserved so a question on screen does not jump around.
func (q *Question) Localize(lang country.Lang) *Question {
	out := &Question{
		Country:       q.Country,
		Tier:          q.Tier,
		Lang:          lang,
		Options:       make([]string, len(q.sources)),
		CorrectAnswer: q.Tier.Field(q.Country, lang),
		sources:       q.sources,
	}
	for i, c := range q.sources {
		out.Options[i] = q.Tier.Field(c, lang)
	}
	return out
}

// OptionIndex returns the index of answer in Options, or -1.
func (q *Question) OptionIndex(answer string) int {
	for i, o := range q.Options {
		if o == answer {
			return i
		}
	}
	return -1
}

// NewQuestion assembles a question from a target and ordered option
// countries. It is used by generators and by tests that need a fixed
// question.
func NewQuestion(target country.Country, tier Tier, lang country.Lang, options []country.Country) *Question {
	q := &Question{
		Country: target,
		Tier:    tier,
		sources: append([]country.Country(nil), options...),
	}
	return q.Localize(lang)
}
