// Package i18n holds the interface labels in both supported languages.
package i18n

import (
	"strings"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/quiz"
)

// Key names one interface label.
type Key string

const (
	AppName           Key = "app_name"
	MenuTagline       Key = "menu_tagline"
	ChallengeMode     Key = "challenge_mode"
	ChallengeSub      Key = "challenge_sub"
	FlagLibrary       Key = "flag_library"
	FlagLibrarySub    Key = "flag_library_sub"
	ToggleLanguage    Key = "toggle_language"
	Quit              Key = "quit"
	LastScore         Key = "last_score"
	Level             Key = "level"
	Score             Key = "score"
	Progress          Key = "progress"
	NameChallenge     Key = "name_challenge"
	CapitalChallenge  Key = "capital_challenge"
	CurrencyChallenge Key = "currency_challenge"
	QuestionName      Key = "q_name"
	QuestionCapital   Key = "q_capital"
	QuestionCurrency  Key = "q_currency"
	DidYouKnow        Key = "did_you_know"
	LoadingFact       Key = "loading_fact"
	TryAgain          Key = "try_again"
	NextIn            Key = "next_in"
	Loading           Key = "loading"
	SearchPrompt      Key = "search_placeholder"
	AllContinents     Key = "all_continents"
	NoResults         Key = "no_results"
	Capital           Key = "capital"
	Currency          Key = "currency"
	Symbol            Key = "symbol"
	Region            Key = "region"
	FlagURL           Key = "flag_url"
	ExpeditionDone    Key = "expedition_complete"
	ExpeditionSub     Key = "expedition_sub"
	FinalLevel        Key = "final_level"
	MasteryScore      Key = "mastery_score"
	NewExpedition     Key = "new_expedition"
	ReturnMenu        Key = "return_menu"
	Menu              Key = "menu"
	Library           Key = "library"
	Challenge         Key = "challenge"
	Finished          Key = "finished"
	Back              Key = "back"
	Navigate          Key = "navigate"
	Select            Key = "select"
	Answer            Key = "answer"
	Filter            Key = "filter"
	Language          Key = "language"
	ChallengeError    Key = "challenge_error"
	TooSmall          Key = "too_small"
)

type pair struct {
	en, km string
}

var labels = map[Key]pair{
	AppName:           {"Vexillo", "Vexillo"},
	MenuTagline:       {"Explore the world through its flags and cultures!", "ស្វែងយល់ពីពិភពលោកតាមរយៈទង់ជាតិ និងវប្បធម៌!"},
	ChallengeMode:     {"Start Expedition", "ចាប់ផ្តើមដំណើរ"},
	ChallengeSub:      {"Flags, capitals and currencies, level by level", "ទង់ជាតិ រាជធានី និងរូបិយប័ណ្ណ តាមកម្រិត"},
	FlagLibrary:       {"Flag Library", "បណ្ណាល័យទង់ជាតិ"},
	FlagLibrarySub:    {"Browse every country in the atlas", "រុករកប្រទេសទាំងអស់"},
	ToggleLanguage:    {"ភាសាខ្មែរ", "English"},
	Quit:              {"Quit", "ចាកចេញ"},
	LastScore:         {"Last score", "ពិន្ទុចុងក្រោយ"},
	Level:             {"Level", "កម្រិត"},
	Score:             {"Score", "ពិន្ទុ"},
	Progress:          {"Progress", "វឌ្ឍនភាព"},
	NameChallenge:     {"Flag challenge", "វិញ្ញាសាទង់ជាតិ"},
	CapitalChallenge:  {"Capital challenge", "វិញ្ញាសារាជធានី"},
	CurrencyChallenge: {"Currency challenge", "វិញ្ញាសារូបិយប័ណ្ណ"},
	QuestionName:      {"Which country does this flag belong to?", "តើទង់នេះជារបស់ប្រទេសណា?"},
	QuestionCapital:   {"What is the capital of this country?", "តើរាជធានីរបស់ប្រទេសនេះគឺអ្វី?"},
	QuestionCurrency:  {"What currency does this country use?", "តើប្រទេសនេះប្រើរូបិយប័ណ្ណអ្វី?"},
	DidYouKnow:        {"Did you know?", "តើអ្នកដឹងទេ?"},
	LoadingFact:       {"Looking up a fun fact...", "កំពុងស្វែងរកការពិតគួរឱ្យចាប់អារម្មណ៍..."},
	TryAgain:          {"Not quite! The answer was", "មិនទាន់ត្រូវទេ! ចម្លើយគឺ"},
	NextIn:            {"Next in", "បន្ទាប់ក្នុង"},
	Loading:           {"Loading...", "កំពុងផ្ទុក..."},
	SearchPrompt:      {"Search countries or capitals", "ស្វែងរកប្រទេស ឬរាជធានី"},
	AllContinents:     {"All", "ទាំងអស់"},
	NoResults:         {"No countries match your search.", "រកមិនឃើញប្រទេសដែលត្រូវនឹងការស្វែងរកទេ។"},
	Capital:           {"Capital", "រាជធានី"},
	Currency:          {"Currency", "រូបិយប័ណ្ណ"},
	Symbol:            {"Symbol", "និមិត្តសញ្ញា"},
	Region:            {"Region", "តំបន់"},
	FlagURL:           {"Flag", "ទង់"},
	ExpeditionDone:    {"Expedition Complete!", "ដំណើរបានបញ្ចប់!"},
	ExpeditionSub:     {"You conquered all {level} levels.", "អ្នកបានឆ្លងកាត់ទាំង {level} កម្រិត។"},
	FinalLevel:        {"Final level", "កម្រិតចុងក្រោយ"},
	MasteryScore:      {"Mastery score", "ពិន្ទុជំនាញ"},
	NewExpedition:     {"New Expedition", "ដំណើរថ្មី"},
	ReturnMenu:        {"Return to Menu", "ត្រឡប់ទៅម៉ឺនុយ"},
	Menu:              {"Menu", "ម៉ឺនុយ"},
	Library:           {"Library", "បណ្ណាល័យ"},
	Challenge:         {"Challenge", "វិញ្ញាសា"},
	Finished:          {"Finished", "បញ្ចប់"},
	Back:              {"Back", "ថយក្រោយ"},
	Navigate:          {"Navigate", "រុករក"},
	Select:            {"Select", "ជ្រើសរើស"},
	Answer:            {"Answer", "ឆ្លើយ"},
	Filter:            {"Continent", "ទ្វីប"},
	Language:          {"Language", "ភាសា"},
	ChallengeError:    {"Cannot continue the challenge", "មិនអាចបន្តវិញ្ញាសាបានទេ"},
	TooSmall:          {"Terminal too small\n\nResize to at least {min}\nCurrent size {now}", "អេក្រង់តូចពេក\n\nសូមពង្រីកយ៉ាងហោចណាស់ {min}\nទំហំបច្ចុប្បន្ន {now}"},
}

// T returns the label for key in lang. Unknown keys render as the key
// itself so a missing label is visible instead of blank.
func T(lang country.Lang, key Key) string {
	p, ok := labels[key]
	if !ok {
		return string(key)
	}
	if lang == country.LangKhmer {
		return p.km
	}
	return p.en
}

// Format returns the label for key with each {name} placeholder replaced.
func Format(lang country.Lang, key Key, args map[string]string) string {
	s := T(lang, key)
	for k, v := range args {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

// TierLabel is the short badge shown above a question.
func TierLabel(lang country.Lang, tier quiz.Tier) string {
	switch tier {
	case quiz.TierCapital:
		return T(lang, CapitalChallenge)
	case quiz.TierCurrency:
		return T(lang, CurrencyChallenge)
	default:
		return T(lang, NameChallenge)
	}
}

// TierPrompt is the question text for tier.
func TierPrompt(lang country.Lang, tier quiz.Tier) string {
	switch tier {
	case quiz.TierCapital:
		return T(lang, QuestionCapital)
	case quiz.TierCurrency:
		return T(lang, QuestionCurrency)
	default:
		return T(lang, QuestionName)
	}
}

// Keys lists every defined key.
func Keys() []Key {
	keys := make([]Key, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	return keys
}
