package country

import (
	"fmt"
	"strings"
)

// Lang selects which localized field of a record is displayed.
type Lang string

const (
	LangEnglish Lang = "en" // primary
	LangKhmer   Lang = "km" // secondary
)

// Toggle returns the other supported language.
func (l Lang) Toggle() Lang {
	if l == LangKhmer {
		return LangEnglish
	}
	return LangKhmer
}

// IsPrimary reports whether l is the primary (English) language.
func (l Lang) IsPrimary() bool {
	return l != LangKhmer
}

// ParseLang maps a user-supplied language name to a Lang.
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return LangEnglish, nil
	case "km", "khmer":
		return LangKhmer, nil
	default:
		return "", fmt.Errorf("unsupported language: %q", s)
	}
}

// Country is a single immutable record of the reference table.
type Country struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	NameKm         string `json:"nameKm"`
	Capital        string `json:"capital"`
	CapitalKm      string `json:"capitalKm"`
	Currency       string `json:"currency"`
	CurrencyKm     string `json:"currencyKm"`
	CurrencySymbol string `json:"currencySymbol"`
	FlagURL        string `json:"flagUrl"`
	Continent      string `json:"continent"`
}

// LocalName returns the country name in the given language.
func (c Country) LocalName(lang Lang) string {
	if lang == LangKhmer {
		return c.NameKm
	}
	return c.Name
}

// LocalCapital returns the capital in the given language.
func (c Country) LocalCapital(lang Lang) string {
	if lang == LangKhmer {
		return c.CapitalKm
	}
	return c.Capital
}

// LocalCurrency returns the currency name in the given language.
func (c Country) LocalCurrency(lang Lang) string {
	if lang == LangKhmer {
		return c.CurrencyKm
	}
	return c.Currency
}

// Flag renders the ISO 3166 alpha-2 code as a regional-indicator emoji.
// Returns the bare code when it is not two ASCII letters.
func (c Country) Flag() string {
	code := strings.ToUpper(c.Code)
	if len(code) != 2 {
		return code
	}
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return code
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
