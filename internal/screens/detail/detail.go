// Package detail shows one country of the atlas.
package detail

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/i18n"
	"github.com/abhisek/vexillo/internal/screen"
	"github.com/abhisek/vexillo/internal/ui/components"
	"github.com/abhisek/vexillo/internal/ui/theme"
)

// DetailScreen is a read-only card for a single country.
type DetailScreen struct {
	country country.Country
	lang    country.Lang
}

var _ screen.Screen = (*DetailScreen)(nil)

func New(c country.Country, lang country.Lang) *DetailScreen {
	return &DetailScreen{country: c, lang: lang}
}

func (s *DetailScreen) Init() tea.Cmd { return nil }

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if lm, ok := msg.(screen.LanguageMsg); ok {
		s.lang = lm.Lang
	}
	return s, nil
}

func (s *DetailScreen) Title() string {
	return s.country.LocalName(s.lang)
}

func (s *DetailScreen) View(width, height int) string {
	c := s.country
	cw := components.ContentWidth(width)

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(14)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	row := func(k i18n.Key, v string) string {
		return label.Render(i18n.T(s.lang, k)) + value.Render(v)
	}

	heading := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
		Render(c.Flag() + "  " + c.LocalName(s.lang))
	other := theme.Muted.Render(c.LocalName(s.lang.Toggle()))

	rows := []string{
		heading,
		other,
		"",
		row(i18n.Capital, c.LocalCapital(s.lang)),
		row(i18n.Currency, c.LocalCurrency(s.lang)),
		row(i18n.Symbol, c.CurrencySymbol),
		row(i18n.Region, c.Continent),
		row(i18n.FlagURL, c.FlagURL),
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw).
		Padding(1, 2).
		Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
