// Package menu is the start screen.
package menu

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/game"
	"github.com/abhisek/vexillo/internal/i18n"
	"github.com/abhisek/vexillo/internal/screen"
	"github.com/abhisek/vexillo/internal/ui/components"
	"github.com/abhisek/vexillo/internal/ui/layout"
	"github.com/abhisek/vexillo/internal/ui/theme"
)

// MenuScreen offers the expedition, the library, the language switch and
// quit.
type MenuScreen struct {
	menu      components.Menu
	lang      country.Lang
	lastScore int
}

var _ screen.Screen = (*MenuScreen)(nil)

func emit(ev game.Event) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return ev }
	}
}

// New creates the menu. lastScore is shown when positive.
func New(lang country.Lang, lastScore int) *MenuScreen {
	m := &MenuScreen{
		lang:      lang,
		lastScore: lastScore,
		menu: components.NewMenu([]components.MenuItem{
			{Action: emit(game.StartChallenge{})},
			{Action: emit(game.Navigate{To: game.ModeLibrary})},
			{Action: emit(game.ToggleLanguage{})},
			{Action: func() tea.Cmd { return tea.Quit }},
		}),
	}
	m.relabel()
	return m
}

func (m *MenuScreen) relabel() {
	m.menu.SetLabels(
		[]string{
			i18n.T(m.lang, i18n.ChallengeMode),
			i18n.T(m.lang, i18n.FlagLibrary),
			i18n.T(m.lang, i18n.ToggleLanguage),
			i18n.T(m.lang, i18n.Quit),
		},
		[]string{
			i18n.T(m.lang, i18n.ChallengeSub),
			i18n.T(m.lang, i18n.FlagLibrarySub),
			"",
			"",
		},
	)
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if lm, ok := msg.(screen.LanguageMsg); ok {
		m.lang = lm.Lang
		m.relabel()
		return m, nil
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MenuScreen) View(width, height int) string {
	compact := layout.Compact(width, height)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		theme.Subtitle.Width(cw).Render(i18n.T(m.lang, i18n.MenuTagline)),
	}
	if m.lastScore > 0 {
		sections = append(sections, renderLastScore(i18n.T(m.lang, i18n.LastScore), m.lastScore, cw))
	}
	sections = append(sections, components.Card(m.menu.View(), cw, theme.Border))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (m *MenuScreen) Title() string {
	return i18n.T(m.lang, i18n.Menu)
}
