// Package library is the searchable flag atlas.
package library

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/i18n"
	lib "github.com/abhisek/vexillo/internal/library"
	"github.com/abhisek/vexillo/internal/router"
	"github.com/abhisek/vexillo/internal/screen"
	"github.com/abhisek/vexillo/internal/screens/detail"
	"github.com/abhisek/vexillo/internal/ui/components"
	"github.com/abhisek/vexillo/internal/ui/layout"
	"github.com/abhisek/vexillo/internal/ui/theme"
)

// LibraryScreen lists countries filtered by a search query and a
// continent.
type LibraryScreen struct {
	table      *country.Table
	lang       country.Lang
	input      components.TextInput
	continents []string
	continent  int
	results    []country.Country
	selected   int
	offset     int
}

var (
	_ screen.Screen          = (*LibraryScreen)(nil)
	_ screen.KeyHintProvider = (*LibraryScreen)(nil)
)

// New creates a library over table showing every country.
func New(table *country.Table, lang country.Lang) *LibraryScreen {
	s := &LibraryScreen{
		table:      table,
		lang:       lang,
		input:      components.NewTextInput(i18n.T(lang, i18n.SearchPrompt), 40),
		continents: lib.Continents(table),
	}
	s.refresh()
	return s
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LibraryScreen) Title() string {
	return i18n.T(s.lang, i18n.Library)
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: i18n.T(s.lang, i18n.Filter)},
		{Key: "↑↓", Description: i18n.T(s.lang, i18n.Navigate)},
		{Key: "Enter", Description: i18n.T(s.lang, i18n.Select)},
		{Key: "Esc", Description: i18n.T(s.lang, i18n.Menu)},
	}
}

// Query returns the current search text.
func (s *LibraryScreen) Query() string {
	return s.input.Value()
}

// Continent returns the active continent filter.
func (s *LibraryScreen) Continent() string {
	return s.continents[s.continent]
}

// Results returns the countries currently listed.
func (s *LibraryScreen) Results() []country.Country {
	return s.results
}

func (s *LibraryScreen) refresh() {
	s.results = lib.Search(s.table, s.input.Value(), s.Continent())
	if s.selected >= len(s.results) {
		s.selected = max(0, len(s.results)-1)
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Lang
		s.input.SetPlaceholder(i18n.T(s.lang, i18n.SearchPrompt))
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.continent = (s.continent + 1) % len(s.continents)
			s.selected, s.offset = 0, 0
			s.refresh()
			return s, nil
		case "shift+tab":
			s.continent = (s.continent - 1 + len(s.continents)) % len(s.continents)
			s.selected, s.offset = 0, 0
			s.refresh()
			return s, nil
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.results) == 0 {
				return s, nil
			}
			c := s.results[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: detail.New(c, s.lang)}
			}
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.selected, s.offset = 0, 0
		s.refresh()
	}
	return s, cmd
}

func (s *LibraryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(s.input.View())
	b.WriteString("\n\n  ")
	b.WriteString(s.renderContinents())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n")

	if len(s.results) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n" + i18n.T(s.lang, i18n.NoResults)))
		return b.String()
	}

	rows := max(1, height-6)
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}
	end := min(len(s.results), s.offset+rows)

	for i := s.offset; i < end; i++ {
		c := s.results[i]
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s  %-28s %s", prefix, c.Flag(), c.LocalName(s.lang),
			theme.Muted.Render(c.LocalCapital(s.lang)+" · "+c.Continent))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line) + "\n")
	}
	return b.String()
}

func (s *LibraryScreen) renderContinents() string {
	chips := make([]string, len(s.continents))
	for i, name := range s.continents {
		if name == lib.AllContinents {
			name = i18n.T(s.lang, i18n.AllContinents)
		}
		chips[i] = theme.Chip(i == s.continent).Render(name)
	}
	return strings.Join(chips, " ")
}
