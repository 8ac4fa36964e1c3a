// Package finished is the end-of-expedition summary.
package finished

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/game"
	"github.com/abhisek/vexillo/internal/i18n"
	"github.com/abhisek/vexillo/internal/screen"
	"github.com/abhisek/vexillo/internal/ui/components"
	"github.com/abhisek/vexillo/internal/ui/layout"
	"github.com/abhisek/vexillo/internal/ui/theme"
)

// FinishedScreen shows the final level and score with the choice to play
// again or go back to the menu.
type FinishedScreen struct {
	level    int
	score    int
	lang     country.Lang
	selected int
}

var (
	_ screen.Screen          = (*FinishedScreen)(nil)
	_ screen.KeyHintProvider = (*FinishedScreen)(nil)
)

// New creates a summary for an expedition that ended at level with score.
func New(level, score int, lang country.Lang) *FinishedScreen {
	return &FinishedScreen{level: level, score: score, lang: lang}
}

func (s *FinishedScreen) Init() tea.Cmd {
	return nil
}

func (s *FinishedScreen) Title() string {
	return i18n.T(s.lang, i18n.Finished)
}

func (s *FinishedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: i18n.T(s.lang, i18n.Navigate)},
		{Key: "Enter", Description: i18n.T(s.lang, i18n.Select)},
		{Key: "Esc", Description: i18n.T(s.lang, i18n.Menu)},
	}
}

func (s *FinishedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Lang
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k", "left", "h":
			s.selected = 0
		case "down", "j", "right", "l", "tab":
			s.selected = 1
		case "enter":
			var ev game.Event = game.PlayAgain{}
			if s.selected == 1 {
				ev = game.Navigate{To: game.ModeMenu}
			}
			return s, func() tea.Msg { return ev }
		}
	}
	return s, nil
}

func (s *FinishedScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Gold).Bold(true).Render("♛"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(i18n.T(s.lang, i18n.ExpeditionDone)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		i18n.Format(s.lang, i18n.ExpeditionSub, map[string]string{"level": strconv.Itoa(s.level)})))
	b.WriteString("\n\n")

	// Stats line.
	left := lipgloss.NewStyle().Foreground(theme.TextDim).Render(i18n.T(s.lang, i18n.FinalLevel)+"  ") +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(strconv.Itoa(s.level))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(i18n.T(s.lang, i18n.MasteryScore)+"  ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d", s.score))
	pad := max(2, cw-6-lipgloss.Width(left)-lipgloss.Width(right))
	b.WriteString(components.Card(left+strings.Repeat(" ", pad)+right, cw, theme.Border))
	b.WriteString("\n\n")

	b.WriteString(components.ButtonStack([]string{
		i18n.T(s.lang, i18n.NewExpedition),
		i18n.T(s.lang, i18n.ReturnMenu),
	}, s.selected, cw))

	return components.Frame(b.String(), width, height)
}
