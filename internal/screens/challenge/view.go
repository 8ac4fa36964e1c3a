package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vexillo/internal/i18n"
	"github.com/abhisek/vexillo/internal/session"
	"github.com/abhisek/vexillo/internal/ui/components"
	"github.com/abhisek/vexillo/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *ChallengeScreen) View(width, height int) string {
	if s.err != nil {
		return s.renderError(width, height)
	}

	st := s.ctrl.State()
	if st.Question == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  " + i18n.T(s.lang, i18n.Loading))
	}

	cw := components.ContentWidth(width)
	center := theme.Centered(cw)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(st, cw))
	b.WriteString("\n")
	b.WriteString(components.StepBar{
		Label: i18n.T(s.lang, i18n.Progress),
		Done:  st.CorrectInLevel,
		Total: s.ctrl.Config().QuestionsPerLevel,
		Width: cw,
	}.View())
	b.WriteString("\n\n")

	q := st.Question
	b.WriteString(center.Render(q.Country.Flag()))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Secondary).Render(strings.ToUpper(i18n.TierLabel(s.lang, q.Tier))))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(i18n.TierPrompt(s.lang, q.Tier)))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	if st.Answered {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(st, cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *ChallengeScreen) renderInfoLine(st session.State, cw int) string {
	left := theme.LevelBadge.Render(fmt.Sprintf("%s %d", i18n.T(s.lang, i18n.Level), st.Level))
	right := theme.ScoreBadge.Render(fmt.Sprintf("%s %d", i18n.T(s.lang, i18n.Score), st.Score))

	pad := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", pad) + right
}

func (s *ChallengeScreen) renderFeedback(st session.State, cw int) string {
	var body string
	border := theme.Error
	if st.Correct {
		border = theme.Success
		title := theme.FactTitle.Render("✦ " + i18n.T(s.lang, i18n.DidYouKnow))
		text := st.Fact
		if st.FactLoading {
			frame := spinnerFrames[s.spinner%len(spinnerFrames)]
			text = theme.Hint.Render(frame + " " + i18n.T(s.lang, i18n.LoadingFact))
		}
		body = title + "\n" + lipgloss.NewStyle().Width(cw-6).Render(text)
	} else {
		answer := theme.Reveal.Render(st.Question.CorrectAnswer)
		body = theme.Miss.Render(i18n.T(s.lang, i18n.TryAgain)) + " " + answer + "."
	}

	card := components.Card(body, cw, border)
	if st.Countdown <= 0 {
		return card
	}
	next := theme.Muted.Render(fmt.Sprintf("%s %d", i18n.T(s.lang, i18n.NextIn), st.Countdown))
	return card + "\n" + theme.Centered(cw).Render(next)
}

func (s *ChallengeScreen) renderError(width, height int) string {
	msg := theme.Miss.Render(i18n.T(s.lang, i18n.ChallengeError)) +
		"\n\n" +
		theme.Muted.Render(s.err.Error()) +
		"\n\n" +
		theme.Hint.Render("Esc: "+i18n.T(s.lang, i18n.ReturnMenu))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
