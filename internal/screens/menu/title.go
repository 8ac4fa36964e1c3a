package menu

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vexillo/internal/ui/theme"
)

// Block-letter title.
const titleFull = ` ██╗   ██╗███████╗██╗  ██╗██╗██╗     ██╗      ██████╗
 ██║   ██║██╔════╝╚██╗██╔╝██║██║     ██║     ██╔═══██╗
 ██║   ██║█████╗   ╚███╔╝ ██║██║     ██║     ██║   ██║
 ╚██╗ ██╔╝██╔══╝   ██╔██╗ ██║██║     ██║     ██║   ██║
  ╚████╔╝ ███████╗██╔╝ ██╗██║███████╗███████╗╚██████╔╝
   ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝ ╚═════╝`

const titleCompact = "⚑  V · E · X · I · L · L · O  ⚑"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderLastScore renders the score badge of the previous expedition.
func renderLastScore(label string, score, cw int) string {
	text := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+"  ") +
		lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(fmt.Sprintf("★ %d", score))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Signal).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(text)
}
