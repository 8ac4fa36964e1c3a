package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vexillo/internal/ui/theme"
)

// StepBar shows progress through a fixed number of steps, e.g. correct
// answers towards a level quota.
type StepBar struct {
	Label string
	Done  int
	Total int
	Width int
}

// View renders the bar followed by a "done / total" counter.
func (p StepBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Muted.Render(p.Label) + "  "
	}

	counter := fmt.Sprintf("  %d / %d", p.Done, p.Total)
	barWidth := p.Width - lipgloss.Width(result) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Done / p.Total
	}
	filled = max(0, min(filled, barWidth))

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += theme.Selected.Render(counter)
	return result
}
