package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vexillo/internal/ui/theme"
)

// ChoiceMsg is sent when the player picks an option.
type ChoiceMsg struct {
	Index int
}

// MultiChoice is a multiple-choice selector component. It only tracks the
// cursor and the pick; judging the answer is left to the caller, which
// calls Reveal once it knows the correct option.
type MultiChoice struct {
	Options      []string
	Selected     int
	Locked       bool
	ChosenIndex  int
	CorrectIndex int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Number keys pick an
// option directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m.choose(m.Selected)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			return m.choose(n - 1)
		}
	}

	return m, nil
}

func (m MultiChoice) choose(i int) (MultiChoice, tea.Cmd) {
	m.Selected = i
	m.ChosenIndex = i
	m.Locked = true
	return m, func() tea.Msg { return ChoiceMsg{Index: i} }
}

// Reveal locks the component and marks the chosen and correct options.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.Locked = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correct
	if chosen >= 0 {
		m.Selected = chosen
	}
}

// Revealed reports whether the correct option is being shown.
func (m MultiChoice) Revealed() bool {
	return m.CorrectIndex >= 0
}

// View renders the options, one per line.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed() {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case m.Revealed() && i == m.CorrectIndex:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case m.Revealed() && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		case m.Revealed():
			s += theme.Muted.Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
