// Package theme holds the palette and the styles shared across screens.
// The palette follows maritime signal flags: a navy ground, gold and cyan
// for highlights, green and red for right and wrong answers.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#3B82F6") // ensign blue
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F97316")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	Night     = lipgloss.Color("#0F172A")
	Panel     = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
	Gold      = lipgloss.Color("#FACC15")
	Signal    = lipgloss.Color("#22D3EE")
)

// Text styles.
var (
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Muted    = lipgloss.NewStyle().Foreground(TextDim)
)

// Answer options.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Challenge status and feedback.
var (
	LevelBadge = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	ScoreBadge = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	FactTitle  = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Miss       = lipgloss.NewStyle().Foreground(Error).Bold(true)
	// Reveal shows the right answer after a miss.
	Reveal = lipgloss.NewStyle().Foreground(Success).Bold(true).Underline(true)
)

// Quota bar cells.
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)

// Chip styles a continent filter. The active one is inverted.
func Chip(active bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return s.Foreground(Night).Background(Signal).Bold(true)
	}
	return s.Foreground(TextDim)
}

// Centered returns a style that centres text in width cells.
func Centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}
