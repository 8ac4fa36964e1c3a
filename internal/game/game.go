// Package game holds the top-level flow of the trivia game: which mode is
// active, which level the expedition is on and the last finished score.
// It is a pure reducer; the caller runs the returned effects.
package game

import "github.com/abhisek/vexillo/internal/country"

// DefaultMaxLevel is the last level of an expedition.
const DefaultMaxLevel = 10

// Mode is the active top-level view.
type Mode int

const (
	ModeMenu Mode = iota
	ModeChallenge
	ModeLibrary
	ModeFinished
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeChallenge:
		return "challenge"
	case ModeLibrary:
		return "library"
	case ModeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is the game flow state.
type State struct {
	Mode      Mode
	Level     int
	LastScore int
	Lang      country.Lang
	MaxLevel  int
}

// NewState returns the initial state: the menu, level 1, no score.
func NewState(lang country.Lang) State {
	return State{
		Mode:     ModeMenu,
		Level:    1,
		Lang:     lang,
		MaxLevel: DefaultMaxLevel,
	}
}
