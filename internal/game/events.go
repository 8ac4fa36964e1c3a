package game

import "github.com/abhisek/vexillo/internal/country"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// StartChallenge begins a new expedition at level 1.
type StartChallenge struct{}

// LevelComplete reports that the live session met its level quota.
type LevelComplete struct {
	Score int
}

// GameOver ends the expedition early. No rule in the session raises it.
type GameOver struct {
	Score int
}

// Navigate switches to Menu or Library.
type Navigate struct {
	To Mode
}

// PlayAgain restarts from the finished screen.
type PlayAgain struct{}

// ToggleLanguage flips between the two display languages.
type ToggleLanguage struct{}

func (StartChallenge) isEvent() {}
func (LevelComplete) isEvent()  {}
func (GameOver) isEvent()       {}
func (Navigate) isEvent()       {}
func (PlayAgain) isEvent()      {}
func (ToggleLanguage) isEvent() {}

// Effect is an instruction produced by Reduce.
type Effect interface {
	isEffect()
}

// StartSession asks for a fresh session with zero score.
type StartSession struct {
	Level int
	Lang  country.Lang
}

// AdvanceLevel asks the live session to begin Level, keeping its score.
type AdvanceLevel struct {
	Level int
}

// EndSession tears down the live session.
type EndSession struct{}

// LanguageChanged announces the new display language.
type LanguageChanged struct {
	Lang country.Lang
}

func (StartSession) isEffect()    {}
func (AdvanceLevel) isEffect()    {}
func (EndSession) isEffect()      {}
func (LanguageChanged) isEffect() {}
