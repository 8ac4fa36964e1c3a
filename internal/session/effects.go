package session

import (
	"time"

	"github.com/abhisek/vexillo/internal/country"
)

// Effect is a side effect requested by the controller. The controller never
// starts timers or goroutines itself; the caller executes effects and feeds
// completions back through Tick, Advance and ResolveFact.
type Effect interface {
	isEffect()
}

// ScheduleAdvance asks for Advance(Token) after Delay.
type ScheduleAdvance struct {
	Token Token
	Delay time.Duration
}

// ScheduleTick asks for Tick(Token) after After.
type ScheduleTick struct {
	Token Token
	After time.Duration
}

// FetchFact asks for a fun fact about Country; deliver it with ResolveFact.
type FetchFact struct {
	Token   Token
	Country country.Country
	Lang    country.Lang
}

// CancelPending releases every timer and lookup issued under Token.
type CancelPending struct {
	Token Token
}

// LevelComplete reports that the per-level quota was reached.
type LevelComplete struct {
	Level int
	Score int
}

func (ScheduleAdvance) isEffect() {}
func (ScheduleTick) isEffect()    {}
func (FetchFact) isEffect()       {}
func (CancelPending) isEffect()   {}
func (LevelComplete) isEffect()   {}
