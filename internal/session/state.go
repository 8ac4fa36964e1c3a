package session

import (
	"time"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/quiz"
)

// Phase represents where the current question is in its lifecycle.
type Phase int

const (
	PhaseIdle           Phase = iota // No question yet
	PhaseAwaitingAnswer              // Question shown, waiting for the player
	PhaseEvaluated                   // Answer judged, auto-advance pending
	PhaseLevelComplete               // Level quota reached, waiting for the next Begin
	PhaseClosed                      // Torn down; every token is stale
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseEvaluated:
		return "evaluated"
	case PhaseLevelComplete:
		return "level-complete"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Token identifies one question of one session. Every scheduled timer and
// every fact lookup carries the token that was current when it was issued;
// completions with any other token are dropped.
type Token struct {
	Session string
	Seq     int
}

// Config holds the quiz pacing rules.
type Config struct {
	// QuestionsPerLevel is the number of correct answers that completes a level.
	QuestionsPerLevel int

	// PointsPerLevel is multiplied by the level to score a correct answer.
	PointsPerLevel int

	// CorrectDelay is the pause after a correct answer. Longer than
	// WrongDelay so the fun fact can be read.
	CorrectDelay time.Duration

	// WrongDelay is the pause after a wrong answer.
	WrongDelay time.Duration

	// TickInterval drives the countdown display.
	TickInterval time.Duration
}

// DefaultConfig returns the standard pacing.
func DefaultConfig() Config {
	return Config{
		QuestionsPerLevel: 5,
		PointsPerLevel:    10,
		CorrectDelay:      4000 * time.Millisecond,
		WrongDelay:        2500 * time.Millisecond,
		TickInterval:      time.Second,
	}
}

// State is a snapshot of the session. Question is shared, never mutated.
type State struct {
	ID    string
	Level int
	Lang  country.Lang

	// Score is cumulative across the levels of one expedition.
	Score int

	// CorrectInLevel counts correct answers in the current level (0..quota).
	CorrectInLevel int

	Question *quiz.Question

	// Selected is the submitted answer; meaningful only when Answered.
	Selected string
	Answered bool
	Correct  bool

	// Fact is empty until the lookup resolves.
	Fact        string
	FactLoading bool

	// Countdown is the whole seconds left before auto-advance, display only.
	Countdown int

	Phase Phase
}
