package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/quiz"
)

// ErrClosed is returned by Begin after Close.
var ErrClosed = errors.New("session closed")

// Controller runs the question/answer/feedback cycle of one expedition.
// It is single-threaded: the caller serializes every call, which the Bubble
// Tea update loop does naturally.
type Controller struct {
	gen    quiz.Generator
	config Config
	state  State
	seq    int
}

// New creates an idle controller with a fresh session ID and zero score.
func New(gen quiz.Generator, cfg Config) *Controller {
	return &Controller{
		gen:    gen,
		config: cfg,
		state: State{
			ID:    uuid.New().String(),
			Lang:  country.LangEnglish,
			Phase: PhaseIdle,
		},
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Token returns the token that current completions must carry.
func (c *Controller) Token() Token {
	return Token{Session: c.state.ID, Seq: c.seq}
}

// Config returns the pacing rules in use.
func (c *Controller) Config() Config {
	return c.config
}

// Begin starts a level. The per-level counter resets; the score carries
// over. Any pending advance or lookup from the previous question is
// cancelled.
func (c *Controller) Begin(level int, lang country.Lang) ([]Effect, error) {
	if c.state.Phase == PhaseClosed {
		return nil, ErrClosed
	}

	effects := c.releasePending()

	c.state.Level = level
	c.state.Lang = lang
	c.state.CorrectInLevel = 0

	if err := c.nextQuestion(); err != nil {
		return effects, fmt.Errorf("begin level %d: %w", level, err)
	}
	return effects, nil
}

// Submit evaluates answer against the current question. It is a no-op
// unless a question is awaiting an answer, so a second submission of the
// same question is ignored.
func (c *Controller) Submit(answer string) []Effect {
	if c.state.Phase != PhaseAwaitingAnswer || c.state.Question == nil {
		return nil
	}

	q := c.state.Question
	c.state.Selected = answer
	c.state.Answered = true
	c.state.Correct = q.IsCorrect(answer)
	c.state.Phase = PhaseEvaluated

	tok := c.Token()
	var effects []Effect

	delay := c.config.WrongDelay
	if c.state.Correct {
		delay = c.config.CorrectDelay
		c.state.Score += c.config.PointsPerLevel * c.state.Level
		c.state.CorrectInLevel++
		c.state.FactLoading = true
		effects = append(effects, FetchFact{Token: tok, Country: q.Country, Lang: c.state.Lang})
	}

	c.state.Countdown = int(delay / time.Second)
	effects = append(effects, ScheduleAdvance{Token: tok, Delay: delay})
	if c.state.Countdown > 0 && c.config.TickInterval > 0 {
		effects = append(effects, ScheduleTick{Token: tok, After: c.config.TickInterval})
	}
	return effects
}

// Tick decrements the countdown. It never advances the question.
func (c *Controller) Tick(tok Token) []Effect {
	if !c.current(tok) || c.state.Phase != PhaseEvaluated {
		return nil
	}
	if c.state.Countdown > 0 {
		c.state.Countdown--
	}
	if c.state.Countdown > 0 {
		return []Effect{ScheduleTick{Token: tok, After: c.config.TickInterval}}
	}
	return nil
}

// Advance moves past an evaluated question: either to the next question or,
// when the level quota has been reached with a correct answer, to
// PhaseLevelComplete with a LevelComplete effect.
func (c *Controller) Advance(tok Token) ([]Effect, error) {
	if !c.current(tok) || c.state.Phase != PhaseEvaluated {
		return nil, nil
	}

	effects := []Effect{CancelPending{Token: tok}}

	if c.state.Correct && c.state.CorrectInLevel >= c.config.QuestionsPerLevel {
		c.seq++
		c.state.CorrectInLevel = 0
		c.state.FactLoading = false
		c.state.Countdown = 0
		c.state.Phase = PhaseLevelComplete
		return append(effects, LevelComplete{Level: c.state.Level, Score: c.state.Score}), nil
	}

	if err := c.nextQuestion(); err != nil {
		return effects, fmt.Errorf("advance level %d: %w", c.state.Level, err)
	}
	return effects, nil
}

// ResolveFact stores a looked-up fact. It reports false when the text was
// discarded because the question has moved on or no lookup was pending.
func (c *Controller) ResolveFact(tok Token, text string) bool {
	if !c.current(tok) || !c.state.FactLoading {
		return false
	}
	c.state.Fact = text
	c.state.FactLoading = false
	return true
}

// SetLanguage re-renders the current question in lang. A submitted answer
// follows its option so the highlighted choice stays put.
func (c *Controller) SetLanguage(lang country.Lang) {
	c.state.Lang = lang
	q := c.state.Question
	if q == nil || q.Lang == lang {
		return
	}
	idx := q.OptionIndex(c.state.Selected)
	c.state.Question = q.Localize(lang)
	if c.state.Answered && idx >= 0 {
		c.state.Selected = c.state.Question.Options[idx]
	}
}

// Close tears the session down. Every token issued so far becomes stale.
func (c *Controller) Close() []Effect {
	if c.state.Phase == PhaseClosed {
		return nil
	}
	effects := c.releasePending()
	c.seq++
	c.state.FactLoading = false
	c.state.Countdown = 0
	c.state.Phase = PhaseClosed
	return effects
}

func (c *Controller) current(tok Token) bool {
	return c.state.Phase != PhaseClosed && tok == c.Token()
}

func (c *Controller) releasePending() []Effect {
	if c.state.Phase == PhaseEvaluated {
		return []Effect{CancelPending{Token: c.Token()}}
	}
	return nil
}

func (c *Controller) nextQuestion() error {
	c.seq++
	c.state.Selected = ""
	c.state.Answered = false
	c.state.Correct = false
	c.state.Fact = ""
	c.state.FactLoading = false
	c.state.Countdown = 0

	q, err := c.gen.Generate(c.state.Level, c.state.Lang)
	if err != nil {
		c.state.Question = nil
		c.state.Phase = PhaseIdle
		return err
	}
	c.state.Question = q
	c.state.Phase = PhaseAwaitingAnswer
	return nil
}
