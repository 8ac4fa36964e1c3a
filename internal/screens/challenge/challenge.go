// Package challenge is the quiz screen: one flag question at a time, with
// timed feedback and a fun fact after each correct answer.
package challenge

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/facts"
	"github.com/abhisek/vexillo/internal/i18n"
	"github.com/abhisek/vexillo/internal/quiz"
	"github.com/abhisek/vexillo/internal/screen"
	"github.com/abhisek/vexillo/internal/session"
	"github.com/abhisek/vexillo/internal/ui/components"
	"github.com/abhisek/vexillo/internal/ui/layout"
)

// ChallengeScreen drives a session.Controller from keyboard input and
// timer messages.
type ChallengeScreen struct {
	ctrl   *session.Controller
	runner *runner
	log    *zap.Logger

	level int
	lang  country.Lang

	choice   components.MultiChoice
	shown    *quiz.Question
	shownSeq int
	spinner  int
	err      error
}

var (
	_ screen.Screen          = (*ChallengeScreen)(nil)
	_ screen.KeyHintProvider = (*ChallengeScreen)(nil)
)

// New creates a challenge screen for a fresh expedition. The first level
// begins on Init.
func New(ctrl *session.Controller, client facts.Client, level int, lang country.Lang, log *zap.Logger) *ChallengeScreen {
	if client == nil {
		client = facts.Offline{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("challenge").With(zap.String("session_id", ctrl.State().ID))
	return &ChallengeScreen{
		ctrl:   ctrl,
		runner: newRunner(client, log),
		log:    log,
		level:  level,
		lang:   lang,
	}
}

func (s *ChallengeScreen) Init() tea.Cmd {
	return s.Begin(s.level)
}

// Begin starts level on the live session. The score carries over.
func (s *ChallengeScreen) Begin(level int) tea.Cmd {
	s.level = level
	effects, err := s.ctrl.Begin(level, s.lang)
	cmd := s.runner.run(effects)
	if err != nil {
		s.err = err
		s.log.Error("cannot start level", zap.Int("level", level), zap.Error(err))
	} else {
		s.log.Info("level started", zap.Int("level", level))
	}
	s.sync()
	return cmd
}

// Close tears the session down and cancels pending work. Safe to call
// more than once.
func (s *ChallengeScreen) Close() {
	s.runner.run(s.ctrl.Close())
	s.runner.shutdown()
}

// Err returns the error that stopped the challenge, if any.
func (s *ChallengeScreen) Err() error {
	return s.err
}

// Session exposes the controller state for rendering and tests.
func (s *ChallengeScreen) Session() session.State {
	return s.ctrl.State()
}

func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case components.ChoiceMsg:
		q := s.ctrl.State().Question
		if q == nil || msg.Index < 0 || msg.Index >= len(q.Options) {
			return s, nil
		}
		cmd = s.runner.run(s.ctrl.Submit(q.Options[msg.Index]))
		st := s.ctrl.State()
		s.log.Debug("answer submitted",
			zap.String("country", q.Country.Code),
			zap.String("tier", string(q.Tier)),
			zap.Bool("correct", st.Correct),
			zap.Int("score", st.Score))

	case countdownMsg:
		cmd = s.runner.run(s.ctrl.Tick(msg.Token))

	case advanceMsg:
		effects, err := s.ctrl.Advance(msg.Token)
		cmd = s.runner.run(effects)
		if err != nil {
			s.err = err
			s.log.Error("cannot generate next question", zap.Error(err))
		}

	case factMsg:
		if !s.ctrl.ResolveFact(msg.Token, msg.Text) {
			s.log.Debug("late fun fact discarded", zap.Int("seq", msg.Token.Seq))
		}

	case spinnerTickMsg:
		if msg.Token == s.ctrl.Token() && s.ctrl.State().FactLoading {
			s.spinner++
			cmd = s.runner.after(msg.Token, spinnerInterval, spinnerTickMsg{Token: msg.Token})
		}

	case screen.LanguageMsg:
		s.lang = msg.Lang
		s.ctrl.SetLanguage(msg.Lang)

	case tea.KeyMsg:
		if s.err != nil {
			return s, nil
		}
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}

	s.sync()
	return s, cmd
}

// sync rebuilds the option list when the question changed and mirrors the
// answer reveal from the controller.
func (s *ChallengeScreen) sync() {
	st := s.ctrl.State()
	q := st.Question
	if q == nil {
		s.shown = nil
		s.choice = components.NewMultiChoice(nil)
		return
	}
	if q != s.shown {
		cursor := s.choice.Selected
		s.choice = components.NewMultiChoice(q.Options)
		if s.shown != nil && s.shownSeq == s.ctrl.Token().Seq {
			// Same question re-rendered in another language.
			s.choice.Selected = cursor
		}
		s.shown = q
		s.shownSeq = s.ctrl.Token().Seq
	}
	if st.Answered {
		s.choice.Reveal(q.OptionIndex(st.Selected), q.OptionIndex(q.CorrectAnswer))
	}
}

func (s *ChallengeScreen) Title() string {
	return i18n.T(s.lang, i18n.Challenge)
}

func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-4", Description: i18n.T(s.lang, i18n.Answer)},
		{Key: "↑↓", Description: i18n.T(s.lang, i18n.Navigate)},
		{Key: "Enter", Description: i18n.T(s.lang, i18n.Select)},
		{Key: "Ctrl+L", Description: i18n.T(s.lang, i18n.Language)},
		{Key: "Esc", Description: i18n.T(s.lang, i18n.Menu)},
	}
}
