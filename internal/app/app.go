package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/facts"
	"github.com/abhisek/vexillo/internal/game"
	"github.com/abhisek/vexillo/internal/i18n"
	"github.com/abhisek/vexillo/internal/quiz"
	"github.com/abhisek/vexillo/internal/router"
	"github.com/abhisek/vexillo/internal/screen"
	"github.com/abhisek/vexillo/internal/screens/challenge"
	"github.com/abhisek/vexillo/internal/screens/finished"
	"github.com/abhisek/vexillo/internal/screens/library"
	"github.com/abhisek/vexillo/internal/screens/menu"
	"github.com/abhisek/vexillo/internal/session"
	"github.com/abhisek/vexillo/internal/ui/layout"
)

// Options holds the dependencies the TUI needs.
type Options struct {
	Table     *country.Table
	Generator quiz.Generator
	Facts     facts.Client
	Session   session.Config
	MaxLevel  int
	Lang      country.Lang
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model. It owns the game flow state and
// maps every mode change onto the screen stack.
type AppModel struct {
	opts      Options
	game      game.State
	router    *router.Router
	challenge *challenge.ChallengeScreen
	log       *zap.Logger
	err       error
	width     int
	height    int
}

// newAppModel creates a new AppModel on the menu screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Facts == nil {
		opts.Facts = facts.Offline{}
	}
	if opts.Lang == "" {
		opts.Lang = country.LangEnglish
	}
	st := game.NewState(opts.Lang)
	if opts.MaxLevel > 0 {
		st.MaxLevel = opts.MaxLevel
	}
	return AppModel{
		opts:   opts,
		game:   st,
		router: router.New(menu.New(st.Lang, st.LastScore)),
		log:    opts.Logger.Named("app"),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.teardown()
			return m, tea.Quit
		case "ctrl+l":
			return m.dispatch(game.ToggleLanguage{})
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			if m.game.Mode != game.ModeMenu {
				return m.dispatch(game.Navigate{To: game.ModeMenu})
			}
			return m, nil
		}

	case game.Event:
		return m.dispatch(msg)
	}

	cmd := m.router.Update(msg)
	if m.challenge != nil && m.err == nil {
		if err := m.challenge.Err(); err != nil {
			m.err = err
		}
	}
	return m, cmd
}

// dispatch reduces ev and runs the resulting effects.
func (m AppModel) dispatch(ev game.Event) (tea.Model, tea.Cmd) {
	prev := m.game
	next, effects := game.Reduce(prev, ev)
	m.game = next

	if next.Mode != prev.Mode {
		m.log.Debug("mode changed",
			zap.Stringer("from", prev.Mode),
			zap.Stringer("to", next.Mode),
			zap.Int("level", next.Level))
	}

	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case game.StartSession:
			m.teardown()
			ctrl := session.New(m.opts.Generator, m.opts.Session)
			m.challenge = challenge.New(ctrl, m.opts.Facts, e.Level, e.Lang, m.opts.Logger)
			m.log.Info("expedition started", zap.String("session_id", ctrl.State().ID))
			cmds = append(cmds, m.router.Reset(m.challenge))
		case game.AdvanceLevel:
			if m.challenge != nil {
				cmds = append(cmds, m.challenge.Begin(e.Level))
			}
		case game.EndSession:
			m.teardown()
		case game.LanguageChanged:
			cmds = append(cmds, m.router.Broadcast(screen.LanguageMsg{Lang: e.Lang}))
		}
	}

	if next.Mode != prev.Mode && next.Mode != game.ModeChallenge {
		cmds = append(cmds, m.router.Reset(m.screenFor(next)))
	}
	return m, tea.Batch(cmds...)
}

func (m *AppModel) screenFor(st game.State) screen.Screen {
	switch st.Mode {
	case game.ModeLibrary:
		return library.New(m.opts.Table, st.Lang)
	case game.ModeFinished:
		return finished.New(st.Level, st.LastScore, st.Lang)
	default:
		return menu.New(st.Lang, st.LastScore)
	}
}

// teardown closes the live session, if any.
func (m *AppModel) teardown() {
	if m.challenge == nil {
		return
	}
	m.challenge.Close()
	m.challenge = nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame: header, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lang := m.game.Lang
	if layout.TooSmall(m.width, m.height) {
		return layout.TooSmallView(lang, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := layout.Status{Lang: lang, LevelLabel: i18n.T(lang, i18n.Level)}
	if m.game.Mode == game.ModeChallenge {
		status.Level = m.game.Level
		status.MaxLevel = m.game.MaxLevel
	}
	header := layout.Header(i18n.T(lang, i18n.AppName), title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: i18n.T(lang, i18n.Back)},
			{Key: "Ctrl+L", Description: i18n.T(lang, i18n.Language)},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: i18n.T(lang, i18n.Navigate)},
			{Key: "Enter", Description: i18n.T(lang, i18n.Select)},
			{Key: "Ctrl+L", Description: i18n.T(lang, i18n.Language)},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: i18n.T(lang, i18n.Quit)})

	footer := layout.Footer(footerHints, m.width)

	content := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.Frame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program. It returns the error that stopped a
// challenge, if one did, so the process can exit non-zero.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if am, ok := final.(AppModel); ok {
		am.teardown()
		if err == nil && am.err != nil {
			return fmt.Errorf("challenge stopped: %w", am.err)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
