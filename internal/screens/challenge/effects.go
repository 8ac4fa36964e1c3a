package challenge

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vexillo/internal/facts"
	"github.com/abhisek/vexillo/internal/game"
	"github.com/abhisek/vexillo/internal/session"
)

const spinnerInterval = 120 * time.Millisecond

// scope bounds the background work of one evaluated question. Cancelling
// it stops pending timers and the in-flight fact lookup.
type scope struct {
	token  session.Token
	ctx    context.Context
	cancel context.CancelFunc
}

// runner turns controller effects into commands. All of them derive from
// one root context, so shutdown releases everything still pending.
type runner struct {
	root   context.Context
	stop   context.CancelFunc
	facts  facts.Client
	log    *zap.Logger
	scopes map[session.Token]*scope
}

func newRunner(client facts.Client, log *zap.Logger) *runner {
	root, stop := context.WithCancel(context.Background())
	return &runner{
		root:   root,
		stop:   stop,
		facts:  client,
		log:    log,
		scopes: make(map[session.Token]*scope),
	}
}

// run executes effects in order and batches the commands they need.
func (r *runner) run(effects []session.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case session.CancelPending:
			r.cancel(e.Token)
		case session.ScheduleAdvance:
			cmds = append(cmds, r.after(e.Token, e.Delay, advanceMsg{Token: e.Token}))
		case session.ScheduleTick:
			cmds = append(cmds, r.after(e.Token, e.After, countdownMsg{Token: e.Token}))
		case session.FetchFact:
			cmds = append(cmds, r.fetch(e), r.after(e.Token, spinnerInterval, spinnerTickMsg{Token: e.Token}))
		case session.LevelComplete:
			score := e.Score
			cmds = append(cmds, func() tea.Msg { return game.LevelComplete{Score: score} })
		}
	}
	return tea.Batch(cmds...)
}

func (r *runner) scopeFor(tok session.Token) *scope {
	if sc, ok := r.scopes[tok]; ok {
		return sc
	}
	ctx, cancel := context.WithCancel(r.root)
	sc := &scope{token: tok, ctx: ctx, cancel: cancel}
	r.scopes[tok] = sc
	return sc
}

func (r *runner) cancel(tok session.Token) {
	if sc, ok := r.scopes[tok]; ok {
		sc.cancel()
		delete(r.scopes, tok)
	}
}

// after delivers msg once d has elapsed, or nothing if the scope is
// cancelled first.
func (r *runner) after(tok session.Token, d time.Duration, msg tea.Msg) tea.Cmd {
	ctx := r.scopeFor(tok).ctx
	return func() tea.Msg {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			return msg
		}
	}
}

func (r *runner) fetch(e session.FetchFact) tea.Cmd {
	ctx := r.scopeFor(e.Token).ctx
	client, log := r.facts, r.log
	return func() tea.Msg {
		text := facts.Lookup(ctx, client, e.Country.Name, e.Lang, log)
		if ctx.Err() != nil {
			return nil
		}
		return factMsg{Token: e.Token, Text: text}
	}
}

// shutdown cancels every scope, including ones created later.
func (r *runner) shutdown() {
	r.stop()
	for tok, sc := range r.scopes {
		sc.cancel()
		delete(r.scopes, tok)
	}
}

// pending returns the number of live scopes.
func (r *runner) pending() int {
	return len(r.scopes)
}
