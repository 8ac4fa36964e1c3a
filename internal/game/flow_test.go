package game_test

import (
	"testing"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/game"
	"github.com/abhisek/vexillo/internal/quiz"
	"github.com/abhisek/vexillo/internal/session"
)

// fixedGenerator serves name questions over the first four countries of
// the table, rotating the target so every question is distinct.
type fixedGenerator struct {
	table *country.Table
	calls int
}

func (g *fixedGenerator) Generate(level int, lang country.Lang) (*quiz.Question, error) {
	opts := g.table.All()[:quiz.OptionCount]
	target := opts[g.calls%len(opts)]
	g.calls++
	return quiz.NewQuestion(target, quiz.TierName, lang, opts), nil
}

// Drives the reducer and a session the way the TUI does, starting at the
// final level.
func TestLastLevelFinishesWithScore(t *testing.T) {
	tbl, err := country.Default()
	if err != nil {
		t.Fatal(err)
	}
	gen := &fixedGenerator{table: tbl}
	ctrl := session.New(gen, session.DefaultConfig())

	st := game.State{Mode: game.ModeChallenge, Level: 10, Lang: country.LangEnglish, MaxLevel: 10}
	if _, err := ctrl.Begin(st.Level, st.Lang); err != nil {
		t.Fatal(err)
	}

	var (
		completions int
		ended       bool
	)
	for i := 0; i < 5; i++ {
		tok := ctrl.Token()
		ctrl.Submit(ctrl.State().Question.CorrectAnswer)
		effects, err := ctrl.Advance(tok)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range effects {
			lc, ok := e.(session.LevelComplete)
			if !ok {
				continue
			}
			completions++
			var gameEffects []game.Effect
			st, gameEffects = game.Reduce(st, game.LevelComplete{Score: lc.Score})
			for _, ge := range gameEffects {
				if _, ok := ge.(game.EndSession); ok {
					ended = true
				}
			}
		}
	}

	if completions != 1 {
		t.Fatalf("LevelComplete emitted %d times, want exactly 1", completions)
	}
	if got := ctrl.State().CorrectInLevel; got != 0 {
		t.Errorf("CorrectInLevel = %d after completion, want 0", got)
	}
	if gen.calls != 5 {
		t.Errorf("generator called %d times, want 5 (no question after the quota)", gen.calls)
	}
	if st.Mode != game.ModeFinished || !ended {
		t.Fatalf("Mode = %s ended=%v, want finished with EndSession", st.Mode, ended)
	}
	if st.LastScore != 500 {
		t.Fatalf("LastScore = %d, want 500", st.LastScore)
	}
}
