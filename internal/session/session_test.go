package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/quiz"
)

// stubGenerator returns name questions over the first four countries of the
// default table, cycling the target.
type stubGenerator struct {
	countries []country.Country
	calls     int
	err       error
}

func newStub(t *testing.T) *stubGenerator {
	t.Helper()
	tbl, err := country.Default()
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	return &stubGenerator{countries: tbl.All()[:4]}
}

func (g *stubGenerator) Generate(level int, lang country.Lang) (*quiz.Question, error) {
	if g.err != nil {
		return nil, g.err
	}
	target := g.countries[g.calls%len(g.countries)]
	g.calls++
	return quiz.NewQuestion(target, quiz.TierName, lang, g.countries), nil
}

func wrongAnswer(q *quiz.Question) string {
	for _, o := range q.Options {
		if o != q.CorrectAnswer {
			return o
		}
	}
	return ""
}

func begin(t *testing.T, c *Controller, level int) {
	t.Helper()
	if _, err := c.Begin(level, country.LangEnglish); err != nil {
		t.Fatalf("Begin: %v", err)
	}
}

func findAdvance(t *testing.T, effects []Effect) ScheduleAdvance {
	t.Helper()
	for _, e := range effects {
		if a, ok := e.(ScheduleAdvance); ok {
			return a
		}
	}
	t.Fatalf("no ScheduleAdvance in %v", effects)
	return ScheduleAdvance{}
}

func TestBegin_AwaitsAnswer(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 3)

	st := c.State()
	if st.Phase != PhaseAwaitingAnswer {
		t.Fatalf("Phase = %s", st.Phase)
	}
	if st.Question == nil || st.Level != 3 || st.Answered {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.ID == "" || c.Token().Session != st.ID {
		t.Fatalf("token not bound to session: %+v", c.Token())
	}
}

func TestSubmit_CorrectScoresByLevel(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 3)

	q := c.State().Question
	tok := c.Token()
	effects := c.Submit(q.CorrectAnswer)

	st := c.State()
	if !st.Correct || st.Score != 30 || st.CorrectInLevel != 1 {
		t.Fatalf("after correct answer: score=%d correctInLevel=%d correct=%v", st.Score, st.CorrectInLevel, st.Correct)
	}
	if !st.FactLoading || st.Fact != "" {
		t.Fatalf("fact should be loading")
	}
	if st.Countdown != 4 {
		t.Fatalf("Countdown = %d, want 4", st.Countdown)
	}

	if len(effects) != 3 {
		t.Fatalf("got %d effects, want 3: %v", len(effects), effects)
	}
	ff, ok := effects[0].(FetchFact)
	if !ok || ff.Token != tok || ff.Country.Code != q.Country.Code {
		t.Fatalf("effects[0] = %#v", effects[0])
	}
	if a := findAdvance(t, effects); a.Delay != 4*time.Second || a.Token != tok {
		t.Fatalf("advance = %+v", a)
	}
}

func TestSubmit_WrongRevealsWithoutFact(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 2)

	effects := c.Submit(wrongAnswer(c.State().Question))
	st := c.State()
	if st.Correct || st.Score != 0 || st.CorrectInLevel != 0 || st.FactLoading {
		t.Fatalf("unexpected state after wrong answer: %+v", st)
	}
	if st.Countdown != 2 {
		t.Fatalf("Countdown = %d, want 2", st.Countdown)
	}
	for _, e := range effects {
		if _, ok := e.(FetchFact); ok {
			t.Fatal("wrong answer must not fetch a fact")
		}
	}
	if a := findAdvance(t, effects); a.Delay != 2500*time.Millisecond {
		t.Fatalf("Delay = %v", a.Delay)
	}
}

func TestSubmit_SecondSubmissionIgnored(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 1)

	q := c.State().Question
	c.Submit(q.CorrectAnswer)
	before := c.State()

	if effects := c.Submit(wrongAnswer(q)); effects != nil {
		t.Fatalf("second submit produced effects: %v", effects)
	}
	if after := c.State(); after.Score != before.Score || after.Selected != before.Selected || after.Correct != before.Correct {
		t.Fatalf("second submit changed state: %+v", after)
	}
}

func TestSubmit_BeforeBeginIgnored(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	if effects := c.Submit("Cambodia"); effects != nil {
		t.Fatalf("effects = %v", effects)
	}
	if c.State().Answered {
		t.Fatal("idle controller accepted an answer")
	}
}

func TestTick_CountsDownWithoutAdvancing(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 1)
	tok := c.Token()
	c.Submit(c.State().Question.CorrectAnswer)

	for want := 3; want >= 0; want-- {
		effects := c.Tick(tok)
		if got := c.State().Countdown; got != want {
			t.Fatalf("Countdown = %d, want %d", got, want)
		}
		if want > 0 && len(effects) != 1 {
			t.Fatalf("expected reschedule at %d, got %v", want, effects)
		}
		if want == 0 && effects != nil {
			t.Fatalf("expected no reschedule at zero, got %v", effects)
		}
	}
	if c.State().Phase != PhaseEvaluated {
		t.Fatalf("tick must not advance, phase = %s", c.State().Phase)
	}
}

func TestAdvance_NextQuestion(t *testing.T) {
	gen := newStub(t)
	c := New(gen, DefaultConfig())
	begin(t, c, 1)
	tok := c.Token()
	c.Submit(wrongAnswer(c.State().Question))

	effects, err := c.Advance(tok)
	if err != nil {
		t.Fatal(err)
	}
	if len(effects) != 1 {
		t.Fatalf("effects = %v", effects)
	}
	if cp, ok := effects[0].(CancelPending); !ok || cp.Token != tok {
		t.Fatalf("effects[0] = %#v", effects[0])
	}

	st := c.State()
	if st.Phase != PhaseAwaitingAnswer || st.Answered || st.Selected != "" {
		t.Fatalf("unexpected state: %+v", st)
	}
	if c.Token() == tok {
		t.Fatal("token did not change")
	}
	if gen.calls != 2 {
		t.Fatalf("generator calls = %d", gen.calls)
	}
}

func TestLevelComplete_AfterQuota(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 2)

	completions := 0
	for i := 0; i < 5; i++ {
		// A wrong answer in between never counts toward the quota.
		tok := c.Token()
		c.Submit(wrongAnswer(c.State().Question))
		if _, err := c.Advance(tok); err != nil {
			t.Fatal(err)
		}

		tok = c.Token()
		c.Submit(c.State().Question.CorrectAnswer)
		effects, err := c.Advance(tok)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range effects {
			if lc, ok := e.(LevelComplete); ok {
				completions++
				if lc.Score != 100 || lc.Level != 2 {
					t.Fatalf("LevelComplete = %+v", lc)
				}
			}
		}
		if i < 4 && completions != 0 {
			t.Fatalf("level completed after %d correct answers", i+1)
		}
	}

	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	st := c.State()
	if st.Phase != PhaseLevelComplete || st.CorrectInLevel != 0 {
		t.Fatalf("unexpected state: phase=%s correctInLevel=%d", st.Phase, st.CorrectInLevel)
	}

	// The next level keeps the score.
	begin(t, c, 3)
	c.Submit(c.State().Question.CorrectAnswer)
	if got := c.State().Score; got != 130 {
		t.Fatalf("Score = %d, want 130", got)
	}
}

func TestResolveFact_CurrentOnly(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 1)
	tok := c.Token()
	c.Submit(c.State().Question.CorrectAnswer)

	if !c.ResolveFact(tok, "Angkor Wat is on the flag.") {
		t.Fatal("current fact was discarded")
	}
	if st := c.State(); st.Fact != "Angkor Wat is on the flag." || st.FactLoading {
		t.Fatalf("unexpected fact state: %+v", st)
	}
	if c.ResolveFact(tok, "again") {
		t.Fatal("fact applied twice")
	}
}

func TestResolveFact_LateFactDiscarded(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 1)
	tok := c.Token()
	c.Submit(c.State().Question.CorrectAnswer)
	if _, err := c.Advance(tok); err != nil {
		t.Fatal(err)
	}

	if c.ResolveFact(tok, "too late") {
		t.Fatal("late fact was applied")
	}
	if st := c.State(); st.Fact != "" {
		t.Fatalf("Fact = %q", st.Fact)
	}
}

func TestStaleTokensIgnored(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 1)
	tok := c.Token()
	c.Submit(c.State().Question.CorrectAnswer)

	stale := tok
	stale.Seq--
	if effects := c.Tick(stale); effects != nil {
		t.Fatalf("stale tick: %v", effects)
	}
	if effects, err := c.Advance(stale); effects != nil || err != nil {
		t.Fatalf("stale advance: %v, %v", effects, err)
	}
	other := tok
	other.Session = "other"
	if effects, _ := c.Advance(other); effects != nil {
		t.Fatalf("foreign advance: %v", effects)
	}
	if c.State().Phase != PhaseEvaluated {
		t.Fatalf("Phase = %s", c.State().Phase)
	}
}

func TestClose(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 1)
	tok := c.Token()
	c.Submit(c.State().Question.CorrectAnswer)

	effects := c.Close()
	if len(effects) != 1 {
		t.Fatalf("Close effects = %v", effects)
	}
	if cp, ok := effects[0].(CancelPending); !ok || cp.Token != tok {
		t.Fatalf("effects[0] = %#v", effects[0])
	}
	if c.Close() != nil {
		t.Fatal("second Close produced effects")
	}

	if effects, _ := c.Advance(tok); effects != nil {
		t.Fatal("advance after close")
	}
	if c.Tick(tok) != nil {
		t.Fatal("tick after close")
	}
	if c.ResolveFact(tok, "x") {
		t.Fatal("fact after close")
	}
	if _, err := c.Begin(2, country.LangEnglish); !errors.Is(err, ErrClosed) {
		t.Fatalf("Begin after close: %v", err)
	}
}

func TestBegin_CancelsPending(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 1)
	tok := c.Token()
	c.Submit(c.State().Question.CorrectAnswer)

	effects, err := c.Begin(2, country.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if len(effects) != 1 {
		t.Fatalf("effects = %v", effects)
	}
	if cp, ok := effects[0].(CancelPending); !ok || cp.Token != tok {
		t.Fatalf("effects[0] = %#v", effects[0])
	}
	if c.State().CorrectInLevel != 0 {
		t.Fatal("counter not reset")
	}
}

func TestSetLanguage_RelocalizesSelection(t *testing.T) {
	c := New(newStub(t), DefaultConfig())
	begin(t, c, 1)

	q := c.State().Question
	wrong := wrongAnswer(q)
	idx := q.OptionIndex(wrong)
	c.Submit(wrong)

	c.SetLanguage(country.LangKhmer)
	st := c.State()
	if st.Lang != country.LangKhmer || st.Question.Lang != country.LangKhmer {
		t.Fatalf("language not applied: %s / %s", st.Lang, st.Question.Lang)
	}
	if st.Question.OptionIndex(st.Selected) != idx {
		t.Fatalf("selection moved from %d to %d", idx, st.Question.OptionIndex(st.Selected))
	}
	if st.Selected == wrong {
		t.Fatalf("selection not re-localized: %q", st.Selected)
	}
	if st.Question.IsCorrect(st.Selected) {
		t.Fatal("wrong answer became correct")
	}
}

func TestGeneratorErrorSurfaces(t *testing.T) {
	gen := newStub(t)
	gen.err = country.ErrEmptyTable
	c := New(gen, DefaultConfig())

	_, err := c.Begin(1, country.LangEnglish)
	if !errors.Is(err, country.ErrEmptyTable) {
		t.Fatalf("err = %v", err)
	}
	if st := c.State(); st.Question != nil || st.Phase != PhaseIdle {
		t.Fatalf("unexpected state: %+v", st)
	}
}
