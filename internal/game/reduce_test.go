package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/vexillo/internal/country"
)

func TestReduce(t *testing.T) {
	en := country.LangEnglish
	km := country.LangKhmer

	tests := []struct {
		name        string
		state       State
		event       Event
		wantState   State
		wantEffects []Effect
	}{
		{
			name:        "start from menu",
			state:       NewState(en),
			event:       StartChallenge{},
			wantState:   State{Mode: ModeChallenge, Level: 1, Lang: en, MaxLevel: 10},
			wantEffects: []Effect{StartSession{Level: 1, Lang: en}},
		},
		{
			name:      "start while in challenge is ignored",
			state:     State{Mode: ModeChallenge, Level: 4, Lang: en, MaxLevel: 10},
			event:     StartChallenge{},
			wantState: State{Mode: ModeChallenge, Level: 4, Lang: en, MaxLevel: 10},
		},
		{
			name:        "start from library resets level",
			state:       State{Mode: ModeLibrary, Level: 6, LastScore: 90, Lang: km, MaxLevel: 10},
			event:       StartChallenge{},
			wantState:   State{Mode: ModeChallenge, Level: 1, LastScore: 90, Lang: km, MaxLevel: 10},
			wantEffects: []Effect{StartSession{Level: 1, Lang: km}},
		},
		{
			name:        "level complete advances",
			state:       State{Mode: ModeChallenge, Level: 3, Lang: en, MaxLevel: 10},
			event:       LevelComplete{Score: 150},
			wantState:   State{Mode: ModeChallenge, Level: 4, Lang: en, MaxLevel: 10},
			wantEffects: []Effect{AdvanceLevel{Level: 4}},
		},
		{
			name:        "level complete at max finishes",
			state:       State{Mode: ModeChallenge, Level: 10, Lang: en, MaxLevel: 10},
			event:       LevelComplete{Score: 2750},
			wantState:   State{Mode: ModeFinished, Level: 10, LastScore: 2750, Lang: en, MaxLevel: 10},
			wantEffects: []Effect{EndSession{}},
		},
		{
			name:      "level complete outside challenge is ignored",
			state:     NewState(en),
			event:     LevelComplete{Score: 50},
			wantState: NewState(en),
		},
		{
			name:        "game over finishes",
			state:       State{Mode: ModeChallenge, Level: 5, Lang: en, MaxLevel: 10},
			event:       GameOver{Score: 120},
			wantState:   State{Mode: ModeFinished, Level: 5, LastScore: 120, Lang: en, MaxLevel: 10},
			wantEffects: []Effect{EndSession{}},
		},
		{
			name:        "navigate away from challenge ends session",
			state:       State{Mode: ModeChallenge, Level: 2, Lang: en, MaxLevel: 10},
			event:       Navigate{To: ModeLibrary},
			wantState:   State{Mode: ModeLibrary, Level: 2, Lang: en, MaxLevel: 10},
			wantEffects: []Effect{EndSession{}},
		},
		{
			name:      "navigate from library to menu",
			state:     State{Mode: ModeLibrary, Level: 1, Lang: en, MaxLevel: 10},
			event:     Navigate{To: ModeMenu},
			wantState: State{Mode: ModeMenu, Level: 1, Lang: en, MaxLevel: 10},
		},
		{
			name:      "navigate to finished is rejected",
			state:     NewState(en),
			event:     Navigate{To: ModeFinished},
			wantState: NewState(en),
		},
		{
			name:        "play again from finished",
			state:       State{Mode: ModeFinished, Level: 10, LastScore: 2750, Lang: en, MaxLevel: 10},
			event:       PlayAgain{},
			wantState:   State{Mode: ModeChallenge, Level: 1, LastScore: 2750, Lang: en, MaxLevel: 10},
			wantEffects: []Effect{StartSession{Level: 1, Lang: en}},
		},
		{
			name:      "play again elsewhere is ignored",
			state:     NewState(en),
			event:     PlayAgain{},
			wantState: NewState(en),
		},
		{
			name:        "toggle language",
			state:       NewState(en),
			event:       ToggleLanguage{},
			wantState:   State{Mode: ModeMenu, Level: 1, Lang: km, MaxLevel: 10},
			wantEffects: []Effect{LanguageChanged{Lang: km}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effects := Reduce(tt.state, tt.event)
			if diff := cmp.Diff(tt.wantState, got); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantEffects, effects); diff != "" {
				t.Errorf("effects mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReduce_FullExpedition(t *testing.T) {
	s, _ := Reduce(NewState(country.LangEnglish), StartChallenge{})
	for level := 1; level < 10; level++ {
		var effects []Effect
		s, effects = Reduce(s, LevelComplete{Score: level * 50})
		if diff := cmp.Diff([]Effect{AdvanceLevel{Level: level + 1}}, effects); diff != "" {
			t.Fatalf("level %d (-want +got):\n%s", level, diff)
		}
	}
	s, _ = Reduce(s, LevelComplete{Score: 2750})
	if s.Mode != ModeFinished || s.LastScore != 2750 {
		t.Fatalf("got %+v", s)
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{
		ModeMenu:      "menu",
		ModeChallenge: "challenge",
		ModeLibrary:   "library",
		ModeFinished:  "finished",
		Mode(42):      "unknown",
	} {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", m, got, want)
		}
	}
}
