package finished

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/game"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestFinished_View(t *testing.T) {
	s := New(10, 550, country.LangEnglish)
	view := s.View(100, 30)
	for _, want := range []string{"Expedition Complete!", "You conquered all 10 levels.", "550", "New Expedition"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFinished_Choices(t *testing.T) {
	s := New(10, 550, country.LangEnglish)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if got := cmd(); got != (game.PlayAgain{}) {
		t.Errorf("enter on first button = %#v, want PlayAgain", got)
	}

	s.Update(specialKey(tea.KeyDown))
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if got := cmd(); got != (game.Navigate{To: game.ModeMenu}) {
		t.Errorf("enter on second button = %#v, want Navigate{Menu}", got)
	}
}
