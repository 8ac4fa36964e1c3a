package menu

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/game"
	"github.com/abhisek/vexillo/internal/screen"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func press(t *testing.T, m *MenuScreen, keys ...rune) tea.Msg {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(specialKey(k))
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestMenu_Actions(t *testing.T) {
	tests := []struct {
		name string
		keys []rune
		want tea.Msg
	}{
		{"start", []rune{tea.KeyEnter}, game.StartChallenge{}},
		{"library", []rune{tea.KeyDown, tea.KeyEnter}, game.Navigate{To: game.ModeLibrary}},
		{"language", []rune{tea.KeyDown, tea.KeyDown, tea.KeyEnter}, game.ToggleLanguage{}},
		{"quit", []rune{tea.KeyUp, tea.KeyEnter}, tea.QuitMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(country.LangEnglish, 0)
			if got := press(t, m, tt.keys...); got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMenu_LastScoreShown(t *testing.T) {
	m := New(country.LangEnglish, 130)
	if !strings.Contains(m.View(100, 34), "130") {
		t.Error("expected last score in the view")
	}
	if strings.Contains(New(country.LangEnglish, 0).View(100, 34), "Last score") {
		t.Error("expected no score badge before the first expedition")
	}
}

func TestMenu_Relabels(t *testing.T) {
	m := New(country.LangEnglish, 0)
	m.Update(screen.LanguageMsg{Lang: country.LangKhmer})
	if m.Title() != "ម៉ឺនុយ" {
		t.Errorf("Title = %q", m.Title())
	}
	if m.menu.Items[0].Label != "ចាប់ផ្តើមដំណើរ" {
		t.Errorf("first item = %q", m.menu.Items[0].Label)
	}
}
