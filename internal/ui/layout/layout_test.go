package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vexillo/internal/country"
)

func TestTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := TooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("TooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestCompact(t *testing.T) {
	if Compact(120, 40) {
		t.Error("a roomy terminal should not be compact")
	}
	if !Compact(80, 40) {
		t.Error("a narrow terminal should be compact")
	}
	if !Compact(120, 18) {
		t.Error("a short terminal should be compact")
	}
}

func TestTooSmallView_Localized(t *testing.T) {
	en := TooSmallView(country.LangEnglish, 50, 12)
	if !strings.Contains(en, "Terminal too small") || !strings.Contains(en, "50×12") {
		t.Errorf("english view = %q", en)
	}
	km := TooSmallView(country.LangKhmer, 50, 12)
	if !strings.Contains(km, "អេក្រង់តូចពេក") || !strings.Contains(km, "64×20") {
		t.Errorf("khmer view = %q", km)
	}
}

func TestHeader_ShowsLevelAndLanguages(t *testing.T) {
	h := Header("Vexillo", "Challenge", Status{Lang: country.LangKhmer, Level: 3, MaxLevel: 10, LevelLabel: "Level"}, 100)
	for _, want := range []string{"Vexillo", "Challenge", "Level 3/10", "EN", "KM"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q:\n%s", want, h)
		}
	}
	if lipgloss.Height(h) != 3 {
		t.Errorf("header should be one bordered line:\n%s", h)
	}

	menu := Header("Vexillo", "Menu", Status{Lang: country.LangEnglish, LevelLabel: "Level"}, 100)
	if strings.Contains(menu, "Level") {
		t.Errorf("level shown outside a challenge:\n%s", menu)
	}
}

func TestFooter_KeepsQuitWhenNarrow(t *testing.T) {
	hints := []KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+L", Description: "Language"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}

	wide := Footer(hints, 120)
	for _, h := range hints {
		if !strings.Contains(wide, h.Description) {
			t.Errorf("wide footer missing %q", h.Description)
		}
	}

	narrow := Footer(hints, MinWidth)
	if !strings.Contains(narrow, "Quit") {
		t.Errorf("narrow footer dropped quit:\n%s", narrow)
	}
	if strings.Contains(narrow, "Back") {
		t.Errorf("narrow footer should have dropped trailing hints:\n%s", narrow)
	}
}

func TestFitHints(t *testing.T) {
	if got := fitHints(nil, 10, 1); got != nil {
		t.Errorf("fitHints(nil) = %v", got)
	}
	got := fitHints([]string{"aaaa", "bbbb", "cccc", "quit"}, 14, 1)
	if strings.Join(got, "|") != "aaaa|bbbb|quit" {
		t.Errorf("fitHints = %v", got)
	}
}

func TestFrame_FillsHeight(t *testing.T) {
	header := Header("Vexillo", "Menu", Status{Lang: country.LangEnglish}, 80)
	footer := Footer([]KeyHint{{Key: "Ctrl+C", Description: "Quit"}}, 80)

	out := Frame(header, "body", footer, 80, 30)
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
	if BodyHeight(header, footer, 30) != 30-lipgloss.Height(header)-lipgloss.Height(footer) {
		t.Error("body height does not account for the chrome")
	}
	if BodyHeight(header, footer, 2) != 0 {
		t.Error("body height must not go negative")
	}
}
