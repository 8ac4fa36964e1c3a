package library

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/router"
	"github.com/abhisek/vexillo/internal/screen"
	"github.com/abhisek/vexillo/internal/screens/detail"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLibrary(t *testing.T) *LibraryScreen {
	t.Helper()
	tbl, err := country.Default()
	if err != nil {
		t.Fatal(err)
	}
	return New(tbl, country.LangEnglish)
}

func typeText(s *LibraryScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestLibrary_ShowsEverythingInitially(t *testing.T) {
	s := testLibrary(t)
	if len(s.Results()) != s.table.Len() {
		t.Errorf("expected all %d countries, got %d", s.table.Len(), len(s.Results()))
	}
	if s.Continent() != "All" {
		t.Errorf("continent = %q, want All", s.Continent())
	}
}

func TestLibrary_SearchByCapital(t *testing.T) {
	s := testLibrary(t)
	typeText(s, "phnom")

	if s.Query() != "phnom" {
		t.Fatalf("query = %q", s.Query())
	}
	res := s.Results()
	if len(res) != 1 || res[0].Code != "KH" {
		t.Fatalf("expected only Cambodia, got %v", res)
	}
}

func TestLibrary_TabCyclesContinents(t *testing.T) {
	s := testLibrary(t)
	s.Update(specialKey(tea.KeyTab))
	if s.Continent() != "Asia" {
		t.Fatalf("continent = %q, want Asia", s.Continent())
	}
	for _, c := range s.Results() {
		if c.Continent != "Asia" {
			t.Errorf("%s is not in Asia", c.Name)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.Continent() != "All" {
		t.Errorf("continent = %q after shift+tab, want All", s.Continent())
	}
}

func TestLibrary_NoResults(t *testing.T) {
	s := testLibrary(t)
	typeText(s, "zzzz")
	if len(s.Results()) != 0 {
		t.Fatalf("expected no results, got %d", len(s.Results()))
	}
	if !strings.Contains(s.View(100, 30), "No countries match") {
		t.Error("expected the no-results message")
	}
	if _, cmd := s.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestLibrary_EnterOpensDetail(t *testing.T) {
	s := testLibrary(t)
	typeText(s, "cambodia")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	d, ok := push.Screen.(*detail.DetailScreen)
	if !ok {
		t.Fatalf("expected a detail screen, got %T", push.Screen)
	}
	view := d.View(100, 30)
	for _, want := range []string{"Phnom Penh", "Riel", "៛"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestLibrary_LanguageSwitch(t *testing.T) {
	s := testLibrary(t)
	s.Update(screen.LanguageMsg{Lang: country.LangKhmer})
	if s.Title() != "បណ្ណាល័យ" {
		t.Errorf("Title = %q", s.Title())
	}
	if !strings.Contains(s.View(100, 30), "ទាំងអស់") {
		t.Error("expected the localized All chip")
	}
}
