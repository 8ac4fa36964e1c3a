package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoice_NumberKeyChooses(t *testing.T) {
	mc := NewMultiChoice([]string{"France", "Japan", "Peru", "Chad"})

	mc, cmd := mc.Update(keyPress('3'))
	if cmd == nil {
		t.Fatal("expected a choice command")
	}
	msg, ok := cmd().(ChoiceMsg)
	if !ok || msg.Index != 2 {
		t.Fatalf("expected ChoiceMsg{2}, got %#v", cmd())
	}
	if !mc.Locked {
		t.Error("expected component to lock after a choice")
	}

	_, cmd = mc.Update(keyPress('1'))
	if cmd != nil {
		t.Error("expected no second choice once locked")
	}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyUp))
	_, cmd := mc.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a choice command")
	}
	if msg := cmd().(ChoiceMsg); msg.Index != 1 {
		t.Errorf("chosen = %d, want 1", msg.Index)
	}
}

func TestMultiChoice_OutOfRangeNumberIgnored(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})
	mc, cmd := mc.Update(keyPress('5'))
	if cmd != nil || mc.Locked {
		t.Error("expected key 5 to be ignored")
	}
}

func TestMultiChoice_RevealMarksAnswers(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})
	mc.Reveal(0, 2)
	view := mc.View()
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("expected both marks in view:\n%s", view)
	}
}

func TestMenu_WrapsAndRuns(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "one", Action: func() tea.Cmd { ran = "one"; return nil }},
		{Label: "two", Action: func() tea.Cmd { ran = "two"; return nil }},
	})
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Fatalf("expected wrap to last item, got %d", m.Selected)
	}
	m.Update(specialKey(tea.KeyEnter))
	if ran != "two" {
		t.Errorf("expected action two, got %q", ran)
	}
}

func TestStepBar_Counter(t *testing.T) {
	view := StepBar{Done: 3, Total: 5, Width: 30}.View()
	if !strings.Contains(view, "3 / 5") {
		t.Errorf("expected counter in view: %q", view)
	}
}
