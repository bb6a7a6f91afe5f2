package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.Msg {
	return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
}

func TestScale_DigitAnswers(t *testing.T) {
	s := NewScale(1, 5)
	if s.Answered {
		t.Fatal("fresh scale must be unanswered")
	}

	s, changed := s.Update(key("4"))
	if !changed || !s.Answered || s.Value != 4 {
		t.Fatalf("after '4': changed=%v answered=%v value=%d", changed, s.Answered, s.Value)
	}
}

func TestScale_OutOfRangeDigitIgnored(t *testing.T) {
	s := NewScale(1, 5)
	s, changed := s.Update(key("9"))
	if changed || s.Answered {
		t.Fatal("out of range digit must not answer")
	}
}

func TestScale_SetValueClamps(t *testing.T) {
	s := NewScale(1, 5)
	s.SetValue(7)
	if s.Answered {
		t.Fatal("invalid restore must be ignored")
	}
	s.SetValue(3)
	if !s.Answered || s.Value != 3 {
		t.Fatalf("restore failed: %+v", s)
	}
}

func TestChoice_Navigation(t *testing.T) {
	c := NewChoice([]string{"Oui", "Non"})

	c, changed := c.Update(key("l"))
	if !changed || c.Value != "Non" {
		t.Fatalf("after right: changed=%v value=%q", changed, c.Value)
	}

	c, _ = c.Update(key("h"))
	if c.Value != "Oui" {
		t.Fatalf("after left: value=%q", c.Value)
	}
}

func TestChoice_SetValue(t *testing.T) {
	c := NewChoice([]string{"Bus", "Taxi collectif"})
	c.SetValue("Taxi collectif")
	if !c.Answered || c.Cursor != 1 {
		t.Fatalf("restore failed: %+v", c)
	}

	c2 := NewChoice([]string{"Bus"})
	c2.SetValue("Train")
	if c2.Answered {
		t.Fatal("unknown value must not restore")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "done", Disabled: true},
		{Label: "open"},
		{Label: "also done", Disabled: true},
		{Label: "last"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection should skip disabled, got %d", m.Selected)
	}

	m, _ = m.Update(key("j"))
	if m.Selected != 3 {
		t.Fatalf("down should skip disabled, got %d", m.Selected)
	}

	m, _ = m.Update(key("k"))
	if m.Selected != 1 {
		t.Fatalf("up should skip disabled, got %d", m.Selected)
	}
}

func TestMenu_DisabledItemNotActivated(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "done", Disabled: true, Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})
	m.Selected = 0

	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil || ran {
		t.Fatal("disabled item must not run its action")
	}
}
