package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/ui/theme"
)

// Scale is a 1..N rating selector answered with arrows or digit keys.
type Scale struct {
	Min      int
	Max      int
	Value    int
	Answered bool
}

// NewScale creates a scale selector over [min, max].
func NewScale(min, max int) Scale {
	return Scale{Min: min, Max: max, Value: min}
}

// SetValue restores a previously saved answer, drafts use this.
func (s *Scale) SetValue(v int) {
	if v < s.Min || v > s.Max {
		return
	}
	s.Value = v
	s.Answered = true
}

// Update handles keyboard input. Digit keys answer directly.
func (s Scale) Update(msg tea.Msg) (Scale, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if s.Value > s.Min {
			s.Value--
		}
		s.Answered = true
		return s, true
	case "right", "l":
		if s.Value < s.Max {
			s.Value++
		}
		s.Answered = true
		return s, true
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= s.Min && n <= s.Max {
			s.Value = n
			s.Answered = true
			return s, true
		}
	}
	return s, false
}

// View renders the scale as numbered cells.
func (s Scale) View(focused bool) string {
	var out string
	for v := s.Min; v <= s.Max; v++ {
		cell := fmt.Sprintf(" %d ", v)
		switch {
		case s.Answered && v == s.Value && focused:
			out += lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(cell)
		case s.Answered && v == s.Value:
			out += theme.Selected.Render(cell)
		case focused && v == s.Value:
			out += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Render(cell)
		default:
			out += theme.Unselected.Render(cell)
		}
		out += " "
	}
	if !s.Answered {
		out += theme.Hint.Render("  (1-5 ou ←/→)")
	}
	return out
}
