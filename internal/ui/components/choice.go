package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/ui/theme"
)

// Choice is a single-select option list. Unlike a quiz choice there is no
// right answer, picking an option just records it.
type Choice struct {
	Options  []string
	Cursor   int
	Value    string
	Answered bool
}

// NewChoice creates a choice selector over options.
func NewChoice(options []string) Choice {
	return Choice{Options: options}
}

// SetValue restores a previously saved answer, drafts use this.
func (c *Choice) SetValue(v string) {
	for i, opt := range c.Options {
		if opt == v {
			c.Cursor = i
			c.Value = v
			c.Answered = true
			return
		}
	}
}

// Update handles keyboard input. Returns true when the answer changed.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "left", "h", "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
		c.Value = c.Options[c.Cursor]
		c.Answered = true
		return c, true
	case "right", "l", "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
		c.Value = c.Options[c.Cursor]
		c.Answered = true
		return c, true
	case "enter", "space":
		c.Value = c.Options[c.Cursor]
		c.Answered = true
		return c, true
	}
	return c, false
}

// View renders the options on one line.
func (c Choice) View(focused bool) string {
	var out string
	for i, opt := range c.Options {
		cell := " " + opt + " "
		switch {
		case c.Answered && opt == c.Value && focused:
			out += lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(cell)
		case c.Answered && opt == c.Value:
			out += theme.Selected.Render(cell)
		case focused && i == c.Cursor:
			out += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Render(cell)
		default:
			out += theme.Unselected.Render(cell)
		}
		out += " "
	}
	if !c.Answered {
		out += theme.Hint.Render("  (←/→ puis entrée)")
	}
	return out
}
