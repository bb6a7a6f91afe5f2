package router

import (
	"github.com/azizk/campulse/internal/screen"
	"github.com/azizk/campulse/internal/survey"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to replace the current screen. The
// wizard uses this for lateral moves (form to submitting to thanks) so that
// popping never lands back on a spent screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// ScreenRestoredMsg is delivered to a screen when a pop makes it the active
// screen again. The hub refreshes its completed-subjects state on it.
type ScreenRestoredMsg struct{}

// Stepper exposes a screen's wizard step. Every wizard screen implements it;
// navigation is gated on it.
type Stepper interface {
	Step() survey.Step
}

// NavigateMsg asks the router to advance the wizard. Screen is the
// destination, nil for backward moves. The move is applied only when the
// transition table allows the event on the active step.
type NavigateMsg struct {
	Event  survey.Event
	Screen screen.Screen
}

// Router manages a stack of screens.
type Router struct {
	stack []screen.Screen
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen and notifies the newly exposed screen.
// No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	closeScreen(r.stack[len(r.stack)-1])
	r.stack = r.stack[:len(r.stack)-1]

	restored, cmd := r.Active().Update(ScreenRestoredMsg{})
	r.stack[len(r.stack)-1] = restored
	return cmd
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	closeScreen(r.stack[len(r.stack)-1])
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Navigate applies a wizard transition. The transition table is the single
// authority: an event it rejects for the active step is dropped, as is a
// destination screen whose step is not the one the table names. Backward
// moves pop; forward moves out of the hub push so esc can come back to it,
// every other forward move replaces the spent screen.
func (r *Router) Navigate(msg NavigateMsg) tea.Cmd {
	cur, ok := r.Active().(Stepper)
	if !ok {
		return nil
	}
	next, ok := survey.Next(cur.Step(), msg.Event)
	if !ok {
		return nil
	}
	if msg.Screen == nil {
		return r.Pop()
	}
	if target, ok := msg.Screen.(Stepper); !ok || target.Step() != next {
		return nil
	}
	if cur.Step() == survey.StepHub {
		return r.Push(msg.Screen)
	}
	return r.Replace(msg.Screen)
}

// closeScreen releases screens that hold external resources, like the
// scanner's capture source.
func closeScreen(s screen.Screen) {
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case NavigateMsg:
		return r.Navigate(msg)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
