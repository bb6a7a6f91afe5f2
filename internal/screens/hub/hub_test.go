package hub

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/survey"
)

type fakeCompleter struct {
	done map[string]bool
	err  error
}

func (f *fakeCompleter) CompletedSubjects(context.Context, uint) (map[string]bool, error) {
	return f.done, f.err
}

func testDeps(done map[string]bool) Deps {
	return Deps{
		Completer: &fakeCompleter{done: done},
		StudentID: 1,
		Subjects:  []string{"Réseaux", "Algorithmique", "Bases de Données"},
	}
}

func TestHub_MarksCompletedSubjects(t *testing.T) {
	h := New(testDeps(map[string]bool{"Réseaux": true}))

	view := h.View(100, 40)
	if !strings.Contains(view, "✓ Réseaux") {
		t.Error("completed subject should be checked")
	}
	if strings.Contains(view, "✓ Algorithmique") {
		t.Error("open subject must not be checked")
	}

	if !h.menu.Items[0].Disabled {
		t.Error("completed subject entry should be disabled")
	}
	if h.menu.Items[1].Disabled {
		t.Error("open subject entry should be enabled")
	}
}

func TestHub_EnvironmentEntry(t *testing.T) {
	h := New(testDeps(map[string]bool{survey.EnvironmentSubject: true}))

	env := h.menu.Items[len(h.deps.Subjects)]
	if !env.Disabled {
		t.Error("completed audit entry should be disabled")
	}
	if !strings.Contains(env.Label, "✓") {
		t.Error("completed audit should be checked")
	}
}

func TestHub_Progress(t *testing.T) {
	// 1 of 3 subjects plus the audit: round(100*2/4) = 50.
	h := New(testDeps(map[string]bool{
		"Réseaux":                 true,
		survey.EnvironmentSubject: true,
	}))
	if h.Progress() != 50 {
		t.Fatalf("progress = %d, want 50", h.Progress())
	}
}

func TestHub_ReloadsOnRestore(t *testing.T) {
	completer := &fakeCompleter{done: map[string]bool{}}
	deps := testDeps(nil)
	deps.Completer = completer
	h := New(deps)

	if h.menu.Items[0].Disabled {
		t.Fatal("nothing submitted yet")
	}

	completer.done = map[string]bool{"Réseaux": true}
	h.Update(router.ScreenRestoredMsg{})

	if !h.menu.Items[0].Disabled {
		t.Error("restore should pick up the new submission")
	}
}

func TestHub_SubjectOpensForm(t *testing.T) {
	h := New(testDeps(map[string]bool{}))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a subject should produce a command")
	}
	msg := cmd()
	nav, ok := msg.(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", msg)
	}
	if nav.Event != survey.EventSubjectChosen {
		t.Errorf("expected EventSubjectChosen, got %v", nav.Event)
	}
	if nav.Screen.Title() != "Réseaux" {
		t.Errorf("form title = %q, want Réseaux", nav.Screen.Title())
	}
}

func TestHub_CompleterFailureDegrades(t *testing.T) {
	deps := testDeps(nil)
	deps.Completer = &fakeCompleter{err: errors.New("db gone")}
	h := New(deps)

	// All entries stay open, the hub just flags degraded data.
	if h.menu.Items[0].Disabled {
		t.Error("entries must stay open when completion state is unknown")
	}
	if !h.loadErr {
		t.Error("load failure should be flagged")
	}
}
