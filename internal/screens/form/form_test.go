package form

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/azizk/campulse/internal/draft"
	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/submit"
	"github.com/azizk/campulse/internal/survey"
)

type fakePipeline struct {
	calls int
}

func (f *fakePipeline) Submit(context.Context, uint, *survey.FeedbackData) submit.Outcome {
	f.calls++
	return submit.Outcome{Status: submit.StatusConfirmed}
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func testDeps(t *testing.T) (Deps, *fakePipeline) {
	t.Helper()
	pipeline := &fakePipeline{}
	return Deps{
		Pipeline:  pipeline,
		Drafts:    draft.NewStore(t.TempDir()),
		StudentID: 1,
	}, pipeline
}

func answerAll(f *FormScreen) {
	for range f.rows {
		f.Update(key("3")) // answers scale questions
		f.Update(key("l")) // answers choice questions
		f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	}
}

func TestForm_IncompleteSubmitShowsBanner(t *testing.T) {
	deps, pipeline := testDeps(t)
	f := New(deps, "Réseaux")

	f.Update(key("4"))

	_, cmd := f.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd != nil {
		t.Fatal("incomplete form must not submit")
	}
	if pipeline.calls != 0 {
		t.Fatal("pipeline must not run for an incomplete form")
	}

	view := f.View(100, 40)
	if !strings.Contains(view, "1/5") {
		t.Errorf("banner should show answer count:\n%s", view)
	}
}

func TestForm_CompleteSubmitReplacesWithSubmitting(t *testing.T) {
	deps, _ := testDeps(t)
	f := New(deps, "Réseaux")

	answerAll(f)
	if !f.data.Complete() {
		t.Fatalf("form should be complete, got %d answers", f.data.AnsweredCount())
	}

	_, cmd := f.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("complete form should submit")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.Event != survey.EventSubmitAccepted {
		t.Errorf("expected EventSubmitAccepted, got %v", nav.Event)
	}
	if nav.Screen == nil {
		t.Fatal("submit should carry the submitting screen")
	}
}

func TestForm_EditsPersistToDraft(t *testing.T) {
	deps, _ := testDeps(t)
	f := New(deps, "Réseaux")

	f.Update(key("5"))

	saved, err := deps.Drafts.LoadFor("Réseaux")
	if err != nil || saved == nil {
		t.Fatalf("draft should exist after an edit: %v", err)
	}
	if saved.Q1 == nil || *saved.Q1 != 5 {
		t.Fatalf("draft should carry the answer, got %+v", saved)
	}
}

func TestForm_ResumesDraft(t *testing.T) {
	deps, _ := testDeps(t)

	first := New(deps, "Réseaux")
	first.Update(key("2"))

	resumed := New(deps, "Réseaux")
	if resumed.data.Q1 == nil || *resumed.data.Q1 != 2 {
		t.Fatal("new form for the same subject should resume the draft")
	}
	if !resumed.rows[0].scale.Answered {
		t.Fatal("restored answer should show in the widget")
	}
}

func TestForm_OtherSubjectStartsBlank(t *testing.T) {
	deps, _ := testDeps(t)

	first := New(deps, "Réseaux")
	first.Update(key("2"))

	other := New(deps, "Algorithmique")
	if other.data.AnsweredCount() != 0 {
		t.Fatal("a different subject must not inherit the draft")
	}
}

func TestForm_EnvironmentQuestions(t *testing.T) {
	deps, _ := testDeps(t)
	f := New(deps, survey.EnvironmentSubject)

	if len(f.rows) != survey.AnswersPerForm {
		t.Fatalf("expected %d questions, got %d", survey.AnswersPerForm, len(f.rows))
	}
	if f.rows[0].question.Kind != survey.KindChoice {
		t.Error("first audit question should be a choice")
	}
	if f.Title() != "Audit environnement" {
		t.Errorf("title = %q", f.Title())
	}
	if f.Step() != survey.StepFormEnv {
		t.Errorf("audit form step = %v, want StepFormEnv", f.Step())
	}
	if New(deps, "Réseaux").Step() != survey.StepFormPedagogy {
		t.Error("course form step should be StepFormPedagogy")
	}
}

func TestForm_BannerClearsWhenComplete(t *testing.T) {
	deps, _ := testDeps(t)
	f := New(deps, "Réseaux")

	f.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if !f.incomplete {
		t.Fatal("banner should be up")
	}

	answerAll(f)
	if f.incomplete {
		t.Fatal("banner should clear once the form is complete")
	}
}
