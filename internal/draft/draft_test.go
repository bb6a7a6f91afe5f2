package draft

import (
	"testing"

	"github.com/azizk/campulse/internal/survey"
)

func intp(v int) *int { return &v }

func TestLoadWithoutDraft(t *testing.T) {
	s := NewStore(t.TempDir())
	d, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d != nil {
		t.Fatal("expected nil draft on fresh store")
	}
}

func TestDraftSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	// Fill 2 of 5 answers, then simulate a reload with a fresh store.
	d := survey.NewFeedbackData("Réseaux")
	d.Q1 = intp(4)
	d.Q3 = intp(2)
	if err := s.Save(d); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := NewStore(dir)
	got, err := reloaded.LoadFor("Réseaux")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected draft to survive reload")
	}
	if got.AnsweredCount() != 2 {
		t.Fatalf("answered = %d, want 2", got.AnsweredCount())
	}
	if got.Q1 == nil || *got.Q1 != 4 || got.Q3 == nil || *got.Q3 != 2 {
		t.Fatal("reloaded answers differ from saved answers")
	}
}

func TestLoadForOtherSubjectStartsBlank(t *testing.T) {
	s := NewStore(t.TempDir())
	d := survey.NewFeedbackData("Réseaux")
	d.Q1 = intp(5)
	if err := s.Save(d); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadFor("Algorithmique")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatal("a draft for another subject must not resume")
	}
}

func TestEveryEditOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())
	d := survey.NewFeedbackData(survey.EnvironmentSubject)

	d.Q6Jobs = "Non"
	if err := s.Save(d); err != nil {
		t.Fatalf("save: %v", err)
	}
	d.Q10Laptop = "Oui"
	if err := s.Save(d); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Q6Jobs != "Non" || got.Q10Laptop != "Oui" {
		t.Fatal("latest save must win")
	}
}

func TestClear(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Clear(); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}

	if err := s.Save(survey.NewFeedbackData("Réseaux")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	d, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d != nil {
		t.Fatal("draft must be gone after clear")
	}
}
