package survey

import "testing"

func TestWizardHappyPath(t *testing.T) {
	steps := []struct {
		from Step
		ev   Event
		want Step
	}{
		{StepWelcome, EventStart, StepHub},
		{StepHub, EventSubjectChosen, StepFormPedagogy},
		{StepFormPedagogy, EventSubmitAccepted, StepSubmitting},
		{StepSubmitting, EventSubmitted, StepThanks},
		{StepThanks, EventAcknowledge, StepHub},
		{StepHub, EventEnvChosen, StepFormEnv},
		{StepFormEnv, EventSubmitAccepted, StepSubmitting},
	}
	for _, tt := range steps {
		got, ok := Next(tt.from, tt.ev)
		if !ok {
			t.Fatalf("%v + %v: expected a transition", tt.from, tt.ev)
		}
		if got != tt.want {
			t.Errorf("%v + %v = %v, want %v", tt.from, tt.ev, got, tt.want)
		}
	}
}

func TestWizardScannerPath(t *testing.T) {
	got, ok := Next(StepHub, EventOpenScanner)
	if !ok || got != StepScanner {
		t.Fatalf("hub + open scanner = %v (%v)", got, ok)
	}
	got, ok = Next(StepScanner, EventSubjectChosen)
	if !ok || got != StepFormPedagogy {
		t.Fatalf("scanner + subject = %v (%v)", got, ok)
	}
	got, ok = Next(StepScanner, EventBack)
	if !ok || got != StepHub {
		t.Fatalf("scanner + back = %v (%v)", got, ok)
	}
}

func TestWizardRejectsMeaninglessEvents(t *testing.T) {
	cases := []struct {
		from Step
		ev   Event
	}{
		{StepWelcome, EventSubmitAccepted},
		{StepHub, EventSubmitted},
		{StepSubmitting, EventBack},
		{StepSubmitting, EventAcknowledge},
		{StepThanks, EventBack},
		{StepThanks, EventSubjectChosen},
	}
	for _, tt := range cases {
		got, ok := Next(tt.from, tt.ev)
		if ok {
			t.Errorf("%v + %v: unexpected transition to %v", tt.from, tt.ev, got)
		}
		if got != tt.from {
			t.Errorf("%v + %v: rejected event must not move, got %v", tt.from, tt.ev, got)
		}
	}
}

func TestThanksOnlyExitsToHub(t *testing.T) {
	for ev := EventStart; ev <= EventBack; ev++ {
		got, ok := Next(StepThanks, ev)
		if ev == EventAcknowledge {
			if !ok || got != StepHub {
				t.Fatalf("thanks + acknowledge = %v (%v), want hub", got, ok)
			}
			continue
		}
		if ok {
			t.Errorf("thanks + %v should not transition, got %v", ev, got)
		}
	}
}

func TestGlobalProgress(t *testing.T) {
	tests := []struct {
		completed int
		envDone   bool
		subjects  int
		want      int
	}{
		{0, false, 11, 0},
		{3, false, 11, 25}, // round(100*3/12)
		{3, true, 11, 33},  // round(100*4/12)
		{11, true, 11, 100},
		{1, false, 2, 33},
		{2, true, 2, 100},
	}
	for _, tt := range tests {
		got := GlobalProgress(tt.completed, tt.envDone, tt.subjects)
		if got != tt.want {
			t.Errorf("GlobalProgress(%d, %v, %d) = %d, want %d",
				tt.completed, tt.envDone, tt.subjects, got, tt.want)
		}
	}
}
