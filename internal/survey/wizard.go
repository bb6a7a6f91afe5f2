package survey

import "math"

// Step is a screen of the wizard. The admin sidebar is an overlay on top of
// whatever step is active and deliberately not part of this machine.
type Step int

const (
	StepWelcome Step = iota
	StepHub
	StepScanner
	StepFormPedagogy
	StepFormEnv
	StepSubmitting
	StepThanks
)

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepHub:
		return "hub"
	case StepScanner:
		return "scanner"
	case StepFormPedagogy:
		return "form_pedagogy"
	case StepFormEnv:
		return "form_env"
	case StepSubmitting:
		return "submitting"
	case StepThanks:
		return "thanks"
	}
	return "unknown"
}

// Event is something that happened on the current step.
type Event int

const (
	// EventStart leaves the welcome splash.
	EventStart Event = iota
	// EventOpenScanner opens the QR scanner from the hub.
	EventOpenScanner
	// EventSubjectChosen picks a course, from the hub menu or a decoded QR.
	EventSubjectChosen
	// EventEnvChosen opens the environment audit from the hub.
	EventEnvChosen
	// EventSubmitAccepted fires only after the 5/5 validation passed.
	// An incomplete form never produces it; the banner is not a transition.
	EventSubmitAccepted
	// EventSubmitted fires when the submission pipeline settled, whatever
	// its outcome. Submitting always advances; failures are masked.
	EventSubmitted
	// EventAcknowledge leaves the thanks screen.
	EventAcknowledge
	// EventBack abandons the scanner or a form.
	EventBack
)

// Next is the wizard transition function. It returns the step that follows
// (s, e) and false when the event is meaningless on that step, in which case
// the caller must stay put.
func Next(s Step, e Event) (Step, bool) {
	switch s {
	case StepWelcome:
		if e == EventStart {
			return StepHub, true
		}
	case StepHub:
		switch e {
		case EventOpenScanner:
			return StepScanner, true
		case EventSubjectChosen:
			return StepFormPedagogy, true
		case EventEnvChosen:
			return StepFormEnv, true
		}
	case StepScanner:
		switch e {
		case EventSubjectChosen:
			return StepFormPedagogy, true
		case EventBack:
			return StepHub, true
		}
	case StepFormPedagogy, StepFormEnv:
		switch e {
		case EventSubmitAccepted:
			return StepSubmitting, true
		case EventBack:
			return StepHub, true
		}
	case StepSubmitting:
		if e == EventSubmitted {
			return StepThanks, true
		}
	case StepThanks:
		// The only way out of thanks is back to the hub.
		if e == EventAcknowledge {
			return StepHub, true
		}
	}
	return s, false
}

// GlobalProgress is the hub progress figure:
// round(100 × (completed courses + env done) / (course count + 1)).
// Display only, never gates anything.
func GlobalProgress(completedSubjects int, envDone bool, subjectCount int) int {
	done := completedSubjects
	if envDone {
		done++
	}
	total := subjectCount + 1
	return int(math.Round(100 * float64(done) / float64(total)))
}
