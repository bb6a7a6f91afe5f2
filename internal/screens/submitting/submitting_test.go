package submitting

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/screens/thanks"
	"github.com/azizk/campulse/internal/submit"
	"github.com/azizk/campulse/internal/survey"
)

type fakePipeline struct {
	outcome submit.Outcome
	calls   int
}

func (f *fakePipeline) Submit(context.Context, uint, *survey.FeedbackData) submit.Outcome {
	f.calls++
	return f.outcome
}

func TestSubmitting_RunsPipelineOnce(t *testing.T) {
	pipeline := &fakePipeline{outcome: submit.Outcome{Status: submit.StatusConfirmed}}
	s := New(pipeline, 1, survey.NewFeedbackData("Réseaux"))

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should start the pipeline")
	}

	msg := findDoneMsg(t, cmd)
	if pipeline.calls != 1 {
		t.Fatalf("pipeline ran %d times, want 1", pipeline.calls)
	}
	if msg.outcome.Status != submit.StatusConfirmed {
		t.Fatalf("outcome status = %s", msg.outcome.Status)
	}
}

func TestSubmitting_TransitionsToThanks(t *testing.T) {
	s := New(&fakePipeline{}, 1, survey.NewFeedbackData("Réseaux"))

	_, cmd := s.Update(doneMsg{outcome: submit.Outcome{Status: submit.StatusConfirmed}})
	if cmd == nil {
		t.Fatal("done should produce a transition")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.Event != survey.EventSubmitted {
		t.Errorf("expected EventSubmitted, got %v", nav.Event)
	}
	if _, ok := nav.Screen.(*thanks.ThanksScreen); !ok {
		t.Fatalf("expected thanks screen, got %T", nav.Screen)
	}
}

func TestSubmitting_IgnoresKeys(t *testing.T) {
	s := New(&fakePipeline{}, 1, survey.NewFeedbackData("Réseaux"))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("keys must be ignored while submitting")
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Fatal("escape must be ignored while submitting")
	}
}

// findDoneMsg runs the batched Init commands until the pipeline's doneMsg
// shows up.
func findDoneMsg(t *testing.T, cmd tea.Cmd) doneMsg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case doneMsg:
			return msg
		case tea.BatchMsg:
			queue = append(queue, msg...)
		}
	}
	t.Fatal("no doneMsg produced")
	return doneMsg{}
}
