package submit

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/azizk/campulse/internal/analysis"
	"github.com/azizk/campulse/internal/survey"
)

type fakeSaver struct {
	id    uint
	err   error
	calls int
}

func (f *fakeSaver) SaveFeedback(_ context.Context, _ uint, _ survey.FeedbackData) (uint, error) {
	f.calls++
	return f.id, f.err
}

type fakeAnalyzer struct {
	report *analysis.Analysis
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ *survey.FeedbackData) (*analysis.Analysis, error) {
	f.calls++
	return f.report, f.err
}

type fakeNotifier struct {
	err     error
	calls   int
	lastRep *analysis.Analysis
}

func (f *fakeNotifier) SendAnalysisToAdmin(_ context.Context, _ *survey.FeedbackData, report *analysis.Analysis) error {
	f.calls++
	f.lastRep = report
	return f.err
}

type fakeDrafts struct {
	err     error
	cleared int
}

func (f *fakeDrafts) Clear() error {
	f.cleared++
	return f.err
}

func completedForm() *survey.FeedbackData {
	data := survey.NewFeedbackData("Algorithmique")
	for _, id := range []string{"q1", "q2", "q3", "q4", "q5"} {
		data.SetScale(id, 4)
	}
	return data
}

func TestPipeline_FullSuccess(t *testing.T) {
	saver := &fakeSaver{id: 7}
	analyzer := &fakeAnalyzer{report: &analysis.Analysis{Sentiment: "positive"}}
	notifier := &fakeNotifier{}
	drafts := &fakeDrafts{}
	p := NewPipeline(saver, analyzer, notifier, drafts, zap.NewNop())

	out := p.Submit(context.Background(), 1, completedForm())

	if !out.Confirmed() {
		t.Fatalf("expected confirmed, got %s", out.Status)
	}
	if out.FeedbackID != 7 {
		t.Errorf("feedback ID = %d, want 7", out.FeedbackID)
	}
	if !out.Analyzed || !out.Notified {
		t.Errorf("expected analyzed and notified, got %+v", out)
	}
	if drafts.cleared != 1 {
		t.Errorf("draft cleared %d times, want 1", drafts.cleared)
	}
	if notifier.lastRep == nil {
		t.Error("notifier should receive the report")
	}
}

func TestPipeline_PersistFailureKeepsDraft(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	analyzer := &fakeAnalyzer{}
	notifier := &fakeNotifier{}
	drafts := &fakeDrafts{}
	p := NewPipeline(saver, analyzer, notifier, drafts, zap.NewNop())

	out := p.Submit(context.Background(), 1, completedForm())

	if out.Status != StatusPersistFailed {
		t.Fatalf("status = %s, want persist_failed", out.Status)
	}
	if analyzer.calls != 0 || notifier.calls != 0 {
		t.Error("analysis and notification must not run when persist fails")
	}
	if drafts.cleared != 0 {
		t.Error("draft must be kept when persist fails")
	}
}

func TestPipeline_NoIdentitySkipsPersist(t *testing.T) {
	saver := &fakeSaver{id: 1}
	drafts := &fakeDrafts{}
	p := NewPipeline(saver, nil, nil, drafts, zap.NewNop())

	out := p.Submit(context.Background(), 0, completedForm())

	if out.Status != StatusPersistSkipped {
		t.Fatalf("status = %s, want persist_skipped", out.Status)
	}
	if saver.calls != 0 {
		t.Error("saver must not be called without an identity")
	}
	if drafts.cleared != 0 {
		t.Error("draft must be kept when persist is skipped")
	}
}

func TestPipeline_AnalysisFailureStillNotifies(t *testing.T) {
	saver := &fakeSaver{id: 3}
	analyzer := &fakeAnalyzer{err: errors.New("model down")}
	notifier := &fakeNotifier{}
	drafts := &fakeDrafts{}
	p := NewPipeline(saver, analyzer, notifier, drafts, zap.NewNop())

	out := p.Submit(context.Background(), 1, completedForm())

	if !out.Confirmed() {
		t.Fatalf("expected confirmed, got %s", out.Status)
	}
	if out.Analyzed {
		t.Error("analyzed should be false")
	}
	if notifier.calls != 1 {
		t.Fatal("notification should still go out")
	}
	if notifier.lastRep != nil {
		t.Error("notifier should receive a nil report")
	}
	if drafts.cleared != 1 {
		t.Error("draft should be cleared, the answers are safe")
	}
}

func TestPipeline_NotifyFailureStillConfirms(t *testing.T) {
	saver := &fakeSaver{id: 4}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	drafts := &fakeDrafts{}
	p := NewPipeline(saver, nil, notifier, drafts, zap.NewNop())

	out := p.Submit(context.Background(), 1, completedForm())

	if !out.Confirmed() {
		t.Fatalf("expected confirmed, got %s", out.Status)
	}
	if out.Notified {
		t.Error("notified should be false")
	}
	if drafts.cleared != 1 {
		t.Error("draft should be cleared")
	}
}

func TestPipeline_NilAnalyzerAndNotifier(t *testing.T) {
	saver := &fakeSaver{id: 5}
	drafts := &fakeDrafts{}
	p := NewPipeline(saver, nil, nil, drafts, zap.NewNop())

	out := p.Submit(context.Background(), 1, completedForm())

	if !out.Confirmed() {
		t.Fatalf("expected confirmed, got %s", out.Status)
	}
	if out.Analyzed || out.Notified {
		t.Errorf("nothing optional configured, got %+v", out)
	}
}

func TestPipeline_DraftClearFailureDoesNotChangeOutcome(t *testing.T) {
	saver := &fakeSaver{id: 6}
	drafts := &fakeDrafts{err: errors.New("read-only fs")}
	p := NewPipeline(saver, nil, nil, drafts, zap.NewNop())

	out := p.Submit(context.Background(), 1, completedForm())

	if !out.Confirmed() {
		t.Fatalf("expected confirmed, got %s", out.Status)
	}
}
