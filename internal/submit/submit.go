// Package submit runs the post-form pipeline: persist the answers, analyze
// them, notify the admin, clear the draft. The pipeline is fail-open: a
// student is never shown an error wall, whatever breaks is logged and the
// flow continues to the thank-you screen.
package submit

import (
	"context"

	"go.uber.org/zap"

	"github.com/azizk/campulse/internal/analysis"
	"github.com/azizk/campulse/internal/survey"
)

// Saver persists one submission.
type Saver interface {
	SaveFeedback(ctx context.Context, studentID uint, data survey.FeedbackData) (uint, error)
}

// Analyzer produces the structured report for one submission.
type Analyzer interface {
	Analyze(ctx context.Context, data *survey.FeedbackData) (*analysis.Analysis, error)
}

// Notifier delivers the report to the admin.
type Notifier interface {
	SendAnalysisToAdmin(ctx context.Context, data *survey.FeedbackData, report *analysis.Analysis) error
}

// DraftStore clears the local draft once the submission is safe.
type DraftStore interface {
	Clear() error
}

// Status tells the UI how far the pipeline got.
type Status int

const (
	// StatusConfirmed: the submission is persisted. Analysis and
	// notification may still have failed, that is acceptable.
	StatusConfirmed Status = iota

	// StatusPersistFailed: the database write failed. The draft is kept
	// so nothing is lost.
	StatusPersistFailed

	// StatusPersistSkipped: no student identity was available, nothing
	// was written. The draft is kept.
	StatusPersistSkipped
)

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "confirmed"
	case StatusPersistFailed:
		return "persist_failed"
	case StatusPersistSkipped:
		return "persist_skipped"
	default:
		return "unknown"
	}
}

// Outcome reports what the pipeline managed to do.
type Outcome struct {
	Status     Status
	FeedbackID uint
	Analyzed   bool
	Notified   bool
}

// Confirmed reports whether the answers made it to storage.
func (o Outcome) Confirmed() bool { return o.Status == StatusConfirmed }

// Pipeline wires the submission steps together. Analyzer and Notifier may
// be nil when the feature is not configured.
type Pipeline struct {
	saver    Saver
	analyzer Analyzer
	notifier Notifier
	drafts   DraftStore
	log      *zap.Logger
}

// NewPipeline creates a submission pipeline.
func NewPipeline(saver Saver, analyzer Analyzer, notifier Notifier, drafts DraftStore, log *zap.Logger) *Pipeline {
	return &Pipeline{
		saver:    saver,
		analyzer: analyzer,
		notifier: notifier,
		drafts:   drafts,
		log:      log,
	}
}

// Submit runs the pipeline for one completed form. It never returns an
// error; every failure is folded into the Outcome and logged.
func (p *Pipeline) Submit(ctx context.Context, studentID uint, data *survey.FeedbackData) Outcome {
	if studentID == 0 {
		p.log.Warn("submission skipped, no student identity",
			zap.String("subject", data.Subject))
		return Outcome{Status: StatusPersistSkipped}
	}

	id, err := p.saver.SaveFeedback(ctx, studentID, *data)
	if err != nil {
		p.log.Error("submission persist failed",
			zap.String("subject", data.Subject),
			zap.Error(err))
		return Outcome{Status: StatusPersistFailed}
	}

	out := Outcome{Status: StatusConfirmed, FeedbackID: id}

	var report *analysis.Analysis
	if p.analyzer != nil {
		report, err = p.analyzer.Analyze(ctx, data)
		if err != nil {
			p.log.Warn("submission analysis failed",
				zap.Uint("feedback_id", id),
				zap.Error(err))
			report = nil
		} else {
			out.Analyzed = true
		}
	}

	if p.notifier != nil {
		// The notification goes out with or without a report.
		if err := p.notifier.SendAnalysisToAdmin(ctx, data, report); err != nil {
			p.log.Warn("admin notification failed",
				zap.Uint("feedback_id", id),
				zap.Error(err))
		} else {
			out.Notified = true
		}
	}

	if err := p.drafts.Clear(); err != nil {
		p.log.Warn("draft clear failed", zap.Error(err))
	}

	p.log.Info("submission confirmed",
		zap.Uint("feedback_id", id),
		zap.String("subject", data.Subject),
		zap.Bool("analyzed", out.Analyzed),
		zap.Bool("notified", out.Notified))

	return out
}
