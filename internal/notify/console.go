package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/azizk/campulse/internal/analysis"
	"github.com/azizk/campulse/internal/survey"
)

// ConsoleNotifier writes the report to the application log. It is the
// default channel when no SendGrid key is configured.
type ConsoleNotifier struct {
	log *zap.Logger

	mu   sync.Mutex
	sent []string
}

// NewConsoleNotifier creates a log-backed notifier.
func NewConsoleNotifier(log *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{log: log}
}

func (n *ConsoleNotifier) SendAnalysisToAdmin(_ context.Context, data *survey.FeedbackData, report *analysis.Analysis) error {
	subject, body, err := RenderReport(data, report)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.sent = append(n.sent, body)
	n.mu.Unlock()

	n.log.Info("admin notification",
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// Sent returns the bodies delivered so far, oldest first.
func (n *ConsoleNotifier) Sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

// NopNotifier discards every report.
type NopNotifier struct{}

func (NopNotifier) SendAnalysisToAdmin(context.Context, *survey.FeedbackData, *analysis.Analysis) error {
	return nil
}
