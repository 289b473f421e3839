package notifier

import (
	"context"

	"go.uber.org/zap"
)

// Notifier publishes a finished report.
type Notifier interface {
	Notify(ctx context.Context, subject, text string) error
}

// LogNotifier writes reports to the structured log.
type LogNotifier struct {
	log *zap.SugaredLogger
}

func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, subject, text string) error {
	n.log.Infow("report", "subject", subject, "text", text)
	return nil
}

// Multi fans a report out to every notifier, returning the first error.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, subject, text string) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, subject, text); err != nil && first == nil {
			first = err
		}
	}
	return first
}
