package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier records notifications in the log instead of delivering them.
// Used when no mail transport is configured and in tests.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Send logs the notification and reports success.
func (n *LogNotifier) Send(_ context.Context, to, subject, _ string) error {
	n.logger.Info("notification (log only)",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}
