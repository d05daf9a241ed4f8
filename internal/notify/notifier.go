// Package notify delivers email notifications for matches and applications.
package notify

import "context"

// Notifier sends a single notification. Implementations must never panic;
// callers treat a returned error as a logged no-op and continue.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
