// Package notify delivers lifecycle notifications. The engine treats
// notifications as fire-and-forget: a failed delivery never fails the
// operation that triggered it.
package notify

import (
	"log/slog"
)

// SlogSink implements NotificationSink by writing notifications to the
// structured log. Stands in for a real delivery channel; swap it for an
// email or push implementation without touching the handlers.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a notification sink writing to the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{
		logger: logger.With("component", "notifications"),
	}
}

// Notify records the notification. Never fails.
func (s *SlogSink) Notify(recipientID, notificationType, message string) {
	s.logger.Info("notification sent",
		"recipient_id", recipientID,
		"type", notificationType,
		"message", message,
	)
}
