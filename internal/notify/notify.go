// Package notify carries the transient user-facing notifications that every
// blog store mutation emits, on success and failure paths alike.
package notify

import (
	"log/slog"
	"time"
)

// Variant signals how a notification should be presented.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient, dismissable message describing the outcome of
// an operation.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	At          time.Time `json:"at"`
}

// Notifier receives notifications. Implementations must not block the caller.
type Notifier interface {
	Notify(n Notification)
}

// Logger is a Notifier that writes notifications to a slog.Logger.
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a slog-backed notifier.
func NewLogger(log *slog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Notify(n Notification) {
	if n.Variant == VariantDestructive {
		l.log.Warn("notification", "title", n.Title, "description", n.Description)
		return
	}
	l.log.Info("notification", "title", n.Title, "description", n.Description)
}

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, nt := range m {
		nt.Notify(n)
	}
}
