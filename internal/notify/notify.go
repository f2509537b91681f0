// Package notify delivers fire-and-forget desktop notifications.
package notify

import "github.com/gen2brain/beeep"

// Notifier sends a (title, body) pair to the user. Delivery is best-effort;
// callers treat failure as non-fatal.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends notifications through the OS notification center.
type Desktop struct{}

// NewDesktop returns the OS-backed notifier.
func NewDesktop() *Desktop {
	beeep.AppName = "ticklog"
	return &Desktop{}
}

func (*Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Noop swallows all notifications. Used when the notification backend is
// unavailable and in tests.
type Noop struct{}

func (Noop) Notify(title, body string) error { return nil }
