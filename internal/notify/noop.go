package notify

import "errors"

// Noop is the degraded capability: never enabled, never grants permission.
// With this backend the scanner still runs but fires nothing, and due
// reminders stay armed.
type Noop struct{}

// NewNoop creates the disabled backend.
func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Name() string { return "off" }

func (n *Noop) Enabled() bool { return false }

func (n *Noop) Notify(title, body string) error {
	return errors.New("notifications are disabled")
}

func (n *Noop) RequestPermission() bool { return false }
