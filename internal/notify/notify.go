// Package notify abstracts the desktop notification capability so the
// reminder scanner can treat it as best-effort and tests can substitute a
// recorder.
package notify

// Notifier is the external notification capability. When Enabled reports
// false the scanner leaves due reminders armed instead of firing them.
type Notifier interface {
	// Name returns the backend identifier (e.g. "desktop", "off").
	Name() string

	// Enabled reports whether notifications may be emitted right now.
	Enabled() bool

	// Notify emits one notification. Best-effort; an error is logged by
	// the caller, never surfaced to the user.
	Notify(title, body string) error

	// RequestPermission asks the capability to become available and
	// reports whether it was granted.
	RequestPermission() bool
}

// ForBackend picks an implementation by config value. Anything other than
// "desktop" degrades to the no-op backend.
func ForBackend(backend string) Notifier {
	if backend == "desktop" {
		return NewDesktop()
	}
	return NewNoop()
}
