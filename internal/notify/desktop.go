package notify

import "github.com/gen2brain/beeep"

// Desktop emits notifications through the platform notification service
// (notify-send/dbus on Linux, toast on Windows, Notification Center on
// macOS). Desktop platforms have no runtime permission prompt, so
// RequestPermission probes the service with a silent no-op send once and
// remembers the outcome.
type Desktop struct {
	granted bool
	probed  bool
}

// NewDesktop creates a desktop notifier. It starts disabled until
// RequestPermission is called.
func NewDesktop() *Desktop {
	return &Desktop{}
}

func (d *Desktop) Name() string { return "desktop" }

func (d *Desktop) Enabled() bool { return d.granted }

func (d *Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

func (d *Desktop) RequestPermission() bool {
	if d.probed {
		return d.granted
	}
	d.probed = true
	// beeep exposes no availability check; treat a failed send as denial.
	d.granted = beeep.Notify("taskdeck", "Reminders enabled", "") == nil
	return d.granted
}
