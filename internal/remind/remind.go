// Package remind runs the periodic reminder scan: every tick it fires one
// notification per due reminder and clears it, so a reminder never fires
// twice.
package remind

import (
	"fmt"
	"log/slog"
	"time"

	"taskdeck/internal/notify"
	"taskdeck/internal/store"
)

// DefaultInterval matches the original once-a-minute check.
const DefaultInterval = 60 * time.Second

// Scanner polls the store on a fixed interval, independent of user
// activity. It is the only component with its own scheduling, and it must
// be stopped before the process exits.
type Scanner struct {
	store    *store.Store
	notifier notify.Notifier
	interval time.Duration
	now      func() time.Time

	// OnScan, when set, is called after every scan with the number of
	// reminders fired. The TUI uses it to repaint without a keypress.
	OnScan func(fired int)

	quit chan struct{}
	done chan struct{}
}

// NewScanner wires a scanner. A nil clock falls back to time.Now; a
// non-positive interval falls back to DefaultInterval.
func NewScanner(s *store.Store, n notify.Notifier, interval time.Duration, now func() time.Time) *Scanner {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scanner{
		store:    s,
		notifier: n,
		interval: interval,
		now:      now,
	}
}

// Start launches the tick loop. Calling Start on a running scanner is a
// no-op.
func (sc *Scanner) Start() {
	if sc.quit != nil {
		return
	}
	sc.quit = make(chan struct{})
	sc.done = make(chan struct{})
	go sc.loop()
}

// Stop cancels the tick loop and waits for it to drain, so no scan can
// touch the store after Stop returns.
func (sc *Scanner) Stop() {
	if sc.quit == nil {
		return
	}
	close(sc.quit)
	<-sc.done
	sc.quit = nil
	sc.done = nil
}

func (sc *Scanner) loop() {
	defer close(sc.done)
	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fired := sc.Scan()
			if sc.OnScan != nil {
				sc.OnScan(fired)
			}
		case <-sc.quit:
			return
		}
	}
}

// Scan performs one tick: when the notification capability is enabled, it
// fires and clears every due reminder and returns how many fired. When the
// capability is unavailable the scan does nothing, leaving due reminders
// armed until the user clears them or notifications come back.
func (sc *Scanner) Scan() int {
	if !sc.notifier.Enabled() {
		return 0
	}
	fired := sc.store.FireDueReminders(sc.now())
	for _, t := range fired {
		title := fmt.Sprintf("Reminder: %s", t.Title)
		body := fmt.Sprintf("Task %q is due now!", t.Title)
		if err := sc.notifier.Notify(title, body); err != nil {
			slog.Warn("reminder notification failed", "task", t.ID, "error", err)
		}
	}
	return len(fired)
}
