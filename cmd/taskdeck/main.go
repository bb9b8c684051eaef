// Command taskdeck runs the terminal task manager. main only wires the
// pieces together: config, logging, the in-memory store, the notification
// backend, the reminder scanner, and the Bubble Tea program.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/config"
	"taskdeck/internal/notify"
	"taskdeck/internal/remind"
	"taskdeck/internal/store"
	"taskdeck/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file.
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Printf("failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	}

	st := store.New(nil)

	notifier := notify.ForBackend(cfg.Notifications)
	if granted := notifier.RequestPermission(); !granted {
		slog.Info("notifications unavailable, reminders will stay armed", "backend", notifier.Name())
	}

	interval := time.Duration(cfg.ReminderInterval) * time.Second
	scanner := remind.NewScanner(st, notifier, interval, nil)

	program := tea.NewProgram(ui.New(st, cfg, notifier, nil))
	scanner.OnScan = func(fired int) {
		if fired > 0 {
			program.Send(ui.RemindersFiredMsg{Fired: fired})
		}
	}

	scanner.Start()
	defer scanner.Stop()

	if _, err := program.Run(); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
