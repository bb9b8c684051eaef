package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultLogFileName    = "taskdeck.log"
)

type Keymap struct {
	Quit         string `toml:"quit"`
	Add          string `toml:"add"`
	Up           string `toml:"up"`
	Down         string `toml:"down"`
	Toggle       string `toml:"toggle"`
	Delete       string `toml:"delete"`
	Confirm      string `toml:"confirm"`
	Cancel       string `toml:"cancel"`
	Edit         string `toml:"edit"`
	PriorityUp   string `toml:"priority_up"`
	PriorityDown string `toml:"priority_down"`
	CycleColor   string `toml:"cycle_color"`
	CycleFilter  string `toml:"cycle_filter"`
	CycleSort    string `toml:"cycle_sort"`
	ColorFilter  string `toml:"color_filter"`
	TagFilter    string `toml:"tag_filter"`
	Reminder     string `toml:"reminder"`
	DueDate      string `toml:"due_date"`
}

type Config struct {
	DefaultFilter    string `toml:"default_filter"`
	DefaultSort      string `toml:"default_sort"`
	Notifications    string `toml:"notifications"`          // "desktop" or "off"
	ReminderInterval int    `toml:"reminder_interval_secs"` // scan cadence
	LogPath          string `toml:"log_path"`
	Keys             Keymap `toml:"keys"`
}

// ResolveConfigPath places the config under the user config dir, falling
// back to the working directory when that cannot be determined.
func ResolveConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, "taskdeck", DefaultConfigFileName)
}

// LoadOrCreate reads the config, writing the defaults first when the file
// does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.ReminderInterval <= 0 {
		cfg.ReminderInterval = 60
	}
	if cfg.Notifications == "" {
		cfg.Notifications = "desktop"
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DefaultFilter:    "all",
		DefaultSort:      "date",
		Notifications:    "desktop",
		ReminderInterval: 60,
		LogPath:          DefaultLogFileName,
		Keys: Keymap{
			Quit:         "q",
			Add:          "a",
			Up:           "k",
			Down:         "j",
			Toggle:       " ",
			Delete:       "d",
			Confirm:      "enter",
			Cancel:       "esc",
			Edit:         "e",
			PriorityUp:   "+",
			PriorityDown: "-",
			CycleColor:   "c",
			CycleFilter:  "f",
			CycleSort:    "s",
			ColorFilter:  "C",
			TagFilter:    "t",
			Reminder:     "r",
			DueDate:      "D",
		},
	}
}
