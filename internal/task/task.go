package task

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority maps a string to a priority, defaulting to medium.
func ParsePriority(v string) Priority {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Rank orders priorities for sorting: high > medium > low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

type Color string

const (
	ColorDefault Color = "default"
	ColorRed     Color = "red"
	ColorBlue    Color = "blue"
	ColorYellow  Color = "yellow"
	ColorPurple  Color = "purple"
	ColorOrange  Color = "orange"
	ColorPink    Color = "pink"
	ColorTeal    Color = "teal"
)

// Colors returns the fixed color palette in its canonical order.
func Colors() []Color {
	return []Color{
		ColorDefault, ColorRed, ColorBlue, ColorYellow,
		ColorPurple, ColorOrange, ColorPink, ColorTeal,
	}
}

// ParseColor maps a string to a palette color, defaulting to ColorDefault.
func ParseColor(v string) Color {
	c := Color(strings.ToLower(strings.TrimSpace(v)))
	for _, known := range Colors() {
		if c == known {
			return c
		}
	}
	return ColorDefault
}

// Task is a single entry in the list. Instances are owned by the store;
// everything handed out of the store is a copy.
type Task struct {
	ID        string
	Title     string
	Completed bool
	Color     Color
	Tags      []string
	Priority  Priority
	Reminder  *time.Time
	DueDate   *time.Time
	CreatedAt time.Time
}

// New builds a task with a fresh id. The caller is responsible for having
// trimmed and validated the title.
func New(title string, pri Priority, color Color, tags []string, now time.Time) Task {
	return Task{
		ID:        uuid.NewString(),
		Title:     title,
		Color:     color,
		Tags:      NormalizeTags(tags),
		Priority:  pri,
		CreatedAt: now,
	}
}

// HasTag reports whether the task carries the given tag. The argument is
// normalized before comparison.
func (t Task) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy whose tag slice and time pointers do not alias the
// original.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	if t.Reminder != nil {
		r := *t.Reminder
		c.Reminder = &r
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return c
}

// NormalizeTag trims and lowercases a tag. An empty result means the input
// was not a usable tag.
func NormalizeTag(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// NormalizeTags normalizes every entry, drops empties, and deduplicates
// while keeping first-occurrence order.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, raw := range tags {
		tag := NormalizeTag(raw)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ParseClock parses an "HH:MM" wall-clock string. Hours outside 0-23 or
// minutes outside 0-59 are rejected.
func ParseClock(v string) (hour, minute int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// At composes an instant from a calendar date and a wall-clock time,
// keeping the date's location.
func At(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// Midnight strips the time of day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
