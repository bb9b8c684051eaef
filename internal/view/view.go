// Package view derives everything the presentation layer displays from a
// task snapshot: the filtered and sorted list, due/reminder status labels,
// and aggregate counts. Nothing here is cached; every read recomputes from
// the store's current state.
package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"taskdeck/internal/task"
)

type Completion int

const (
	All Completion = iota
	Active
	Completed
)

func (c Completion) String() string {
	switch c {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "all"
	}
}

// ParseCompletion maps a string to a completion filter, defaulting to All.
func ParseCompletion(v string) Completion {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "active":
		return Active
	case "completed":
		return Completed
	default:
		return All
	}
}

type SortKey int

const (
	SortDate SortKey = iota
	SortPriority
	SortAlphabetical
	SortReminder
	SortDueDate
	SortColor
)

func (k SortKey) String() string {
	switch k {
	case SortPriority:
		return "priority"
	case SortAlphabetical:
		return "alphabetical"
	case SortReminder:
		return "reminder"
	case SortDueDate:
		return "duedate"
	case SortColor:
		return "color"
	default:
		return "date"
	}
}

// ParseSortKey maps a string to a sort key, defaulting to SortDate.
func ParseSortKey(v string) SortKey {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "priority":
		return SortPriority
	case "alphabetical", "alpha":
		return SortAlphabetical
	case "reminder":
		return SortReminder
	case "duedate", "due":
		return SortDueDate
	case "color":
		return SortColor
	default:
		return SortDate
	}
}

// Query is the transient view selection: which tasks to show and in what
// order. The zero value shows everything, newest first.
type Query struct {
	Completion Completion
	Tag        string     // exact normalized tag; empty means no tag filter
	Color      task.Color // empty means no color filter
	Sort       SortKey
}

// Matches reports whether a task passes every active filter.
func (q Query) Matches(t task.Task) bool {
	switch q.Completion {
	case Active:
		if t.Completed {
			return false
		}
	case Completed:
		if !t.Completed {
			return false
		}
	}
	if q.Tag != "" && !t.HasTag(q.Tag) {
		return false
	}
	if q.Color != "" && t.Color != q.Color {
		return false
	}
	return true
}

// collator compares titles the way a locale-aware UI would, so "apple"
// sorts next to "Apricot" rather than after every uppercase title.
var collator = collate.New(language.Und, collate.Loose)

// Apply filters and sorts a snapshot. The input slice is not modified.
func Apply(tasks []task.Task, q Query) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if q.Matches(t) {
			out = append(out, t)
		}
	}
	sortTasks(out, q.Sort)
	return out
}

// sortTasks orders the slice by the given key. Every key is applied as a
// stable sort over the newest-first base order, which is what breaks ties
// by creation time.
func sortTasks(ts []task.Task, key SortKey) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].CreatedAt.After(ts[j].CreatedAt)
	})
	switch key {
	case SortDate:
		// base order is the date order
	case SortPriority:
		sort.SliceStable(ts, func(i, j int) bool {
			return ts[i].Priority.Rank() > ts[j].Priority.Rank()
		})
	case SortAlphabetical:
		sort.SliceStable(ts, func(i, j int) bool {
			return collator.CompareString(ts[i].Title, ts[j].Title) < 0
		})
	case SortColor:
		sort.SliceStable(ts, func(i, j int) bool {
			return ts[i].Color < ts[j].Color
		})
	case SortReminder:
		sort.SliceStable(ts, func(i, j int) bool {
			return timePtrLess(ts[i].Reminder, ts[j].Reminder)
		})
	case SortDueDate:
		sort.SliceStable(ts, func(i, j int) bool {
			return timePtrLess(ts[i].DueDate, ts[j].DueDate)
		})
	}
}

// timePtrLess puts set values before unset ones and orders set values
// ascending. Two unset values compare equal, which leaves the date
// fallback order intact under a stable sort.
func timePtrLess(a, b *time.Time) bool {
	switch {
	case a != nil && b == nil:
		return true
	case a == nil:
		return false
	case b == nil:
		return false
	default:
		return a.Before(*b)
	}
}

type Status int

const (
	StatusOverdue Status = iota
	StatusDueToday
	StatusDueSoon
	StatusSoon
	StatusScheduled
)

func (s Status) String() string {
	switch s {
	case StatusOverdue:
		return "Overdue"
	case StatusDueToday:
		return "Due Today"
	case StatusDueSoon:
		return "Due Soon"
	case StatusSoon:
		return "Soon"
	default:
		return "Scheduled"
	}
}

// DueDateStatus classifies a deadline against midnight of today. Time of
// day on either side is ignored.
func DueDateStatus(due, today time.Time) Status {
	d := task.Midnight(due)
	td := task.Midnight(today)
	switch {
	case d.Before(td):
		return StatusOverdue
	case d.Equal(td):
		return StatusDueToday
	case d.Sub(td) <= 7*24*time.Hour:
		return StatusDueSoon
	default:
		return StatusScheduled
	}
}

// ReminderStatus classifies an armed reminder against the current instant.
func ReminderStatus(reminder, now time.Time) Status {
	switch {
	case !reminder.After(now):
		return StatusOverdue
	case reminder.Sub(now) <= 24*time.Hour:
		return StatusSoon
	default:
		return StatusScheduled
	}
}

// Stats are the aggregate counts shown in the header and footer. Reminder,
// due-date, and overdue counts exclude completed tasks.
type Stats struct {
	Total        int
	Completed    int
	Remaining    int
	WithReminder int
	WithDueDate  int
	Overdue      int
}

func Count(tasks []task.Task, today time.Time) Stats {
	var st Stats
	st.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
			continue
		}
		st.Remaining++
		if t.Reminder != nil {
			st.WithReminder++
		}
		if t.DueDate != nil {
			st.WithDueDate++
			if DueDateStatus(*t.DueDate, today) == StatusOverdue {
				st.Overdue++
			}
		}
	}
	return st
}

// AllTags returns every distinct tag in use, sorted.
func AllTags(tasks []task.Task) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range tasks {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

// UsedColors returns every distinct color in use, in first-use order over
// the given snapshot.
func UsedColors(tasks []task.Task) []task.Color {
	seen := map[task.Color]struct{}{}
	var out []task.Color
	for _, t := range tasks {
		if _, ok := seen[t.Color]; ok {
			continue
		}
		seen[t.Color] = struct{}{}
		out = append(out, t.Color)
	}
	return out
}

// CountByTag reports how many tasks carry the tag.
func CountByTag(tasks []task.Task, tag string) int {
	n := 0
	for _, t := range tasks {
		if t.HasTag(tag) {
			n++
		}
	}
	return n
}

// CountByColor reports how many tasks use the color.
func CountByColor(tasks []task.Task, color task.Color) int {
	n := 0
	for _, t := range tasks {
		if t.Color == color {
			n++
		}
	}
	return n
}

// TagSuggestions returns tags in use that contain the input as a substring
// and are not already among current. An empty input suggests nothing.
func TagSuggestions(tasks []task.Task, input string, current []string) []string {
	needle := task.NormalizeTag(input)
	if needle == "" {
		return nil
	}
	have := map[string]struct{}{}
	for _, tag := range current {
		have[task.NormalizeTag(tag)] = struct{}{}
	}
	var out []string
	for _, tag := range AllTags(tasks) {
		if _, ok := have[tag]; ok {
			continue
		}
		if strings.Contains(tag, needle) {
			out = append(out, tag)
		}
	}
	return out
}
