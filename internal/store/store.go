package store

import (
	"strings"
	"sync"
	"time"

	"taskdeck/internal/task"
)

// Store owns the authoritative task collection. The list lives entirely in
// memory and is ordered newest-first. A single mutex serializes the UI's
// mutations against the reminder scanner's writes, so neither side can
// observe or produce a half-applied update.
//
// Mutators never return errors: invalid input (unknown id, empty title,
// malformed clock string, duplicate tag) leaves the collection unchanged
// and reports false.
type Store struct {
	mu    sync.Mutex
	tasks []task.Task
	now   func() time.Time
}

// New creates an empty store. A nil clock falls back to time.Now.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now}
}

// Add creates a task and prepends it to the collection. Returns the new
// task and true, or a zero task and false when the title trims to empty.
func (s *Store) Add(title string, pri task.Priority, color task.Color, tags []string) (task.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return task.Task{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := task.New(title, pri, color, tags, s.now())
	s.tasks = append([]task.Task{t}, s.tasks...)
	return t.Clone(), true
}

// Toggle flips the completed flag.
func (s *Store) Toggle(id string) bool {
	return s.update(id, func(t *task.Task) bool {
		t.Completed = !t.Completed
		return true
	})
}

// Delete removes the task from the collection. There is no undo.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// EditTitleAndTags replaces the title and the whole tag set. The edit is
// abandoned when the new title trims to empty.
func (s *Store) EditTitleAndTags(id, title string, tags []string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	return s.update(id, func(t *task.Task) bool {
		t.Title = title
		t.Tags = task.NormalizeTags(tags)
		return true
	})
}

// SetPriority replaces the priority.
func (s *Store) SetPriority(id string, pri task.Priority) bool {
	return s.update(id, func(t *task.Task) bool {
		t.Priority = pri
		return true
	})
}

// SetColor replaces the color.
func (s *Store) SetColor(id string, color task.Color) bool {
	return s.update(id, func(t *task.Task) bool {
		t.Color = color
		return true
	})
}

// AddTag appends a normalized tag. Adding a tag the task already carries
// is a no-op, so the call is idempotent.
func (s *Store) AddTag(id, tag string) bool {
	tag = task.NormalizeTag(tag)
	if tag == "" {
		return false
	}
	return s.update(id, func(t *task.Task) bool {
		for _, have := range t.Tags {
			if have == tag {
				return false
			}
		}
		t.Tags = append(t.Tags, tag)
		return true
	})
}

// RemoveTag drops a tag by exact normalized match.
func (s *Store) RemoveTag(id, tag string) bool {
	tag = task.NormalizeTag(tag)
	return s.update(id, func(t *task.Task) bool {
		for i, have := range t.Tags {
			if have == tag {
				t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
				return true
			}
		}
		return false
	})
}

// SetReminder arms a reminder at the given calendar date and "HH:MM"
// wall-clock time, replacing any existing reminder. A malformed clock
// string leaves the task untouched.
func (s *Store) SetReminder(id string, date time.Time, clock string) bool {
	hour, minute, ok := task.ParseClock(clock)
	if !ok {
		return false
	}
	at := task.At(date, hour, minute)
	return s.update(id, func(t *task.Task) bool {
		t.Reminder = &at
		return true
	})
}

// ClearReminder disarms the reminder.
func (s *Store) ClearReminder(id string) bool {
	return s.update(id, func(t *task.Task) bool {
		if t.Reminder == nil {
			return false
		}
		t.Reminder = nil
		return true
	})
}

// SetDueDate sets the deadline, replacing any existing one.
func (s *Store) SetDueDate(id string, date time.Time) bool {
	return s.update(id, func(t *task.Task) bool {
		d := date
		t.DueDate = &d
		return true
	})
}

// ClearDueDate removes the deadline.
func (s *Store) ClearDueDate(id string) bool {
	return s.update(id, func(t *task.Task) bool {
		if t.DueDate == nil {
			return false
		}
		t.DueDate = nil
		return true
	})
}

// FireDueReminders clears every armed reminder on an uncompleted task whose
// time has passed (reminder <= now) and returns copies of the affected
// tasks. Collection and clearing happen under one lock acquisition, so a
// reminder is handed out at most once.
func (s *Store) FireDueReminders(now time.Time) []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var fired []task.Task
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.Reminder == nil || t.Completed || t.Reminder.After(now) {
			continue
		}
		t.Reminder = nil
		fired = append(fired, t.Clone())
	}
	return fired
}

// Tasks returns a deep snapshot of the collection in newest-first order.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get returns a copy of a single task.
func (s *Store) Get(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i].Clone(), true
		}
	}
	return task.Task{}, false
}

// Len reports the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// update applies fn to the task with the given id under the lock. Unknown
// ids are a no-op.
func (s *Store) update(id string, fn func(*task.Task) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return fn(&s.tasks[i])
		}
	}
	return false
}
