package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/store"
	"taskdeck/internal/task"
)

var baseTime = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

// tickingClock returns a clock that advances one minute per call, so
// createdAt values are strictly ordered.
func tickingClock() func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return baseTime.Add(time.Duration(n) * time.Minute)
	}
}

func addThree(t *testing.T, s *store.Store) (a, b, c task.Task) {
	t.Helper()
	a, ok := s.Add("first", task.PriorityMedium, task.ColorDefault, nil)
	require.True(t, ok)
	b, ok = s.Add("second", task.PriorityMedium, task.ColorDefault, nil)
	require.True(t, ok)
	c, ok = s.Add("third", task.PriorityMedium, task.ColorDefault, nil)
	require.True(t, ok)
	return a, b, c
}

func TestAdd_PrependsNewestFirst(t *testing.T) {
	s := store.New(tickingClock())
	a, b, c := addThree(t, s)

	got := s.Tasks()
	require.Len(t, got, 3)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.Equal(t, a.ID, got[2].ID)
}

func TestAdd_IDsAreUnique(t *testing.T) {
	s := store.New(tickingClock())
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		tk, ok := s.Add("task", task.PriorityMedium, task.ColorDefault, nil)
		require.True(t, ok)
		_, dup := seen[tk.ID]
		require.False(t, dup, "duplicate id %s", tk.ID)
		seen[tk.ID] = struct{}{}
	}
}

func TestAdd_RejectsWhitespaceTitle(t *testing.T) {
	s := store.New(tickingClock())
	_, ok := s.Add("   ", task.PriorityHigh, task.ColorRed, []string{"x"})
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestAdd_TrimsTitleAndNormalizesTags(t *testing.T) {
	s := store.New(tickingClock())
	tk, ok := s.Add("  Buy milk  ", task.PriorityHigh, task.ColorBlue, []string{" Dairy ", "dairy", "Food"})
	require.True(t, ok)
	assert.Equal(t, "Buy milk", tk.Title)
	assert.Equal(t, []string{"dairy", "food"}, tk.Tags)
}

func TestToggle_FlipsAndUnknownIDNoops(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, nil)

	assert.True(t, s.Toggle(tk.ID))
	got, ok := s.Get(tk.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)

	assert.True(t, s.Toggle(tk.ID))
	got, _ = s.Get(tk.ID)
	assert.False(t, got.Completed)

	assert.False(t, s.Toggle("no-such-id"))
}

func TestDelete_RemovesAndUnknownIDNoops(t *testing.T) {
	s := store.New(tickingClock())
	a, b, _ := addThree(t, s)

	assert.True(t, s.Delete(b.ID))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(b.ID)
	assert.False(t, ok)
	_, ok = s.Get(a.ID)
	assert.True(t, ok)

	assert.False(t, s.Delete(b.ID))
	assert.Equal(t, 2, s.Len())
}

func TestEditTitleAndTags(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("old title", task.PriorityMedium, task.ColorDefault, []string{"old"})

	require.True(t, s.EditTitleAndTags(tk.ID, "  new title ", []string{"New", "new", " b "}))
	got, _ := s.Get(tk.ID)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, []string{"new", "b"}, got.Tags)
}

func TestEditTitleAndTags_EmptyTitleAbandonsEdit(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("keep me", task.PriorityMedium, task.ColorDefault, []string{"keep"})

	assert.False(t, s.EditTitleAndTags(tk.ID, "   ", []string{"dropped"}))
	got, _ := s.Get(tk.ID)
	assert.Equal(t, "keep me", got.Title)
	assert.Equal(t, []string{"keep"}, got.Tags)
}

func TestAddTag_IsIdempotent(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, nil)

	assert.True(t, s.AddTag(tk.ID, " Work "))
	assert.False(t, s.AddTag(tk.ID, "work"))
	assert.False(t, s.AddTag(tk.ID, "WORK"))

	got, _ := s.Get(tk.ID)
	assert.Equal(t, []string{"work"}, got.Tags)
}

func TestAddTag_EmptyAndUnknownID(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, nil)

	assert.False(t, s.AddTag(tk.ID, "   "))
	assert.False(t, s.AddTag("no-such-id", "x"))
}

func TestRemoveTag(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, []string{"x", "y"})

	assert.True(t, s.RemoveTag(tk.ID, " X "))
	got, _ := s.Get(tk.ID)
	assert.Equal(t, []string{"y"}, got.Tags)

	assert.False(t, s.RemoveTag(tk.ID, "absent"))
}

func TestSetPriorityAndColor(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, nil)

	assert.True(t, s.SetPriority(tk.ID, task.PriorityHigh))
	assert.True(t, s.SetColor(tk.ID, task.ColorTeal))
	got, _ := s.Get(tk.ID)
	assert.Equal(t, task.PriorityHigh, got.Priority)
	assert.Equal(t, task.ColorTeal, got.Color)

	assert.False(t, s.SetPriority("nope", task.PriorityLow))
	assert.False(t, s.SetColor("nope", task.ColorRed))
}

func TestSetReminder_ComposesInstant(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, nil)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	require.True(t, s.SetReminder(tk.ID, date, "09:30"))
	got, _ := s.Get(tk.ID)
	require.NotNil(t, got.Reminder)
	assert.Equal(t, time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC), *got.Reminder)
}

func TestSetReminder_RejectsMalformedClock(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, nil)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, clock := range []string{"", "25:00", "12:75", "noon"} {
		assert.False(t, s.SetReminder(tk.ID, date, clock), "clock %q", clock)
	}
	got, _ := s.Get(tk.ID)
	assert.Nil(t, got.Reminder)
}

func TestClearReminderAndDueDate(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, nil)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	require.True(t, s.SetReminder(tk.ID, date, "08:00"))
	require.True(t, s.SetDueDate(tk.ID, date))

	assert.True(t, s.ClearReminder(tk.ID))
	assert.False(t, s.ClearReminder(tk.ID), "already clear")
	assert.True(t, s.ClearDueDate(tk.ID))
	assert.False(t, s.ClearDueDate(tk.ID), "already clear")

	got, _ := s.Get(tk.ID)
	assert.Nil(t, got.Reminder)
	assert.Nil(t, got.DueDate)
}

func TestFireDueReminders_OneShot(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("call alice", task.PriorityMedium, task.ColorDefault, nil)
	date := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	require.True(t, s.SetReminder(tk.ID, date, "10:00"))

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	fired := s.FireDueReminders(now)
	require.Len(t, fired, 1)
	assert.Equal(t, tk.ID, fired[0].ID)

	got, _ := s.Get(tk.ID)
	assert.Nil(t, got.Reminder, "fired reminder must be cleared")

	assert.Empty(t, s.FireDueReminders(now), "second scan fires nothing")
}

func TestFireDueReminders_SkipsCompletedAndFuture(t *testing.T) {
	s := store.New(tickingClock())
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	done, _ := s.Add("done", task.PriorityMedium, task.ColorDefault, nil)
	require.True(t, s.SetReminder(done.ID, now.AddDate(0, 0, -1), "08:00"))
	require.True(t, s.Toggle(done.ID))

	future, _ := s.Add("future", task.PriorityMedium, task.ColorDefault, nil)
	require.True(t, s.SetReminder(future.ID, now.AddDate(0, 0, 1), "08:00"))

	assert.Empty(t, s.FireDueReminders(now))

	got, _ := s.Get(done.ID)
	assert.NotNil(t, got.Reminder, "completed task keeps its reminder")
	got, _ = s.Get(future.ID)
	assert.NotNil(t, got.Reminder)
}

func TestFireDueReminders_AtExactInstant(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, nil)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	require.True(t, s.SetReminder(tk.ID, date, "12:00"))

	// reminder == now counts as due
	fired := s.FireDueReminders(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))
	assert.Len(t, fired, 1)
}

func TestTasks_SnapshotIsIsolated(t *testing.T) {
	s := store.New(tickingClock())
	tk, _ := s.Add("a", task.PriorityMedium, task.ColorDefault, []string{"x"})

	snap := s.Tasks()
	snap[0].Title = "mutated"
	snap[0].Tags[0] = "mutated"

	got, _ := s.Get(tk.ID)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, []string{"x"}, got.Tags)
}
