package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskdeck/internal/task"
	"taskdeck/internal/view"
)

func TestParseQuickAdd(t *testing.T) {
	title, pri, color, tags := parseQuickAdd("Buy milk #errands #dairy !high @blue")
	assert.Equal(t, "Buy milk", title)
	assert.Equal(t, task.PriorityHigh, pri)
	assert.Equal(t, task.ColorBlue, color)
	assert.Equal(t, []string{"errands", "dairy"}, tags)
}

func TestParseQuickAdd_Defaults(t *testing.T) {
	title, pri, color, tags := parseQuickAdd("just a title")
	assert.Equal(t, "just a title", title)
	assert.Equal(t, task.PriorityMedium, pri)
	assert.Equal(t, task.ColorDefault, color)
	assert.Empty(t, tags)
}

func TestParseQuickAdd_UnknownTokensFallBack(t *testing.T) {
	title, pri, color, _ := parseQuickAdd("walk dog !urgent @chartreuse")
	assert.Equal(t, "walk dog", title)
	assert.Equal(t, task.PriorityMedium, pri)
	assert.Equal(t, task.ColorDefault, color)
}

func TestParseQuickAdd_BarePunctuationStaysInTitle(t *testing.T) {
	title, _, _, tags := parseQuickAdd("email # ! @ someone")
	assert.Equal(t, "email # ! @ someone", title)
	assert.Empty(t, tags)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, splitTags(" a , b c ,, d "))
	assert.Nil(t, splitTags("  ,  "))
	assert.Nil(t, splitTags(""))
}

func TestNextCompletion_Cycles(t *testing.T) {
	assert.Equal(t, view.Active, nextCompletion(view.All))
	assert.Equal(t, view.Completed, nextCompletion(view.Active))
	assert.Equal(t, view.All, nextCompletion(view.Completed))
}

func TestNextSortKey_CyclesThroughAll(t *testing.T) {
	k := view.SortDate
	seen := map[view.SortKey]struct{}{k: {}}
	for i := 0; i < 5; i++ {
		k = nextSortKey(k)
		seen[k] = struct{}{}
	}
	assert.Len(t, seen, 6)
	assert.Equal(t, view.SortDate, nextSortKey(k))
}

func TestNextColor_WrapsPalette(t *testing.T) {
	assert.Equal(t, task.ColorRed, nextColor(task.ColorDefault))
	assert.Equal(t, task.ColorDefault, nextColor(task.ColorTeal))
}

func TestNextColorFilter(t *testing.T) {
	used := []task.Color{task.ColorRed, task.ColorBlue}

	assert.Equal(t, task.ColorRed, nextColorFilter("", used))
	assert.Equal(t, task.ColorBlue, nextColorFilter(task.ColorRed, used))
	assert.Equal(t, task.Color(""), nextColorFilter(task.ColorBlue, used))
	assert.Equal(t, task.Color(""), nextColorFilter("", nil))
	// a filter color no longer in use resets to off
	assert.Equal(t, task.Color(""), nextColorFilter(task.ColorTeal, used))
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(-1, 3))
	assert.Equal(t, 2, clampCursor(5, 3))
	assert.Equal(t, 1, clampCursor(1, 3))
	assert.Equal(t, 0, clampCursor(2, 0))
}
