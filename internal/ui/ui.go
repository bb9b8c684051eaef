package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/config"
	"taskdeck/internal/notify"
	"taskdeck/internal/store"
	"taskdeck/internal/task"
	"taskdeck/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeReminder
	modeDueDate
	modeTagFilter
)

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	soonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	scheduledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	priorityStyles = map[task.Priority]lipgloss.Style{
		task.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		task.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		task.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	}

	colorStyles = map[task.Color]lipgloss.Style{
		task.ColorDefault: lipgloss.NewStyle(),
		task.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		task.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		task.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		task.ColorPurple:  lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
		task.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		task.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		task.ColorTeal:    lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
	}
)

// RemindersFiredMsg is sent by the reminder scanner through Program.Send
// so the list repaints when a reminder fires in the background.
type RemindersFiredMsg struct {
	Fired int
}

// editState walks the edit fields one at a time, like the metadata editor:
// first the title, then the comma-separated tag list.
type editState struct {
	taskID string
	title  string
	tags   string
	index  int
}

// scheduleState collects a reminder (date then time) or a due date (date
// only) for one task.
type scheduleState struct {
	taskID  string
	date    string
	clock   string
	index   int
	dueOnly bool
}

type Model struct {
	store    *store.Store
	cfg      config.Config
	notifier notify.Notifier
	now      func() time.Time

	query  view.Query
	tasks  []task.Task
	cursor int
	mode   mode
	input  textinput.Model
	status string

	confirmDel bool
	pendingDel *task.Task

	edit  *editState
	sched *scheduleState

	tagOptions []string
	tagPick    int
}

// New builds the initial model. A nil clock falls back to time.Now.
func New(st *store.Store, cfg config.Config, notifier notify.Notifier, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 48

	m := Model{
		store:    st,
		cfg:      cfg,
		notifier: notifier,
		now:      now,
		input:    ti,
		mode:     modeList,
		status:   "Press 'a' to add, space to toggle, 'd' to delete.",
		query: view.Query{
			Completion: view.ParseCompletion(cfg.DefaultFilter),
			Sort:       view.ParseSortKey(cfg.DefaultSort),
		},
	}
	m.refresh()
	return m
}

// refresh recomputes the derived list from a fresh store snapshot. Derived
// state is never cached across mutations.
func (m *Model) refresh() {
	m.tasks = view.Apply(m.store.Tasks(), m.query)
	m.cursor = clampCursor(m.cursor, len(m.tasks))
}

func (m Model) selected() (task.Task, bool) {
	if len(m.tasks) == 0 {
		return task.Task{}, false
	}
	return m.tasks[clampCursor(m.cursor, len(m.tasks))], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RemindersFiredMsg:
		m.refresh()
		if msg.Fired == 1 {
			m.status = "1 reminder fired"
		} else {
			m.status = fmt.Sprintf("%d reminders fired", msg.Fired)
		}
		return m, nil
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg.String(), msg)
		case modeEdit:
			return m.updateEditMode(msg.String(), msg)
		case modeReminder, modeDueDate:
			return m.updateScheduleMode(msg.String(), msg)
		case modeTagFilter:
			return m.updateTagFilterMode(msg.String())
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		title, pri, color, tags := parseQuickAdd(m.input.Value())
		if _, ok := m.store.Add(title, pri, color, tags); !ok {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.cursor = 0
		m.refresh()
		m.status = "Added task"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(m.tasks) == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, len(m.tasks))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.tasks))
		}
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.Placeholder = "Title  #tag  !high  @blue"
		m.input.Focus()
		m.status = "Add mode: type a title and press Enter"
	case m.cfg.Keys.Toggle:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.store.Toggle(t.ID)
		m.refresh()
		m.status = "Toggled task"
	case m.cfg.Keys.Delete:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	case m.cfg.Keys.Edit:
		t, ok := m.selected()
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(t)
	case m.cfg.Keys.PriorityUp:
		m.bumpPriority(1)
	case m.cfg.Keys.PriorityDown:
		m.bumpPriority(-1)
	case m.cfg.Keys.CycleColor:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		next := nextColor(t.Color)
		m.store.SetColor(t.ID, next)
		m.refresh()
		m.status = "Color: " + string(next)
	case m.cfg.Keys.CycleFilter:
		m.query.Completion = nextCompletion(m.query.Completion)
		m.cursor = 0
		m.refresh()
		m.status = "Filter: " + m.query.Completion.String()
	case m.cfg.Keys.CycleSort:
		m.query.Sort = nextSortKey(m.query.Sort)
		m.refresh()
		m.status = "Sort: " + m.query.Sort.String()
	case m.cfg.Keys.ColorFilter:
		m.query.Color = nextColorFilter(m.query.Color, view.UsedColors(m.store.Tasks()))
		m.cursor = 0
		m.refresh()
		if m.query.Color == "" {
			m.status = "Color filter off"
		} else {
			m.status = "Color filter: " + string(m.query.Color)
		}
	case m.cfg.Keys.TagFilter:
		return m.startTagFilter()
	case m.cfg.Keys.Reminder:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m.startSchedule(t, false)
	case m.cfg.Keys.DueDate:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m.startSchedule(t, true)
	}
	return m, nil
}

func (m *Model) bumpPriority(dir int) {
	t, ok := m.selected()
	if !ok {
		return
	}
	order := []task.Priority{task.PriorityLow, task.PriorityMedium, task.PriorityHigh}
	for i, p := range order {
		if p == t.Priority {
			next := clampCursor(i+dir, len(order))
			m.store.SetPriority(t.ID, order[next])
			break
		}
	}
	m.refresh()
	m.status = "Priority updated"
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		m.store.Delete(m.pendingDel.ID)
		m.confirmDel = false
		m.pendingDel = nil
		m.refresh()
		m.status = "Deleted task"
		return m, nil
	default:
		return m, nil
	}
}

// --- edit (title + tags) ---------------------------------------------------

func (m Model) startEdit(t task.Task) (tea.Model, tea.Cmd) {
	m.edit = &editState{
		taskID: t.ID,
		title:  t.Title,
		tags:   strings.Join(t.Tags, ", "),
	}
	m.mode = modeEdit
	m.input.SetValue(m.edit.title)
	m.input.Placeholder = editFields()[0]
	m.input.Focus()
	m.status = "Edit: Enter to advance, Esc to cancel"
	return m, nil
}

func editFields() []string {
	return []string{"title", "tags (comma separated)"}
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.edit = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		if m.edit == nil {
			return m, nil
		}
		if m.edit.index == 0 {
			m.edit.title = m.input.Value()
			m.edit.index = 1
			m.input.SetValue(m.edit.tags)
			m.input.Placeholder = editFields()[1]
			m.showEditSuggestions()
			return m, nil
		}
		m.edit.tags = m.input.Value()
		if !m.store.EditTitleAndTags(m.edit.taskID, m.edit.title, splitTags(m.edit.tags)) {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.edit = nil
		m.mode = modeList
		m.input.Blur()
		m.refresh()
		m.status = "Saved"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.edit != nil && m.edit.index == 1 {
			m.showEditSuggestions()
		}
		return m, cmd
	}
}

// showEditSuggestions surfaces tags already in use that match the last
// fragment being typed.
func (m *Model) showEditSuggestions() {
	fragments := splitTags(m.input.Value())
	if len(fragments) == 0 {
		m.status = "Edit tags"
		return
	}
	last := fragments[len(fragments)-1]
	suggestions := view.TagSuggestions(m.store.Tasks(), last, fragments[:len(fragments)-1])
	if len(suggestions) == 0 {
		m.status = "Edit tags"
		return
	}
	m.status = "Known tags: " + strings.Join(suggestions, ", ")
}

// --- reminder / due date ---------------------------------------------------

func (m Model) startSchedule(t task.Task, dueOnly bool) (tea.Model, tea.Cmd) {
	st := &scheduleState{taskID: t.ID, dueOnly: dueOnly}
	if dueOnly {
		if t.DueDate != nil {
			st.date = t.DueDate.Format("2006-01-02")
		} else {
			st.date = m.now().Format("2006-01-02")
		}
		m.mode = modeDueDate
		m.status = "Due date: Enter to save, empty date clears, Esc cancels"
	} else {
		if t.Reminder != nil {
			st.date = t.Reminder.Format("2006-01-02")
			st.clock = t.Reminder.Format("15:04")
		} else {
			st.date = m.now().Format("2006-01-02")
			st.clock = "09:00"
		}
		m.mode = modeReminder
		m.status = "Reminder: Enter to advance, empty date clears, Esc cancels"
	}
	m.sched = st
	m.input.SetValue(st.date)
	m.input.Placeholder = "date (YYYY-MM-DD)"
	m.input.Focus()
	return m, nil
}

func (m Model) updateScheduleMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.sched = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		if m.sched == nil {
			return m, nil
		}
		if m.sched.index == 0 {
			m.sched.date = strings.TrimSpace(m.input.Value())
			if m.sched.date == "" {
				return m.clearSchedule()
			}
			if m.sched.dueOnly {
				return m.saveSchedule()
			}
			m.sched.index = 1
			m.input.SetValue(m.sched.clock)
			m.input.Placeholder = "time (HH:MM)"
			return m, nil
		}
		m.sched.clock = strings.TrimSpace(m.input.Value())
		return m.saveSchedule()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) clearSchedule() (tea.Model, tea.Cmd) {
	if m.sched.dueOnly {
		m.store.ClearDueDate(m.sched.taskID)
		m.status = "Due date cleared"
	} else {
		m.store.ClearReminder(m.sched.taskID)
		m.status = "Reminder cleared"
	}
	m.sched = nil
	m.mode = modeList
	m.input.Blur()
	m.refresh()
	return m, nil
}

func (m Model) saveSchedule() (tea.Model, tea.Cmd) {
	date, err := time.ParseInLocation("2006-01-02", m.sched.date, m.now().Location())
	if err != nil {
		m.status = "Invalid date, use YYYY-MM-DD"
		m.sched.index = 0
		m.input.SetValue(m.sched.date)
		m.input.Placeholder = "date (YYYY-MM-DD)"
		return m, nil
	}
	if m.sched.dueOnly {
		m.store.SetDueDate(m.sched.taskID, date)
		m.status = "Due date saved"
	} else {
		if !m.store.SetReminder(m.sched.taskID, date, m.sched.clock) {
			m.status = "Invalid time, use HH:MM"
			return m, nil
		}
		m.status = "Reminder saved"
	}
	m.sched = nil
	m.mode = modeList
	m.input.Blur()
	m.refresh()
	return m, nil
}

// --- tag filter picker -----------------------------------------------------

func (m Model) startTagFilter() (tea.Model, tea.Cmd) {
	tags := view.AllTags(m.store.Tasks())
	if len(tags) == 0 {
		m.status = "No tags in use"
		return m, nil
	}
	m.tagOptions = append([]string{""}, tags...)
	m.tagPick = 0
	for i, tag := range m.tagOptions {
		if tag == m.query.Tag {
			m.tagPick = i
			break
		}
	}
	m.mode = modeTagFilter
	m.status = "Pick a tag: Enter to select, Esc to cancel"
	return m, nil
}

func (m Model) updateTagFilterMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeList
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Down, "down":
		m.tagPick = clampCursor(m.tagPick+1, len(m.tagOptions))
		return m, nil
	case m.cfg.Keys.Up, "up":
		m.tagPick = clampCursor(m.tagPick-1, len(m.tagOptions))
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.query.Tag = m.tagOptions[m.tagPick]
		m.mode = modeList
		m.cursor = 0
		m.refresh()
		if m.query.Tag == "" {
			m.status = "Tag filter off"
		} else {
			m.status = "Tag filter: #" + m.query.Tag
		}
		return m, nil
	default:
		return m, nil
	}
}

// --- rendering -------------------------------------------------------------

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("Taskdeck")
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")

	if m.mode == modeTagFilter {
		b.WriteString(m.renderTagPicker())
	} else if len(m.tasks) == 0 {
		b.WriteString(dimStyle.Render("No tasks to show. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderSelection())
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("Add Task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeEdit:
		b.WriteString("Edit " + editFields()[m.edit.index] + ": ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeReminder, modeDueDate:
		b.WriteString(m.input.Placeholder + ": ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderStats() string {
	snapshot := m.store.Tasks()
	st := view.Count(snapshot, m.now())
	parts := []string{fmt.Sprintf("%d of %d completed", st.Completed, st.Total)}
	if st.WithReminder > 0 {
		parts = append(parts, fmt.Sprintf("%d with reminders", st.WithReminder))
	}
	if st.WithDueDate > 0 {
		due := fmt.Sprintf("%d with due dates", st.WithDueDate)
		if st.Overdue > 0 {
			due += overdueStyle.Render(fmt.Sprintf(" (%d overdue)", st.Overdue))
		}
		parts = append(parts, due)
	}
	if tags := view.AllTags(snapshot); len(tags) > 0 {
		parts = append(parts, fmt.Sprintf("%d tags in use", len(tags)))
	}
	bell := "notifications:off"
	if m.notifier.Enabled() {
		bell = "notifications:on"
	}
	line := dimStyle.Render(strings.Join(parts, " • "))
	line += "\n" + dimStyle.Render(fmt.Sprintf("filter:%s  sort:%s%s%s  %s",
		m.query.Completion, m.query.Sort, tagFilterLabel(m.query.Tag), colorFilterLabel(m.query.Color), bell))
	return line
}

func tagFilterLabel(tag string) string {
	if tag == "" {
		return ""
	}
	return "  tag:#" + tag
}

func colorFilterLabel(c task.Color) string {
	if c == "" {
		return ""
	}
	return "  color:" + string(c)
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	today := m.now()
	for i, t := range m.tasks {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}

		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}

		title := colorStyles[t.Color].Render(t.Title)
		if t.Completed {
			title = completedStyle.Render(t.Title)
		}

		row := fmt.Sprintf("%s %s %s %s", cursor, checkbox, priorityGlyph(t.Priority), title)
		if len(t.Tags) > 0 {
			row += " " + tagStyle.Render("#"+strings.Join(t.Tags, " #"))
		}
		if t.DueDate != nil {
			status := view.DueDateStatus(*t.DueDate, today)
			row += " " + statusStyle(status).Render(
				fmt.Sprintf("due:%s (%s)", t.DueDate.Format("2006-01-02"), status))
		}
		if t.Reminder != nil {
			status := view.ReminderStatus(*t.Reminder, today)
			row += " " + statusStyle(status).Render(
				fmt.Sprintf("rem:%s (%s)", t.Reminder.Format("2006-01-02 15:04"), status))
		}

		if m.cursor == i && m.mode == modeList {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// renderSelection is the detail panel for the task under the cursor.
func (m Model) renderSelection() string {
	t, ok := m.selected()
	if !ok {
		return dimStyle.Render("No task selected")
	}
	parts := []string{
		"Priority: " + string(t.Priority),
		"Color: " + string(t.Color),
	}
	if len(t.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(t.Tags, ", "))
	}
	if t.DueDate != nil {
		parts = append(parts, "Due: "+t.DueDate.Format("2006-01-02"))
	}
	if t.Reminder != nil {
		parts = append(parts, "Reminder: "+t.Reminder.Format("2006-01-02 15:04"))
	}
	parts = append(parts, "Created: "+t.CreatedAt.Format("2006-01-02 15:04"))
	return dimStyle.Render(strings.Join(parts, " • "))
}

func (m Model) renderTagPicker() string {
	snapshot := m.store.Tasks()
	var b strings.Builder
	for i, tag := range m.tagOptions {
		cursor := " "
		if i == m.tagPick {
			cursor = ">"
		}
		label := "(all)"
		if tag != "" {
			label = fmt.Sprintf("#%s (%d)", tag, view.CountByTag(snapshot, tag))
		}
		row := fmt.Sprintf("%s %s", cursor, label)
		if i == m.tagPick {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s edit • %s delete • %s/%s priority • %s color • %s filter • %s sort • %s tag • %s color filter • %s reminder • %s due • %s quit",
		k.Up, k.Down, k.Add, keyLabel(k.Toggle), k.Edit, k.Delete,
		k.PriorityUp, k.PriorityDown, k.CycleColor, k.CycleFilter, k.CycleSort,
		k.TagFilter, k.ColorFilter, k.Reminder, k.DueDate, k.Quit)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func priorityGlyph(p task.Priority) string {
	style := priorityStyles[p]
	switch p {
	case task.PriorityHigh:
		return style.Render("↑")
	case task.PriorityLow:
		return style.Render("↓")
	default:
		return style.Render("·")
	}
}

func statusStyle(s view.Status) lipgloss.Style {
	switch s {
	case view.StatusOverdue:
		return overdueStyle
	case view.StatusDueToday, view.StatusDueSoon, view.StatusSoon:
		return soonStyle
	default:
		return scheduledStyle
	}
}

// parseQuickAdd splits an add-mode line into title, priority, color, and
// tags: "#x" is a tag, "!high" a priority, "@blue" a color. Unknown
// priority or color tokens fall back to the defaults.
func parseQuickAdd(raw string) (title string, pri task.Priority, color task.Color, tags []string) {
	pri = task.PriorityMedium
	color = task.ColorDefault
	var words []string
	for _, f := range strings.Fields(raw) {
		switch {
		case strings.HasPrefix(f, "#") && len(f) > 1:
			tags = append(tags, f[1:])
		case strings.HasPrefix(f, "!") && len(f) > 1:
			pri = task.ParsePriority(f[1:])
		case strings.HasPrefix(f, "@") && len(f) > 1:
			color = task.ParseColor(f[1:])
		default:
			words = append(words, f)
		}
	}
	return strings.Join(words, " "), pri, color, tags
}

func splitTags(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func nextCompletion(c view.Completion) view.Completion {
	switch c {
	case view.All:
		return view.Active
	case view.Active:
		return view.Completed
	default:
		return view.All
	}
}

func nextSortKey(k view.SortKey) view.SortKey {
	order := []view.SortKey{
		view.SortDate, view.SortPriority, view.SortAlphabetical,
		view.SortReminder, view.SortDueDate, view.SortColor,
	}
	for i, key := range order {
		if key == k {
			return order[(i+1)%len(order)]
		}
	}
	return view.SortDate
}

func nextColor(c task.Color) task.Color {
	palette := task.Colors()
	for i, known := range palette {
		if known == c {
			return palette[(i+1)%len(palette)]
		}
	}
	return task.ColorDefault
}

// nextColorFilter cycles off -> each color currently in use -> off.
func nextColorFilter(current task.Color, used []task.Color) task.Color {
	if len(used) == 0 {
		return ""
	}
	if current == "" {
		return used[0]
	}
	for i, c := range used {
		if c == current {
			if i+1 < len(used) {
				return used[i+1]
			}
			return ""
		}
	}
	return ""
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
