package checklist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kids-todo/internal/keys"
	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/theme"
)

// weekdayLabels are the single-character Japanese weekday names,
// Sunday first, shown above the weekly strip.
var weekdayLabels = []string{"日", "月", "火", "水", "木", "金", "土"}

// ToggleMsg asks the parent to flip the completion flag of a task.
type ToggleMsg struct{ ID string }

// DeleteMsg asks the parent to delete a task.
type DeleteMsg struct{ ID string }

// MoveMsg asks the parent to reorder a task from one index to another.
type MoveMsg struct{ From, To int }

// AddRequestMsg asks the parent to open the add-task form.
type AddRequestMsg struct{}

// SuggestRequestMsg asks the parent to fetch a challenge suggestion.
type SuggestRequestMsg struct{}

// AcceptSuggestionMsg asks the parent to add the pending suggestion as a
// challenge task.
type AcceptSuggestionMsg struct{ Text string }

// Model is the main checklist view: today's tasks, the weekly completion
// strip, and the suggestion line.
type Model struct {
	tasks      []model.Task
	weekly     []bool
	cursor     int
	suggestion string
	suggestErr string
	fetching   bool
	status     string
	keys       *keys.KeyMap
	width      int
	height     int
}

// New creates a checklist model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:   k,
		weekly: make([]bool, 7),
		width:  width,
		height: height,
	}
}

// SetTasks replaces the displayed task list, clamping the cursor.
func (m *Model) SetTasks(tasks []model.Task) {
	m.tasks = tasks
	if m.cursor >= len(tasks) {
		m.cursor = len(tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetWeekly replaces the 7-day completion vector (Sunday first).
func (m *Model) SetWeekly(weekly []bool) {
	m.weekly = weekly
}

// SetStatus sets the praise/status line.
func (m *Model) SetStatus(status string) {
	m.status = status
}

// SetSuggestion shows a fetched suggestion, clearing any prior error.
func (m *Model) SetSuggestion(text string) {
	m.suggestion = text
	m.suggestErr = ""
	m.fetching = false
}

// SetSuggestionError shows a retryable failure line for the suggestion.
func (m *Model) SetSuggestionError(msg string) {
	m.suggestion = ""
	m.suggestErr = msg
	m.fetching = false
}

// ClearSuggestion removes the pending suggestion.
func (m *Model) ClearSuggestion() {
	m.suggestion = ""
	m.suggestErr = ""
	m.fetching = false
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles key input for the checklist.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.cursor < len(m.tasks) {
			id := m.tasks[m.cursor].ID
			return m, func() tea.Msg { return ToggleMsg{ID: id} }
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if m.cursor < len(m.tasks) {
			id := m.tasks[m.cursor].ID
			return m, func() tea.Msg { return DeleteMsg{ID: id} }
		}

	case key.Matches(keyMsg, m.keys.MoveUp):
		if m.cursor > 0 {
			from, to := m.cursor, m.cursor-1
			m.cursor--
			return m, func() tea.Msg { return MoveMsg{From: from, To: to} }
		}

	case key.Matches(keyMsg, m.keys.MoveDown):
		if m.cursor < len(m.tasks)-1 {
			from, to := m.cursor, m.cursor+1
			m.cursor++
			return m, func() tea.Msg { return MoveMsg{From: from, To: to} }
		}

	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return AddRequestMsg{} }

	case key.Matches(keyMsg, m.keys.Suggest):
		if !m.fetching {
			m.fetching = true
			m.suggestErr = ""
			return m, func() tea.Msg { return SuggestRequestMsg{} }
		}

	case key.Matches(keyMsg, m.keys.Accept):
		if m.suggestion != "" {
			text := m.suggestion
			m.suggestion = ""
			return m, func() tea.Msg { return AcceptSuggestionMsg{Text: text} }
		}
	}

	return m, nil
}

// View renders the checklist.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderWeekly())
	sb.WriteString("\n\n")

	if len(m.tasks) == 0 {
		sb.WriteString(theme.HelpStyle.Render("きょうの「やること」はまだありません"))
		sb.WriteString("\n")
	}

	for i, t := range m.tasks {
		sb.WriteString(m.renderTask(i, t))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderSuggestion())

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(theme.PraiseStyle.Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

// renderWeekly draws the Sunday-first weekly completion strip.
func (m Model) renderWeekly() string {
	var labels, marks []string
	for i, done := range m.weekly {
		labels = append(labels, weekdayLabels[i])
		if done {
			marks = append(marks, theme.WeekDoneStyle.Render("●"))
		} else {
			marks = append(marks, theme.WeekOpenStyle.Render("○"))
		}
	}

	return theme.HelpStyle.Render("こんしゅう  ") +
		strings.Join(labels, " ") + "\n" +
		strings.Repeat(" ", lipgloss.Width("こんしゅう  ")) +
		strings.Join(marks, " ")
}

// renderTask draws a single task line.
func (m Model) renderTask(i int, t model.Task) string {
	check := "☐"
	if t.Completed {
		check = "☑"
	}

	text := t.Text
	if t.Emoji != "" {
		text = t.Emoji + " " + text
	}
	if t.IsChallenge {
		text = text + " " + theme.ChallengeStyle.Render("🌟")
	}
	if t.Completed {
		text = theme.DoneStyle.Render(text)
	}

	line := check + " " + text
	if i == m.cursor {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// renderSuggestion draws the suggestion line in its current state.
func (m Model) renderSuggestion() string {
	switch {
	case m.fetching:
		return theme.HelpStyle.Render("かんがえちゅう...")
	case m.suggestErr != "":
		return theme.ErrorStyle.Render("ていあんがとどきませんでした。もういちど 's' でためしてね")
	case m.suggestion != "":
		return theme.ChallengeStyle.Render("🌟 ていあん: "+m.suggestion) +
			theme.HelpStyle.Render("  (y でついか)")
	default:
		return theme.HelpStyle.Render("s をおすと、きょうのチャレンジをていあんするよ")
	}
}
