package templates

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kids-todo/internal/keys"
	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/theme"
)

// CreateRequestMsg asks the parent to open the new-template form.
type CreateRequestMsg struct{}

// EditRequestMsg asks the parent to open the edit form for a template.
type EditRequestMsg struct{ Template model.TemplateTask }

// DeleteMsg asks the parent to delete a template.
type DeleteMsg struct{ ID string }

// CloseMsg asks the parent to return to the checklist.
type CloseMsg struct{}

// Model is the template manager view. Templates seed each new day's
// checklist; edits here never touch already-materialized days.
type Model struct {
	templates []model.TemplateTask
	cursor    int
	keys      *keys.KeyMap
	width     int
	height    int
}

// New creates a template manager model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetTemplates replaces the displayed template list, clamping the cursor.
func (m *Model) SetTemplates(templates []model.TemplateTask) {
	m.templates = templates
	if m.cursor >= len(templates) {
		m.cursor = len(templates) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles key input for the template manager.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.templates)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return CreateRequestMsg{} }

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.cursor < len(m.templates) {
			tpl := m.templates[m.cursor]
			return m, func() tea.Msg { return EditRequestMsg{Template: tpl} }
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if m.cursor < len(m.templates) {
			id := m.templates[m.cursor].ID
			return m, func() tea.Msg { return DeleteMsg{ID: id} }
		}

	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }
	}

	return m, nil
}

// View renders the template list.
func (m Model) View() string {
	var sb strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sb.WriteString(title.Render("まいにちの「やること」テンプレート"))
	sb.WriteString("\n\n")

	if len(m.templates) == 0 {
		sb.WriteString(theme.HelpStyle.Render("テンプレートはまだありません (a でついか)"))
		sb.WriteString("\n")
	}

	for i, tpl := range m.templates {
		text := tpl.Text
		if tpl.Emoji != "" {
			text = tpl.Emoji + " " + text
		}
		if i == m.cursor {
			sb.WriteString(theme.SelectedItemStyle.Render(text))
		} else {
			sb.WriteString(theme.ListItemStyle.Render(text))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(theme.HelpStyle.Render("a: ついか  enter: へんしゅう  x: さくじょ  esc: もどる"))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
