package taskform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/theme"
)

// TaskSubmittedMsg is dispatched when a new task is entered via the form.
type TaskSubmittedMsg struct {
	Text  string
	Emoji string
}

// TemplateSubmittedMsg is dispatched when a template is created or edited
// via the form. ID is empty for a new template.
type TemplateSubmittedMsg struct {
	ID    string
	Text  string
	Emoji string
}

// FormCancelMsg is dispatched when the user cancels the form.
type FormCancelMsg struct{}

// mode selects what the form submission produces.
type mode int

const (
	modeTask mode = iota
	modeTemplateCreate
	modeTemplateEdit
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	text  string
	emoji string
}

// Model is the Bubble Tea model for the add-task and template forms.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	mode   mode
	editID string
	width  int
	height int
}

// New creates a new form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartTask initializes the form for adding a task to today's list.
func (m *Model) StartTask() tea.Cmd {
	m.mode = modeTask
	m.editID = ""
	m.fb.text = ""
	m.fb.emoji = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartTemplateCreate initializes the form for a new template.
func (m *Model) StartTemplateCreate() tea.Cmd {
	m.mode = modeTemplateCreate
	m.editID = ""
	m.fb.text = ""
	m.fb.emoji = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartTemplateEdit initializes the form with an existing template.
func (m *Model) StartTemplateEdit(tpl model.TemplateTask) tea.Cmd {
	m.mode = modeTemplateEdit
	m.editID = tpl.ID
	m.fb.text = tpl.Text
	m.fb.emoji = tpl.Emoji
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return FormCancelMsg{} }
	}

	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "あたらしい「やること」"
	if m.mode == modeTemplateCreate {
		titleText = "あたらしいテンプレート"
	} else if m.mode == modeTemplateEdit {
		titleText = "テンプレートをへんしゅう"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("なにをする？").
				Placeholder("やることをかいてね").
				Value(&m.fb.text).
				Validate(validateRequired("やること")),
			huh.NewInput().
				Title("えもじ").
				Placeholder("すきなえもじ（なくてもOK）").
				Value(&m.fb.emoji),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	text := strings.TrimSpace(m.fb.text)
	emoji := strings.TrimSpace(m.fb.emoji)

	switch m.mode {
	case modeTask:
		return func() tea.Msg { return TaskSubmittedMsg{Text: text, Emoji: emoji} }
	case modeTemplateEdit:
		id := m.editID
		return func() tea.Msg { return TemplateSubmittedMsg{ID: id, Text: text, Emoji: emoji} }
	default:
		return func() tea.Msg { return TemplateSubmittedMsg{Text: text, Emoji: emoji} }
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 8 {
		h = 8
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%sをかいてね", fieldName)
		}
		return nil
	}
}
