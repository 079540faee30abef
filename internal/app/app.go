package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	aiservice "github.com/nhle/kids-todo/internal/ai"
	"github.com/nhle/kids-todo/internal/credential"
	"github.com/nhle/kids-todo/internal/day"
	"github.com/nhle/kids-todo/internal/keys"
	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/skill"
	"github.com/nhle/kids-todo/internal/store"
	"github.com/nhle/kids-todo/internal/ui"
	"github.com/nhle/kids-todo/internal/ui/checklist"
	skillsview "github.com/nhle/kids-todo/internal/ui/skills"
	"github.com/nhle/kids-todo/internal/ui/taskform"
	templatesview "github.com/nhle/kids-todo/internal/ui/templates"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewChecklist ViewState = iota
	ViewTemplates
	ViewSkills
	ViewForm
)

// Model is the root Bubble Tea model. It owns the in-memory AppData and
// folds every mutation back through the snapshot store and skill ledger
// before persisting the whole state via the gateway.
type Model struct {
	currentView ViewState
	layout      ui.Layout
	gateway     *store.Gateway
	days        *day.Store
	ledger      *skill.Ledger
	suggester   *aiservice.Suggester
	keys        *keys.KeyMap
	data        *model.AppData

	checklist     checklist.Model
	templatesView templatesview.Model
	skillsView    skillsview.Model
	form          taskform.Model

	ready bool
}

// New creates the root application model over the given gateway. The AI
// suggester is optional; without an API key the suggestion line simply
// reports failure when used.
func New(gateway *store.Gateway, cfg *model.AppConfig) Model {
	k := keys.DefaultKeyMap()

	ctx := context.Background()
	data := gateway.Load(ctx)

	m := Model{
		currentView:   ViewChecklist,
		gateway:       gateway,
		days:          day.New(),
		ledger:        skill.NewLedger(),
		suggester:     loadSuggester(cfg),
		keys:          k,
		data:          data,
		checklist:     checklist.New(k, 80, 24),
		templatesView: templatesview.New(k, 80, 24),
		skillsView:    skillsview.New(k, 80, 24),
		form:          taskform.New(80, 24),
	}

	// Materialize today's checklist, grant the once-per-day open reward,
	// and persist before the first frame.
	m.ledger.OnDailyOpen(ctx, data, m.gateway)
	m.days.Today(data)
	m.gateway.Save(ctx, data)

	return m.refresh()
}

// loadSuggester attempts to create a suggestion client by loading the API
// key from the environment variable or system keyring. Returns nil if no
// key is available.
func loadSuggester(cfg *model.AppConfig) *aiservice.Suggester {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		var err error
		apiKey, err = credential.Get("claude-api-key")
		if err != nil || apiKey == "" {
			return nil
		}
	}

	return aiservice.New(apiKey, cfg.AI.Model, cfg.AI.MaxTokens)
}

// Init returns the initial command; all startup work happens in New.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.checklist.SetSize(contentWidth, contentHeight)
		m.templatesView.SetSize(contentWidth, contentHeight)
		m.skillsView.SetSize(contentWidth, contentHeight)
		m.form.SetSize(contentWidth, contentHeight)
		return m.updateActiveView(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	// Checklist requests.
	case checklist.ToggleMsg:
		return m.toggleTask(msg.ID), nil
	case checklist.DeleteMsg:
		return m.deleteTask(msg.ID), nil
	case checklist.MoveMsg:
		return m.moveTask(msg.From, msg.To), nil
	case checklist.AddRequestMsg:
		m.currentView = ViewForm
		return m, m.form.StartTask()
	case checklist.SuggestRequestMsg:
		return m, m.fetchSuggestion()
	case checklist.AcceptSuggestionMsg:
		return m.addTask(msg.Text, "", true), nil
	case suggestionMsg:
		if msg.err != nil {
			m.checklist.SetSuggestionError(msg.err.Error())
		} else {
			m.checklist.SetSuggestion(msg.text)
		}
		return m, nil

	// Form results.
	case taskform.TaskSubmittedMsg:
		m.currentView = ViewChecklist
		return m.addTask(msg.Text, msg.Emoji, false), nil
	case taskform.TemplateSubmittedMsg:
		m.currentView = ViewTemplates
		return m.upsertTemplate(msg.ID, msg.Text, msg.Emoji), nil
	case taskform.FormCancelMsg:
		if m.currentView == ViewForm {
			m.currentView = ViewChecklist
		}
		return m, nil

	// Template manager requests.
	case templatesview.CreateRequestMsg:
		m.currentView = ViewForm
		return m, m.form.StartTemplateCreate()
	case templatesview.EditRequestMsg:
		m.currentView = ViewForm
		return m, m.form.StartTemplateEdit(msg.Template)
	case templatesview.DeleteMsg:
		return m.deleteTemplate(msg.ID), nil
	case templatesview.CloseMsg:
		m.currentView = ViewChecklist
		return m.refresh(), nil
	case skillsview.CloseMsg:
		m.currentView = ViewChecklist
		return m, nil
	}

	return m.updateActiveView(msg)
}

// handleKeyMsg routes global keys and forwards the rest to the active view.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The form owns all key input while open.
	if m.currentView == ViewForm {
		return m.updateActiveView(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Templates):
		if m.currentView == ViewChecklist {
			m.currentView = ViewTemplates
			m.templatesView.SetTemplates(m.data.Templates)
			return m, nil
		}

	case key.Matches(msg, m.keys.Skills):
		if m.currentView == ViewChecklist {
			m.currentView = ViewSkills
			m.skillsView.SetSkills(m.data.Skills)
			return m, nil
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView forwards a message to the current view's model.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewChecklist:
		m.checklist, cmd = m.checklist.Update(msg)
	case ViewTemplates:
		m.templatesView, cmd = m.templatesView.Update(msg)
	case ViewSkills:
		m.skillsView, cmd = m.skillsView.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	}

	return m, cmd
}

// View renders the active view inside the standard frame.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var content string
	switch m.currentView {
	case ViewChecklist:
		content = m.checklist.View()
	case ViewTemplates:
		content = m.templatesView.View()
	case ViewSkills:
		content = m.skillsView.View()
	case ViewForm:
		content = m.form.View()
	}

	now := time.Now()
	date := fmt.Sprintf("%s %s", day.Key(now), weekdayLabel(now))

	header := m.layout.RenderHeader("きょうのやること", date)
	statusBar := m.layout.RenderStatusBar(m.hints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// hints returns the status-bar key hints for the current view.
func (m Model) hints() string {
	switch m.currentView {
	case ViewChecklist:
		return "space: できた  a: ついか  s: ていあん  t: テンプレート  g: スキル  q: おわる"
	case ViewTemplates:
		return "a: ついか  enter: へんしゅう  x: さくじょ  esc: もどる"
	case ViewSkills:
		return "esc: もどる"
	default:
		return "esc: やめる"
	}
}

// weekdayLabel returns the Japanese weekday name for t.
func weekdayLabel(t time.Time) string {
	labels := []string{"にち", "げつ", "か", "すい", "もく", "きん", "ど"}
	return "(" + labels[int(t.Weekday())] + ")"
}
