package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kids-todo/internal/ai"
	"github.com/nhle/kids-todo/internal/day"
	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/week"
)

// suggestionMsg carries the result of a suggestion fetch.
type suggestionMsg struct {
	text string
	err  error
}

// errNoAPIKey is reported when no Anthropic API key is configured.
var errNoAPIKey = errors.New("no API key configured")

// refresh pushes the current state into the view models.
func (m Model) refresh() Model {
	m.checklist.SetTasks(m.days.Today(m.data))
	m.checklist.SetWeekly(week.Progress(m.data, time.Now()))
	m.templatesView.SetTemplates(m.data.Templates)
	m.skillsView.SetSkills(m.data.Skills)
	return m
}

// persist folds today's tasks back into the state and writes the blob.
func (m Model) persist(tasks []model.Task) Model {
	m.days.SaveToday(m.data, tasks)
	m.gateway.Save(context.Background(), m.data)
	return m.refresh()
}

// toggleTask flips a task's completion flag and applies the skill rewards
// for a completion (but not for an un-completion).
func (m Model) toggleTask(id string) Model {
	tasks := m.days.Today(m.data)

	var wasCompleted bool
	for _, t := range tasks {
		if t.ID == id {
			wasCompleted = t.Completed
			break
		}
	}

	tasks = day.Toggle(tasks, id)

	if !wasCompleted {
		m.ledger.OnTaskComplete(m.data)
		m.checklist.SetStatus(model.RandomTaskComplete())
		if day.AllComplete(tasks) {
			m.ledger.OnAllTasksComplete(m.data)
			m.checklist.SetStatus(model.RandomCelebration())
		}
	} else {
		m.checklist.SetStatus("")
	}

	return m.persist(tasks)
}

// addTask appends a new task and awards the challenge-skill point that
// every explicit addition earns.
func (m Model) addTask(text, emoji string, challenge bool) Model {
	if text == "" {
		return m
	}

	tasks := m.days.Today(m.data)
	tasks = append(tasks, m.days.NewTask(text, emoji, challenge))

	m.ledger.OnNewTaskAdded(m.data)
	if challenge {
		m.checklist.ClearSuggestion()
	}

	return m.persist(tasks)
}

// deleteTask removes a task from today's list.
func (m Model) deleteTask(id string) Model {
	tasks := day.Delete(m.days.Today(m.data), id)
	return m.persist(tasks)
}

// moveTask reorders today's list.
func (m Model) moveTask(from, to int) Model {
	tasks := day.Move(m.days.Today(m.data), from, to)
	return m.persist(tasks)
}

// upsertTemplate adds a new template or updates an existing one, then
// replaces the whole template list. Already-materialized days keep their
// tasks.
func (m Model) upsertTemplate(id, text, emoji string) Model {
	if text == "" {
		return m
	}

	templates := make([]model.TemplateTask, len(m.data.Templates))
	copy(templates, m.data.Templates)

	if id == "" {
		templates = append(templates, model.TemplateTask{
			ID:    m.days.NewID(),
			Text:  text,
			Emoji: emoji,
		})
	} else {
		for i := range templates {
			if templates[i].ID == id {
				templates[i].Text = text
				templates[i].Emoji = emoji
				break
			}
		}
	}

	m.data.SetTemplates(templates)
	m.gateway.Save(context.Background(), m.data)
	return m.refresh()
}

// deleteTemplate removes a template from the registry.
func (m Model) deleteTemplate(id string) Model {
	templates := make([]model.TemplateTask, 0, len(m.data.Templates))
	for _, tpl := range m.data.Templates {
		if tpl.ID != id {
			templates = append(templates, tpl)
		}
	}

	m.data.SetTemplates(templates)
	m.gateway.Save(context.Background(), m.data)
	return m.refresh()
}

// fetchSuggestion requests one challenge suggestion for today. A single
// request is outstanding at a time from the view's perspective; failures
// surface as a retryable message.
func (m Model) fetchSuggestion() tea.Cmd {
	suggester := m.suggester
	tasks := m.days.Today(m.data)

	existing := make([]string, 0, len(tasks))
	for _, t := range tasks {
		existing = append(existing, t.Text)
	}

	return func() tea.Msg {
		if suggester == nil {
			return suggestionMsg{err: errNoAPIKey}
		}

		now := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		text, err := suggester.Suggest(ctx, ai.Request{
			DayOfWeek:     int(now.Weekday()),
			Month:         int(now.Month()),
			Day:           now.Day(),
			ExistingTasks: existing,
		})
		return suggestionMsg{text: text, err: err}
	}
}
