// Package day materializes and mutates the task snapshot for a single
// calendar date. A day's snapshot is created lazily from the current
// templates the first time the date is requested without stored tasks.
package day

import (
	"time"

	"github.com/google/uuid"

	"github.com/nhle/kids-todo/internal/model"
)

// KeyFormat is the calendar date layout used for snapshot keys.
const KeyFormat = "2006-01-02"

// Key formats t as a snapshot key in local time.
func Key(t time.Time) string {
	return t.Format(KeyFormat)
}

// Store materializes today's task list and folds mutations back into the
// AppData value. Clock and ID generation are injectable so tests can be
// deterministic.
type Store struct {
	Now   func() time.Time
	NewID func() string
}

// New returns a Store using the wall clock and random UUIDs.
func New() *Store {
	return &Store{
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// TodayKey returns the current date as a snapshot key.
func (s *Store) TodayKey() string {
	return Key(s.Now())
}

// Today returns today's task list. If no snapshot exists for today (or it
// is empty), a fresh list is synthesized from the templates, stored into
// data, and returned, so a second call on the same data yields the same
// task identifiers.
func (s *Store) Today(data *model.AppData) []model.Task {
	key := s.TodayKey()
	if tasks, ok := data.DailyTasks[key]; ok && len(tasks) > 0 {
		return tasks
	}

	tasks := s.fromTemplates(data.Templates)
	if data.DailyTasks == nil {
		data.DailyTasks = make(map[string][]model.Task)
	}
	data.DailyTasks[key] = tasks
	return tasks
}

// SaveToday sets today's snapshot to the given list. Other dates are left
// untouched.
func (s *Store) SaveToday(data *model.AppData, tasks []model.Task) {
	if data.DailyTasks == nil {
		data.DailyTasks = make(map[string][]model.Task)
	}
	data.DailyTasks[s.TodayKey()] = tasks
}

// NewTask creates a task with a fresh ID and the current timestamp.
func (s *Store) NewTask(text, emoji string, challenge bool) model.Task {
	return model.Task{
		ID:          s.NewID(),
		Text:        text,
		Emoji:       emoji,
		Completed:   false,
		CreatedAt:   s.Now(),
		IsChallenge: challenge,
	}
}

// fromTemplates synthesizes one incomplete task per template.
func (s *Store) fromTemplates(templates []model.TemplateTask) []model.Task {
	tasks := make([]model.Task, 0, len(templates))
	for _, tpl := range templates {
		tasks = append(tasks, model.Task{
			ID:        s.NewID(),
			Text:      tpl.Text,
			Emoji:     tpl.Emoji,
			Completed: false,
			CreatedAt: s.Now(),
		})
	}
	return tasks
}

// Toggle returns the list with the completion flag of the task with the
// given ID flipped. Unknown IDs leave the list unchanged.
func Toggle(tasks []model.Task, id string) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			break
		}
	}
	return out
}

// Delete returns the list without the task with the given ID.
func Delete(tasks []model.Task, id string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Move returns the list with the task at index from moved to index to.
// Out-of-range indices leave the list unchanged. Which permutation the
// caller produces is unconstrained; any reordering of the same set is
// accepted by SaveToday.
func Move(tasks []model.Task, from, to int) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]model.Task{moved}, out[to:]...)...)
	return out
}

// AllComplete reports whether the list is non-empty and every task in it
// is completed.
func AllComplete(tasks []model.Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
