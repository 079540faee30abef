package model

import "time"

// Task is a single actionable item on one calendar day's checklist.
// Tasks are created when a day is first materialized from templates, or
// when the user (or an accepted suggestion) adds one. A task never moves
// to another day.
type Task struct {
	// ID is unique within the task's day.
	ID string `json:"id"`

	// Text is the display text of the task.
	Text string `json:"text"`

	// Completed reports whether the task has been checked off.
	Completed bool `json:"completed"`

	// Emoji is an optional decorative glyph shown next to the text.
	Emoji string `json:"emoji,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"createdAt"`

	// IsChallenge marks a task that came from the suggestion service.
	IsChallenge bool `json:"isChallenge,omitempty"`
}

// TemplateTask is a recurring task definition used to seed each new day.
// It carries no completion state.
type TemplateTask struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Emoji string `json:"emoji,omitempty"`
}

// DefaultTemplates returns the seed template list used when no stored
// state exists yet.
func DefaultTemplates() []TemplateTask {
	return []TemplateTask{
		{ID: "1", Text: "おんどく・けいさんカード", Emoji: "📖"},
		{ID: "2", Text: "さんすうドリル／プリント", Emoji: "📝"},
		{ID: "3", Text: "かんじノート／プリント", Emoji: "✏️"},
		{ID: "4", Text: "くもん", Emoji: "📚"},
		{ID: "5", Text: "じかんわり", Emoji: "📅"},
		{ID: "6", Text: "あしたのもちものを入れる", Emoji: "🎒"},
		{ID: "7", Text: "えんぴつをけずる", Emoji: "✂️"},
		{ID: "8", Text: "あしたのふく", Emoji: "👕"},
		{ID: "9", Text: "かにさんTシャツを入れる", Emoji: "🦀"},
		{ID: "10", Text: "ピアノのれんしゅう", Emoji: "🎹"},
	}
}
