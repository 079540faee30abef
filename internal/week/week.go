// Package week derives the rolling weekly completion vector from stored
// day snapshots.
package week

import (
	"time"

	"github.com/nhle/kids-todo/internal/day"
	"github.com/nhle/kids-todo/internal/model"
)

// Start returns midnight (local time) of the most recent Sunday at or
// before t.
func Start(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// Progress returns one boolean per day of the week containing now,
// Sunday first. A day is true when its snapshot is non-empty and every
// task in it is completed.
func Progress(data *model.AppData, now time.Time) []bool {
	start := Start(now)
	progress := make([]bool, 7)

	for i := 0; i < 7; i++ {
		key := day.Key(start.AddDate(0, 0, i))
		progress[i] = day.AllComplete(data.DailyTasks[key])
	}

	return progress
}
