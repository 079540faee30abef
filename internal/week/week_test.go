package week

import (
	"testing"
	"time"

	"github.com/nhle/kids-todo/internal/model"
)

func TestStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "wednesday",
			in:   time.Date(2026, 3, 4, 15, 30, 0, 0, time.Local),
			want: "2026-03-01",
		},
		{
			name: "sunday is its own week start",
			in:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
			want: "2026-03-01",
		},
		{
			name: "saturday",
			in:   time.Date(2026, 3, 7, 23, 59, 0, 0, time.Local),
			want: "2026-03-01",
		},
		{
			name: "month boundary",
			in:   time.Date(2026, 4, 2, 8, 0, 0, 0, time.Local),
			want: "2026-03-29",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Start(tc.in)
			if got.Format("2006-01-02") != tc.want {
				t.Fatalf("Start(%v) = %v, want %s", tc.in, got, tc.want)
			}
			if got.Weekday() != time.Sunday {
				t.Fatalf("Start(%v) is a %v, want Sunday", tc.in, got.Weekday())
			}
		})
	}
}

func TestProgress(t *testing.T) {
	// Week of Sunday 2026-03-01.
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.Local)

	data := &model.AppData{
		DailyTasks: map[string][]model.Task{
			// Sunday: all complete.
			"2026-03-01": {{ID: "a", Completed: true}, {ID: "b", Completed: true}},
			// Monday: one incomplete among several.
			"2026-03-02": {{ID: "c", Completed: true}, {ID: "d", Completed: false}},
			// Tuesday: empty snapshot.
			"2026-03-03": {},
			// Wednesday onwards: no snapshot at all.
		},
	}

	got := Progress(data, now)
	if len(got) != 7 {
		t.Fatalf("got %d entries, want 7", len(got))
	}

	want := []bool{true, false, false, false, false, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("day %d = %v, want %v (full vector %v)", i, got[i], want[i], got)
		}
	}
}

func TestProgressAllEmpty(t *testing.T) {
	data := &model.AppData{DailyTasks: map[string][]model.Task{}}
	got := Progress(data, time.Date(2026, 3, 4, 12, 0, 0, 0, time.Local))

	for i, done := range got {
		if done {
			t.Fatalf("day %d true with no snapshots", i)
		}
	}
}
