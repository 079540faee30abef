package skill

import (
	"context"
	"testing"
	"time"

	"github.com/nhle/kids-todo/internal/model"
)

// fakeMarker is an in-memory MarkerStore.
type fakeMarker struct {
	date string
}

func (f *fakeMarker) LastRewardDate(ctx context.Context) string {
	return f.date
}

func (f *fakeMarker) SetLastRewardDate(ctx context.Context, date string) {
	f.date = date
}

func fixedLedger(t time.Time) *Ledger {
	return &Ledger{Now: func() time.Time { return t }}
}

func TestAddPointsNoLevelUp(t *testing.T) {
	s := model.Skill{ID: model.SkillPersistence, Level: 1, Points: 3, MaxPoints: 10}

	got, leveledUp := AddPoints(s, 2)
	if leveledUp {
		t.Fatalf("unexpected level-up")
	}
	if got.Level != 1 || got.Points != 5 || got.MaxPoints != 10 {
		t.Fatalf("got %+v, want level 1, points 5, maxPoints 10", got)
	}
}

func TestAddPointsLevelUpCarriesOver(t *testing.T) {
	s := model.Skill{ID: model.SkillPersistence, Level: 2, Points: 14, MaxPoints: 15}

	got, leveledUp := AddPoints(s, 3)
	if !leveledUp {
		t.Fatalf("expected level-up")
	}
	if got.Level != 3 {
		t.Fatalf("level = %d, want 3", got.Level)
	}
	if got.Points != 2 {
		t.Fatalf("points = %d, want 2 (carry-over)", got.Points)
	}
	if got.MaxPoints != 20 {
		t.Fatalf("maxPoints = %d, want 20", got.MaxPoints)
	}
}

func TestAddPointsExactThresholdLevelsUp(t *testing.T) {
	s := model.Skill{ID: model.SkillPersistence, Level: 1, Points: 9, MaxPoints: 10}

	got, leveledUp := AddPoints(s, 1)
	if !leveledUp {
		t.Fatalf("expected level-up at exact threshold")
	}
	if got.Level != 2 || got.Points != 0 || got.MaxPoints != 15 {
		t.Fatalf("got %+v, want {level:2 points:0 maxPoints:15}", got)
	}
}

func TestAddPointsAtMaxLevelIsNoOp(t *testing.T) {
	s := model.Skill{ID: model.SkillPersistence, Level: 5, Points: 7, MaxPoints: 30}

	got, leveledUp := AddPoints(s, 100)
	if leveledUp {
		t.Fatalf("level 5 skill must not level up")
	}
	if got.Level != 5 {
		t.Fatalf("level = %d, want 5", got.Level)
	}
	if got.Points != got.MaxPoints {
		t.Fatalf("points = %d, want clamped to maxPoints %d", got.Points, got.MaxPoints)
	}
}

func TestOnTaskCompleteBeforeDeadline(t *testing.T) {
	data := model.DefaultAppData()
	for id, s := range data.Skills {
		s.Points = 9
		data.Skills[id] = s
	}

	// 19:30 exactly is still within the deadline.
	l := fixedLedger(time.Date(2026, 3, 2, 19, 30, 0, 0, time.Local))
	res := l.OnTaskComplete(data)

	for _, id := range []model.SkillType{model.SkillPersistence, model.SkillTimeManagement} {
		s := data.Skills[id]
		if s.Level != 2 || s.Points != 0 || s.MaxPoints != 15 {
			t.Fatalf("%s = %+v, want {level:2 points:0 maxPoints:15}", id, s)
		}
	}
	if len(res.LeveledUp) != 2 {
		t.Fatalf("leveled up %v, want both persistence and timeManagement", res.LeveledUp)
	}
}

func TestOnTaskCompleteAfterDeadline(t *testing.T) {
	data := model.DefaultAppData()
	for id, s := range data.Skills {
		s.Points = 9
		data.Skills[id] = s
	}

	l := fixedLedger(time.Date(2026, 3, 2, 19, 31, 0, 0, time.Local))
	l.OnTaskComplete(data)

	p := data.Skills[model.SkillPersistence]
	if p.Level != 2 || p.Points != 0 || p.MaxPoints != 15 {
		t.Fatalf("persistence = %+v, want {level:2 points:0 maxPoints:15}", p)
	}

	tm := data.Skills[model.SkillTimeManagement]
	if tm.Level != 1 || tm.Points != 9 || tm.MaxPoints != 10 {
		t.Fatalf("timeManagement = %+v, want unchanged {level:1 points:9 maxPoints:10}", tm)
	}
}

func TestOnAllTasksComplete(t *testing.T) {
	data := model.DefaultAppData()
	l := NewLedger()

	l.OnAllTasksComplete(data)

	if got := data.Skills[model.SkillOrganization].Points; got != 1 {
		t.Fatalf("organization points = %d, want 1", got)
	}
}

func TestOnNewTaskAdded(t *testing.T) {
	data := model.DefaultAppData()
	l := NewLedger()

	l.OnNewTaskAdded(data)
	l.OnNewTaskAdded(data)

	if got := data.Skills[model.SkillChallenge].Points; got != 2 {
		t.Fatalf("challenge points = %d, want 2", got)
	}
}

func TestOnDailyOpenAwardsOncePerDay(t *testing.T) {
	ctx := context.Background()
	data := model.DefaultAppData()
	marker := &fakeMarker{}
	l := fixedLedger(time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local))

	l.OnDailyOpen(ctx, data, marker)
	l.OnDailyOpen(ctx, data, marker)

	if got := data.Skills[model.SkillCompletion].Points; got != 1 {
		t.Fatalf("completion points = %d, want exactly 1", got)
	}
	if marker.date != "2026-03-02" {
		t.Fatalf("marker date = %q, want 2026-03-02", marker.date)
	}
}

func TestOnDailyOpenAwardsAgainNextDay(t *testing.T) {
	ctx := context.Background()
	data := model.DefaultAppData()
	marker := &fakeMarker{date: "2026-03-01"}
	l := fixedLedger(time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local))

	l.OnDailyOpen(ctx, data, marker)

	if got := data.Skills[model.SkillCompletion].Points; got != 1 {
		t.Fatalf("completion points = %d, want 1", got)
	}
}

func TestReset(t *testing.T) {
	data := model.DefaultAppData()
	s := data.Skills[model.SkillPersistence]
	s.Level = 4
	s.Points = 12
	s.MaxPoints = 25
	data.Skills[model.SkillPersistence] = s

	NewLedger().Reset(data)

	for id, s := range data.Skills {
		if s.Level != 1 || s.Points != 0 || s.MaxPoints != model.SkillInitialThreshold {
			t.Fatalf("%s = %+v, want level 1, 0/%d", id, s, model.SkillInitialThreshold)
		}
	}
}
