// Package skill implements point accrual and level-up bookkeeping for the
// fixed set of tracked skills.
package skill

import (
	"context"
	"time"

	"github.com/nhle/kids-todo/internal/day"
	"github.com/nhle/kids-todo/internal/model"
)

// timeManagementDeadline is the latest local wall-clock time (in minutes
// from midnight, inclusive) at which completing a task still earns the
// time-management point.
const timeManagementDeadline = 19*60 + 30

// AddPoints adds delta points to the skill and applies at most one
// level-up. At the level cap the skill is a no-op sink: points stay
// clamped to the threshold and leveledUp is always false. On a level-up
// the surplus carries over and the threshold grows by the fixed increment.
func AddPoints(s model.Skill, delta int) (model.Skill, bool) {
	if s.Level >= model.SkillMaxLevel {
		s.Points = s.MaxPoints
		return s, false
	}

	sum := s.Points + delta
	if sum >= s.MaxPoints {
		s.Level = min(s.Level+1, model.SkillMaxLevel)
		s.Points = sum - s.MaxPoints
		s.MaxPoints += model.SkillThresholdIncrement
		return s, true
	}

	s.Points = sum
	return s, false
}

// MarkerStore tracks the last date the daily-open reward was granted.
// The marker lives outside the main state blob.
type MarkerStore interface {
	LastRewardDate(ctx context.Context) string
	SetLastRewardDate(ctx context.Context, date string)
}

// Ledger applies the reward rules to an AppData value. The clock is
// injectable so the 19:30 boundary and the daily gate are testable.
type Ledger struct {
	Now func() time.Time
}

// NewLedger returns a Ledger using the wall clock.
func NewLedger() *Ledger {
	return &Ledger{Now: time.Now}
}

// Result reports which skills leveled up during one ledger operation.
type Result struct {
	LeveledUp []model.SkillType
}

// award adds one point to the given skill and records a level-up.
func (l *Ledger) award(data *model.AppData, id model.SkillType, res *Result) {
	updated, leveledUp := AddPoints(data.Skills[id], 1)
	data.Skills[id] = updated
	if leveledUp {
		res.LeveledUp = append(res.LeveledUp, id)
	}
}

// OnTaskComplete awards one persistence point, plus one time-management
// point when the completion happens at or before 19:30 local time.
func (l *Ledger) OnTaskComplete(data *model.AppData) Result {
	var res Result
	l.award(data, model.SkillPersistence, &res)

	now := l.Now()
	if now.Hour()*60+now.Minute() <= timeManagementDeadline {
		l.award(data, model.SkillTimeManagement, &res)
	}
	return res
}

// OnAllTasksComplete awards one organization point. The caller decides
// that the day is fully complete (non-empty list, every task done).
func (l *Ledger) OnAllTasksComplete(data *model.AppData) Result {
	var res Result
	l.award(data, model.SkillOrganization, &res)
	return res
}

// OnNewTaskAdded awards one challenge point. Template-seeded tasks at day
// rollover are not additions; only explicit adds count.
func (l *Ledger) OnNewTaskAdded(data *model.AppData) Result {
	var res Result
	l.award(data, model.SkillChallenge, &res)
	return res
}

// OnDailyOpen awards one completion point at most once per calendar day,
// gated by the marker store.
func (l *Ledger) OnDailyOpen(ctx context.Context, data *model.AppData, marker MarkerStore) Result {
	var res Result
	today := day.Key(l.Now())
	if marker.LastRewardDate(ctx) == today {
		return res
	}

	marker.SetLastRewardDate(ctx, today)
	l.award(data, model.SkillCompletion, &res)
	return res
}

// Reset reinitializes every skill to level 1 with zero points. This is an
// explicit, user-confirmed action.
func (l *Ledger) Reset(data *model.AppData) {
	data.Skills = model.DefaultSkills()
}
