package model

// SkillType identifies one of the fixed set of tracked skills.
type SkillType string

const (
	SkillPersistence    SkillType = "persistence"
	SkillCompletion     SkillType = "completion"
	SkillTimeManagement SkillType = "timeManagement"
	SkillOrganization   SkillType = "organization"
	SkillChallenge      SkillType = "challenge"
)

// SkillTypes lists every skill in display order.
var SkillTypes = []SkillType{
	SkillPersistence,
	SkillCompletion,
	SkillTimeManagement,
	SkillOrganization,
	SkillChallenge,
}

// Skill leveling constants.
const (
	// SkillMaxLevel is the cap; points are clamped once it is reached.
	SkillMaxLevel = 5

	// SkillInitialThreshold is the points needed for the first level-up.
	SkillInitialThreshold = 10

	// SkillThresholdIncrement is added to the threshold on each level-up.
	SkillThresholdIncrement = 5
)

// Skill is a named progress counter. Invariant: points < maxPoints while
// level < SkillMaxLevel; at the cap, points stay clamped to maxPoints.
type Skill struct {
	ID        SkillType `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Level     int       `json:"level"`
	Points    int       `json:"points"`
	MaxPoints int       `json:"maxPoints"`
}

// DefaultSkills returns all five skills at level 1 with zero points.
func DefaultSkills() map[SkillType]Skill {
	names := map[SkillType]struct {
		name  string
		emoji string
	}{
		SkillPersistence:    {"がんばりやさん", "🔥"},
		SkillCompletion:     {"コツコツさん", "🐢"},
		SkillTimeManagement: {"じかんまもる", "⏰"},
		SkillOrganization:   {"ぜんぶできたデー", "🏆"},
		SkillChallenge:      {"チャレンジャー", "🚀"},
	}

	skills := make(map[SkillType]Skill, len(names))
	for id, n := range names {
		skills[id] = Skill{
			ID:        id,
			Name:      n.name,
			Emoji:     n.emoji,
			Level:     1,
			Points:    0,
			MaxPoints: SkillInitialThreshold,
		}
	}
	return skills
}
