package model

// AppData is the whole persisted application state. It is read in full
// and written in full on every mutation; there is no partial update and
// the last writer wins.
type AppData struct {
	// Templates is the recurring task definitions used to seed new days.
	Templates []TemplateTask `json:"templates"`

	// DailyTasks maps an ISO calendar date ("2006-01-02") to that day's
	// task snapshot. At most one snapshot exists per date.
	DailyTasks map[string][]Task `json:"dailyTasks"`

	// Skills holds the progress counter for each tracked skill.
	Skills map[SkillType]Skill `json:"skills"`
}

// DefaultAppData returns the state used when nothing has been stored yet
// or the stored blob cannot be read.
func DefaultAppData() *AppData {
	return &AppData{
		Templates:  DefaultTemplates(),
		DailyTasks: make(map[string][]Task),
		Skills:     DefaultSkills(),
	}
}

// Normalize fills in nil maps and any missing skill entries so that a
// partially formed blob (e.g. written by an older version) is safe to use.
func (d *AppData) Normalize() {
	if d.DailyTasks == nil {
		d.DailyTasks = make(map[string][]Task)
	}
	if d.Skills == nil {
		d.Skills = make(map[SkillType]Skill)
	}
	defaults := DefaultSkills()
	for _, id := range SkillTypes {
		if _, ok := d.Skills[id]; !ok {
			d.Skills[id] = defaults[id]
		}
	}
}

// SetTemplates replaces the whole template list. Validation (non-empty
// trimmed text) is the caller's concern.
func (d *AppData) SetTemplates(templates []TemplateTask) {
	d.Templates = templates
}
