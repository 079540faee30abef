package skills

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kids-todo/internal/keys"
	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/theme"
)

// barWidth is the number of cells in a skill progress bar.
const barWidth = 10

// CloseMsg asks the parent to return to the checklist.
type CloseMsg struct{}

// Model is the read-only skill progress view.
type Model struct {
	skills map[model.SkillType]model.Skill
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a skills view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetSkills replaces the displayed skill map.
func (m *Model) SetSkills(skills map[model.SkillType]model.Skill) {
	m.skills = skills
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles key input for the skills view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Back) {
		return m, func() tea.Msg { return CloseMsg{} }
	}

	return m, nil
}

// View renders one line per skill with a level badge and progress bar.
func (m Model) View() string {
	var sb strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sb.WriteString(title.Render("スキルのせいちょう"))
	sb.WriteString("\n\n")

	for _, id := range model.SkillTypes {
		s, ok := m.skills[id]
		if !ok {
			continue
		}
		sb.WriteString(renderSkill(s))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(theme.HelpStyle.Render("esc: もどる"))

	return theme.PanelStyle.Render(sb.String())
}

// renderSkill draws a single skill row.
func renderSkill(s model.Skill) string {
	level := theme.LevelStyle(s.Level).Render(fmt.Sprintf("Lv.%d", s.Level))

	filled := 0
	if s.MaxPoints > 0 {
		filled = s.Points * barWidth / s.MaxPoints
	}
	if s.Level >= model.SkillMaxLevel {
		filled = barWidth
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := theme.WeekDoneStyle.Render(strings.Repeat("■", filled)) +
		theme.WeekOpenStyle.Render(strings.Repeat("□", barWidth-filled))

	progress := fmt.Sprintf("%d/%d", s.Points, s.MaxPoints)
	if s.Level >= model.SkillMaxLevel {
		progress = "MAX"
	}

	return fmt.Sprintf("%s %-10s %s %s %s", s.Emoji, s.Name, level, bar, progress)
}
