package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorMagenta).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps bordered content areas such as the skills view.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// DoneStyle renders the text of a completed task.
var DoneStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// ChallengeStyle marks suggestion-born challenge tasks.
var ChallengeStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Bold(true)

// PraiseStyle renders celebration and praise messages.
var PraiseStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Bold(true)

// ErrorStyle renders retryable failure messages (e.g. a failed
// suggestion fetch).
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// WeekDoneStyle renders a fully completed day in the weekly strip.
var WeekDoneStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Bold(true)

// WeekOpenStyle renders an incomplete or empty day in the weekly strip.
var WeekOpenStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle)

// LevelStyle returns a color-coded style for a skill level (1-5).
func LevelStyle(level int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch level {
	case 1:
		return base.Foreground(ColorGray)
	case 2:
		return base.Foreground(ColorBlue)
	case 3:
		return base.Foreground(ColorGreen)
	case 4:
		return base.Foreground(ColorYellow)
	case 5:
		return base.Foreground(ColorMagenta)
	default:
		return base.Foreground(ColorGray)
	}
}
