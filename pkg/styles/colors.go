// Package styles holds the presentation catalogs of the CV: the variants each
// section can be arranged in, the page templates and the terminal colors used
// to draw them.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorBorder   = "243" // Border gray
	ColorPrimary  = "33"  // Blue for primary actions
	ColorError    = "196" // Red for errors (same as danger)
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)

	// RemoveControlStyle marks the remove control of a removable item.
	RemoveControlStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger))
)

// Colors of the skill levels, from lowest to highest.
var levelColors = map[models.SkillLevel]string{
	models.Beginner:     "28",
	models.Intermediate: "33",
	models.Advanced:     "129",
	models.Expert:       "160",
}

// LevelStyle is the badge style of a skill level.
func LevelStyle(level models.SkillLevel) lipgloss.Style {
	color, ok := levelColors[level]
	if !ok {
		color = levelColors[models.Beginner]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)
}

// GetActiveHeaderStyle returns the header style for a focused or unfocused pane.
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// GetTabStyle returns the style of a raw-text tab.
func GetTabStyle(isActive, touched bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case isActive:
		return s.Foreground(lipgloss.Color(ColorWhite)).Background(lipgloss.Color(ColorActive)).Bold(true)
	case touched:
		return s.Foreground(lipgloss.Color(ColorWarning))
	}
	return s.Foreground(lipgloss.Color(ColorNormal))
}

// ProgressBar draws a bar width cells wide, percent of it filled.
func ProgressBar(percent, width int) string {
	filled := percent * width / 100
	filled = max(0, min(filled, width))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorVeryDim)).Render(strings.Repeat("░", width-filled))
}
