package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle creates a standardized title component with consistent styling
// Used for the pane titles (section editor, raw notation, preview)
type ViewTitle struct {
	text   string
	active bool
}

// NewViewTitle creates a new view title with the given text
func NewViewTitle(text string, active bool) *ViewTitle {
	return &ViewTitle{text: text, active: active}
}

// View renders the title with consistent styling
func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}

	background := "0" // Black background for better contrast
	if v.active {
		background = "170"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")). // White text
		Background(lipgloss.Color(background)).
		Bold(true).
		Padding(0, 1).
		Render(v.text)
}

// ViewTitleHeight returns the consistent height of view titles
func ViewTitleHeight() int {
	return 1
}
