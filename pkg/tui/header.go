package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-cv/pkg/styles"
)

// Version is shown in the header.
var Version = "v0.1.0"

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink/magenta color
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(styles.ColorNormal))

	// Header padding style (matching pane padding)
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logo := logoStyle.Render("PLUQQY CV") + " " + styles.DescriptionStyle.Render(Version)
	if title == "" {
		return headerPadding.Render(logo)
	}

	// Title on the left, logo on the right
	contentWidth := width - 2
	gap := contentWidth - lipgloss.Width(title) - lipgloss.Width(logo)
	if gap < 1 {
		gap = 1
	}
	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleStyle.Render(title),
		lipgloss.NewStyle().Width(gap).Render(""),
		logo,
	))
}
