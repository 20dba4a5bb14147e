package styles

import "github.com/charmbracelet/lipgloss"

// Template is the overall look of the page.
type Template struct {
	ID    string
	Label string
	// Name is the style of the person's name at the top of the page.
	Name    lipgloss.Style
	Heading lipgloss.Style
	Section lipgloss.Style
	// Gap is the number of blank lines between sections.
	Gap int
}

// Templates lists the page templates, the default first.
var Templates = []Template{
	{
		ID:      "modern",
		Label:   "Modern",
		Name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorActive)),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary)),
		Section: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color(ColorSelected)).PaddingLeft(1),
		Gap:     1,
	},
	{
		ID:      "classic",
		Label:   "Classic",
		Name:    lipgloss.NewStyle().Bold(true).Underline(true),
		Heading: lipgloss.NewStyle().Bold(true).Underline(true),
		Section: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(lipgloss.Color(ColorBorder)).PaddingBottom(1),
		Gap:     1,
	},
	{
		ID:      "minimal",
		Label:   "Minimal",
		Name:    lipgloss.NewStyle().Bold(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)),
		Section: lipgloss.NewStyle(),
		Gap:     0,
	},
	{
		ID:      "professional",
		Label:   "Professional",
		Name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)).Background(lipgloss.Color(ColorPrimary)).Padding(1, 2),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWarning)),
		Section: lipgloss.NewStyle(),
		Gap:     1,
	},
}

// LookupTemplate returns the template id, or the default template.
func LookupTemplate(id string) Template {
	for _, t := range Templates {
		if t.ID == id {
			return t
		}
	}
	return Templates[0]
}
