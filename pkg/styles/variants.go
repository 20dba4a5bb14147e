package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

// Arrangement says how the entries of a section are laid out.
type Arrangement string

const (
	ArrangeStack    Arrangement = "stack"
	ArrangeInline   Arrangement = "inline"
	ArrangeGrid     Arrangement = "grid"
	ArrangeCentered Arrangement = "centered"
	ArrangeTimeline Arrangement = "timeline"
	ArrangeCards    Arrangement = "cards"
	ArrangeBars     Arrangement = "bars"
	ArrangeBullets  Arrangement = "bullets"
)

// Variant is a named presentation of a section: how the entries are arranged
// and how the container and each entry are drawn.
type Variant struct {
	ID          string
	Name        string
	Arrangement Arrangement
	Columns     int
	Container   lipgloss.Style
	Item        lipgloss.Style
}

var (
	plain = lipgloss.NewStyle()
	card  = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)
	rail = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorBorder)).
		PaddingLeft(1)
	chip = lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSelected)).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1)
	dim = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim))
)

var catalog = map[models.SectionID][]Variant{
	models.SectionContact: {
		{ID: "modern-grid", Name: "Modern Grid", Arrangement: ArrangeGrid, Columns: 2, Container: plain, Item: plain},
		{ID: "centered", Name: "Centered", Arrangement: ArrangeCentered, Container: plain, Item: plain},
		{ID: "minimalist", Name: "Minimalist", Arrangement: ArrangeInline, Container: plain, Item: dim},
	},
	models.SectionSummary: {
		{ID: "single-paragraph", Name: "Single Paragraph", Arrangement: ArrangeStack, Container: plain, Item: plain},
		{ID: "bullet-points", Name: "Bullet Points", Arrangement: ArrangeBullets, Container: plain, Item: plain},
		{ID: "multi-paragraph", Name: "Multiple Paragraphs", Arrangement: ArrangeStack, Container: plain, Item: plain.MarginBottom(1)},
	},
	models.SectionExperience: {
		{ID: "timeline", Name: "Timeline", Arrangement: ArrangeTimeline, Container: plain, Item: rail},
		{ID: "cards", Name: "Cards", Arrangement: ArrangeCards, Container: plain, Item: card},
		{ID: "minimal", Name: "Minimal", Arrangement: ArrangeStack, Container: plain, Item: plain},
	},
	models.SectionEducation: {
		{ID: "classic", Name: "Classic", Arrangement: ArrangeStack, Container: plain, Item: plain},
		{ID: "modern", Name: "Modern", Arrangement: ArrangeCards, Container: plain, Item: card},
		{ID: "compact", Name: "Compact", Arrangement: ArrangeInline, Container: plain, Item: dim},
	},
	models.SectionSkills: {
		{ID: "tags", Name: "Tags", Arrangement: ArrangeInline, Container: plain, Item: chip},
		{ID: "grid", Name: "Grid", Arrangement: ArrangeGrid, Columns: 3, Container: plain, Item: plain},
		{ID: "bars", Name: "Progress Bars", Arrangement: ArrangeBars, Container: plain, Item: plain},
	},
	models.SectionCertificates: {
		{ID: "grid", Name: "Grid", Arrangement: ArrangeGrid, Columns: 2, Container: plain, Item: card},
		{ID: "list", Name: "List", Arrangement: ArrangeStack, Container: plain, Item: plain},
		{ID: "compact", Name: "Compact", Arrangement: ArrangeInline, Container: plain, Item: dim},
	},
	models.SectionCourses: {
		{ID: "grid", Name: "Grid", Arrangement: ArrangeGrid, Columns: 2, Container: plain, Item: card},
		{ID: "timeline", Name: "Timeline", Arrangement: ArrangeTimeline, Container: plain, Item: rail},
		{ID: "compact", Name: "Compact", Arrangement: ArrangeInline, Container: plain, Item: dim},
	},
}

// Variants returns the variants of section, the default first.
func Variants(section models.SectionID) []Variant {
	return catalog[section]
}

// Lookup returns the variant id of section, or the default variant when id is
// unknown.
func Lookup(section models.SectionID, id string) Variant {
	vs := catalog[section]
	for _, v := range vs {
		if v.ID == id {
			return v
		}
	}
	if len(vs) == 0 {
		return Variant{ID: "default", Name: "Default", Arrangement: ArrangeStack, Container: plain, Item: plain}
	}
	return vs[0]
}

// NextVariant returns the variant following id, wrapping around.
func NextVariant(section models.SectionID, id string) Variant {
	vs := catalog[section]
	for i, v := range vs {
		if v.ID == id {
			return vs[(i+1)%len(vs)]
		}
	}
	return Lookup(section, "")
}
