// Package composer renders a CV snapshot. Rendering is read-only: nothing here
// touches the document store.
package composer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
	"github.com/pluqqy/pluqqy-cv/pkg/sections"
	"github.com/pluqqy/pluqqy-cv/pkg/styles"
)

// RemoveMarker is drawn after items that can be removed when controls are on.
const RemoveMarker = "✕"

// ExperienceView holds the per-entry toggles of the experience section.
type ExperienceView struct {
	HideBullets      bool
	HideTechnologies bool
}

// Options is the presentation state of a render. None of it comes from the
// document.
type Options struct {
	Width    int
	Template string
	// Variants maps a section to a variant id; missing sections use the
	// default variant.
	Variants   map[models.SectionID]string
	Experience map[int]ExperienceView
	// Controls draws remove markers next to removable items.
	Controls bool
}

func (o Options) variant(s models.SectionID) styles.Variant {
	return styles.Lookup(s, o.Variants[s])
}

// ComposeCV renders every section of cv for the terminal.
func ComposeCV(cv *models.CV, opts Options) (string, error) {
	if cv == nil {
		return "", fmt.Errorf("cannot compose CV: nil document provided")
	}

	tmpl := styles.LookupTemplate(opts.Template)
	var blocks []string
	for _, s := range models.Sections() {
		block, err := ComposeSection(cv, s, opts)
		if err != nil {
			return "", err
		}
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, strings.Repeat("\n", tmpl.Gap+1)) + "\n", nil
}

// ComposeSection renders one section with its heading. Empty list sections
// render as the heading alone.
func ComposeSection(cv *models.CV, section models.SectionID, opts Options) (string, error) {
	if cv == nil {
		return "", fmt.Errorf("cannot compose section %s: nil document provided", section)
	}

	tmpl := styles.LookupTemplate(opts.Template)
	v := opts.variant(section)
	c := &composer{cv: cv, opts: opts, tmpl: tmpl, variant: v}

	var body string
	switch section {
	case models.SectionContact:
		body = c.contact()
	case models.SectionSummary:
		body = c.summary()
	case models.SectionExperience:
		body = c.experience()
	case models.SectionEducation:
		body = c.education()
	case models.SectionSkills:
		body = c.skills()
	case models.SectionCertificates:
		body = c.certificates()
	case models.SectionCourses:
		body = c.courses()
	default:
		return "", fmt.Errorf("cannot compose section %s: unknown section", section)
	}

	heading := tmpl.Heading.Render(richInline(cv.Headings.Heading(section)))
	if body == "" {
		return heading, nil
	}
	return tmpl.Section.Render(heading + "\n" + v.Container.Render(body)), nil
}

type composer struct {
	cv      *models.CV
	opts    Options
	tmpl    styles.Template
	variant styles.Variant
}

func (c *composer) remove(removable bool) string {
	if !c.opts.Controls || !removable {
		return ""
	}
	return " " + styles.RemoveControlStyle.Render(RemoveMarker)
}

func (c *composer) contact() string {
	info := c.cv.ContactInfo
	if info == nil {
		return ""
	}
	name := c.tmpl.Name.Render(richInline(info.Name))

	var rows []string
	for _, key := range info.Keys() {
		if key == models.ContactNameKey {
			continue
		}
		value, _ := info.Get(key)
		text := richInline(value)
		if text == "" {
			if !c.opts.Controls {
				continue
			}
			text = styles.PlaceholderStyle.Render(richtext.DefaultPlaceholder)
		}
		spec, _ := models.LookupContactField(key)
		label := styles.DescriptionStyle.Render(spec.Label + ":")
		rows = append(rows, c.variant.Item.Render(label+" "+text)+c.remove(true))
	}

	switch c.variant.Arrangement {
	case styles.ArrangeCentered:
		lines := append([]string{name}, rows...)
		if c.opts.Width <= 0 {
			return lipgloss.JoinVertical(lipgloss.Center, lines...)
		}
		for i, l := range lines {
			lines[i] = lipgloss.PlaceHorizontal(c.opts.Width, lipgloss.Center, l)
		}
		return strings.Join(lines, "\n")
	case styles.ArrangeInline:
		if len(rows) == 0 {
			return name
		}
		return name + "\n" + strings.Join(rows, " · ")
	case styles.ArrangeGrid:
		if len(rows) == 0 {
			return name
		}
		return name + "\n" + grid(rows, c.variant.Columns, c.opts.Width)
	}
	return strings.Join(append([]string{name}, rows...), "\n")
}

func (c *composer) summary() string {
	text := c.cv.Summary
	switch c.variant.ID {
	case "bullet-points":
		paras := sections.SplitParagraphs(text)
		var lines []string
		for _, p := range paras {
			lines = append(lines, bullet(richInline(p), c.opts.Width)+c.remove(len(paras) > 1))
		}
		return strings.Join(lines, "\n")
	case "multi-paragraph":
		paras := sections.SplitParagraphs(text)
		var blocks []string
		for _, p := range paras {
			blocks = append(blocks, richBlock(p, c.opts.Width)+c.remove(len(paras) > 1))
		}
		return strings.Join(blocks, "\n\n")
	}
	return richBlock(text, c.opts.Width)
}

func dateRange(start string, end *string) string {
	to := "Present"
	if end != nil && plain(*end) != "" {
		to = richInline(*end)
	}
	return richInline(start) + " - " + to
}

func (c *composer) experience() string {
	var entries []string
	for i, e := range c.cv.Experiences {
		view := c.opts.Experience[i]
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(richInline(e.Position)))
		if company := richInline(e.Company); company != "" {
			b.WriteString(" · " + company)
		}
		b.WriteString(c.remove(true) + "\n")
		b.WriteString(styles.DescriptionStyle.Render(dateRange(e.StartDate, e.EndDate)))

		if !view.HideBullets && len(e.Responsibilities) > 0 {
			for _, r := range e.Responsibilities {
				b.WriteString("\n" + bullet(richInline(r), c.opts.Width) + c.remove(len(e.Responsibilities) > 1))
			}
		}
		if !view.HideTechnologies && len(e.Technologies) > 0 {
			var tags []string
			for _, t := range e.Technologies {
				tags = append(tags, richInline(t)+c.remove(len(e.Technologies) > 1))
			}
			b.WriteString("\n" + styles.DescriptionStyle.Render("Technologies: ") + strings.Join(tags, ", "))
		}
		entries = append(entries, c.entry(b.String()))
	}
	return c.arrange(entries)
}

func (c *composer) education() string {
	var entries []string
	for _, e := range c.cv.Education {
		var b strings.Builder
		degree := richInline(e.Degree)
		if major := richInline(e.Major); major != "" {
			degree += " in " + major
		}
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(degree) + c.remove(true) + "\n")
		b.WriteString(richInline(e.Institution))
		if year := richInline(e.GraduationYear); year != "" {
			b.WriteString(" · " + year)
		}
		if e.GPA != nil && plain(*e.GPA) != "" {
			b.WriteString(" · GPA " + richInline(*e.GPA))
		}
		if c.variant.Arrangement != styles.ArrangeInline {
			for _, a := range e.Activities {
				b.WriteString("\n" + bullet(richInline(a), c.opts.Width) + c.remove(true))
			}
		}
		entries = append(entries, c.entry(b.String()))
	}
	return c.arrange(entries)
}

func (c *composer) skills() string {
	var items []string
	for _, s := range c.cv.Skills {
		name := richInline(s.Name)
		level := styles.LevelStyle(s.Level).Render(string(s.Level))
		switch c.variant.Arrangement {
		case styles.ArrangeBars:
			items = append(items, fmt.Sprintf("%-24s %s %s", name, styles.ProgressBar(s.Level.Percent(), 20), level)+c.remove(true))
		case styles.ArrangeInline:
			items = append(items, c.variant.Item.Render(name+" · "+string(s.Level))+c.remove(true))
		default:
			items = append(items, name+" "+level+c.remove(true))
		}
	}
	if c.variant.Arrangement == styles.ArrangeInline {
		return strings.Join(items, " ")
	}
	return c.arrange(items)
}

func (c *composer) certificates() string {
	var entries []string
	for _, cert := range c.cv.Certificates {
		line := lipgloss.NewStyle().Bold(true).Render(richInline(cert.Name)) + c.remove(true)
		meta := joinNonEmpty(" · ", richInline(cert.Issuer), richInline(cert.Date))
		entries = append(entries, c.entry(line+"\n"+styles.DescriptionStyle.Render(meta)))
	}
	return c.arrange(entries)
}

func (c *composer) courses() string {
	var entries []string
	for _, course := range c.cv.Courses {
		line := lipgloss.NewStyle().Bold(true).Render(richInline(course.Name)) + c.remove(true)
		meta := joinNonEmpty(" · ", richInline(course.Platform), richInline(course.CompletionDate))
		entries = append(entries, c.entry(line+"\n"+styles.DescriptionStyle.Render(meta)))
	}
	return c.arrange(entries)
}

// entry draws one entry with the item style of the variant. Compact variants
// fold the entry onto a single line.
func (c *composer) entry(s string) string {
	if c.variant.Arrangement == styles.ArrangeInline {
		s = strings.Join(strings.Split(s, "\n"), " · ")
	}
	if c.variant.Arrangement == styles.ArrangeStack {
		head, rest, found := strings.Cut(s, "\n")
		if found {
			s = head + "\n" + indent.String(rest, 2)
		}
	}
	return c.variant.Item.Render(s)
}

func (c *composer) arrange(entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	switch c.variant.Arrangement {
	case styles.ArrangeGrid:
		return grid(entries, c.variant.Columns, c.opts.Width)
	case styles.ArrangeInline:
		return strings.Join(entries, "\n")
	}
	return strings.Join(entries, "\n\n")
}

// grid lays cells out in rows of cols columns.
func grid(cells []string, cols, width int) string {
	if cols < 1 {
		cols = 1
	}
	cellWidth := 0
	if width > 0 {
		cellWidth = width / cols
	}
	cell := lipgloss.NewStyle().PaddingRight(2)
	if cellWidth > 0 {
		cell = cell.Width(cellWidth)
	}
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		var row []string
		for _, s := range cells[i:end] {
			row = append(row, cell.Render(s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func bullet(text string, width int) string {
	if width > 4 {
		text = wrapIndented(text, width-2)
	}
	return "• " + text
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
