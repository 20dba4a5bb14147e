package composer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
)

// runStyle maps the marks of a run to a terminal style. Font family and size
// have no terminal equivalent and are ignored.
func runStyle(m richtext.Marks) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(m.Bold).
		Italic(m.Italic).
		Underline(m.Underline)
}

func renderRuns(runs []richtext.Run) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Marks.IsZero() {
			b.WriteString(r.Text)
			continue
		}
		// Styles are applied per line so hard breaks survive rendering.
		lines := strings.Split(r.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(runStyle(r.Marks).Render(line))
			}
		}
	}
	return b.String()
}

func position(a richtext.Alignment) lipgloss.Position {
	switch a {
	case richtext.AlignCenter:
		return lipgloss.Center
	case richtext.AlignRight:
		return lipgloss.Right
	}
	return lipgloss.Left
}

// richBlock renders a rich-text value as wrapped, aligned paragraphs.
func richBlock(markup string, width int) string {
	doc := richtext.Parse(markup)
	if doc.IsEmpty() {
		return ""
	}
	var paras []string
	for _, p := range doc.Paragraphs() {
		text := renderRuns(p.Runs)
		if width > 0 {
			text = wordwrap.String(text, width)
			if p.Align != richtext.AlignLeft {
				text = lipgloss.NewStyle().Width(width).Align(position(p.Align)).Render(text)
			}
		}
		paras = append(paras, text)
	}
	return strings.Join(paras, "\n")
}

// richInline renders a rich-text value on a single line.
func richInline(markup string) string {
	doc := richtext.Parse(markup)
	var parts []string
	for _, p := range doc.Paragraphs() {
		if text := renderRuns(p.Runs); text != "" {
			parts = append(parts, strings.ReplaceAll(text, "\n", " "))
		}
	}
	return strings.Join(parts, " ")
}

// markdownInline converts a rich-text value to inline markdown.
func markdownInline(markup string) string {
	doc := richtext.Parse(markup)
	var parts []string
	for _, p := range doc.Paragraphs() {
		if text := markdownRuns(p.Runs); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func markdownRuns(runs []richtext.Run) string {
	var b strings.Builder
	for _, r := range runs {
		text := strings.ReplaceAll(r.Text, "\n", "  \n")
		if strings.TrimSpace(text) == "" {
			b.WriteString(text)
			continue
		}
		// Markers must hug the text, so surrounding spaces stay outside.
		trimmed := strings.TrimSpace(text)
		lead := text[:strings.Index(text, trimmed)]
		trail := text[len(lead)+len(trimmed):]
		switch {
		case r.Marks.Bold && r.Marks.Italic:
			trimmed = "***" + trimmed + "***"
		case r.Marks.Bold:
			trimmed = "**" + trimmed + "**"
		case r.Marks.Italic:
			trimmed = "*" + trimmed + "*"
		}
		if r.Marks.Underline {
			trimmed = "<u>" + trimmed + "</u>"
		}
		b.WriteString(lead + trimmed + trail)
	}
	return b.String()
}

// plain returns the text of a rich-text value with paragraphs on their own
// lines.
func plain(markup string) string {
	return richtext.PlainText(markup)
}

// wrapIndented wraps s to width and indents the continuation lines so they
// line up under a bullet.
func wrapIndented(s string, width int) string {
	wrapped := wordwrap.String(s, width)
	head, rest, found := strings.Cut(wrapped, "\n")
	if !found {
		return wrapped
	}
	return head + "\n" + indent.String(rest, 2)
}
