package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-cv/pkg/field"
	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
	"github.com/pluqqy/pluqqy-cv/pkg/styles"
)

// clipboardRead is replaced in tests.
var clipboardRead = clipboard.ReadAll

// FieldEditor edits one rich-text field. Every change goes straight to the
// field's source; the editor itself only holds the engine.
type FieldEditor struct {
	label string
	field *field.Field
	width int
	// owned fields are not in the registry and must be synced by the editor.
	owned bool
}

// NewFieldEditor starts editing f with the cursor at the end of its content.
func NewFieldEditor(label string, f *field.Field, owned bool) *FieldEditor {
	return &FieldEditor{label: label, field: f, owned: owned}
}

// Field returns the field being edited.
func (e *FieldEditor) Field() *field.Field { return e.field }

// SetWidth sets the wrap width of the editor.
func (e *FieldEditor) SetWidth(width int) { e.width = width }

// Sync reconciles an owned field after the store changed.
func (e *FieldEditor) Sync() {
	if e.owned {
		e.field.Sync()
	}
}

func nextOption(opts []richtext.Option, current string) string {
	for i, o := range opts {
		if o.Value == current {
			if i+1 == len(opts) {
				return ""
			}
			return opts[i+1].Value
		}
	}
	return opts[0].Value
}

// Update applies a key to the engine. It reports done when the user leaves the
// field.
func (e *FieldEditor) Update(msg tea.KeyMsg) (done bool, status string) {
	eng := e.field.Engine()

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			break
		}
		if msg.Paste {
			eng.PasteText(string(msg.Runes))
		} else {
			eng.InsertText(string(msg.Runes))
		}
		return false, ""
	case tea.KeySpace:
		eng.InsertText(" ")
		return false, ""
	}

	switch msg.String() {
	case "esc":
		return true, ""
	case "left":
		eng.MoveCursor(-1, false)
	case "right":
		eng.MoveCursor(1, false)
	case "shift+left":
		eng.MoveCursor(-1, true)
	case "shift+right":
		eng.MoveCursor(1, true)
	case "home", "ctrl+a":
		eng.MoveToParagraphStart(false)
	case "end", "ctrl+e":
		eng.MoveToParagraphEnd(false)
	case "shift+home":
		eng.MoveToParagraphStart(true)
	case "shift+end":
		eng.MoveToParagraphEnd(true)
	case Shortcuts.SelectAll.Get():
		eng.SelectAll()
	case "backspace":
		eng.Backspace()
	case "delete":
		eng.DeleteForward()
	case "enter":
		eng.SplitParagraph()
	case "alt+enter":
		eng.InsertHardBreak()
	case "alt+b":
		eng.Exec(richtext.Command{Name: richtext.CmdBold})
	case "alt+i":
		eng.Exec(richtext.Command{Name: richtext.CmdItalic})
	case "alt+u":
		eng.Exec(richtext.Command{Name: richtext.CmdUnderline})
	case "alt+l":
		eng.Exec(richtext.Command{Name: richtext.CmdAlign, Value: string(richtext.AlignLeft)})
	case "alt+c":
		eng.Exec(richtext.Command{Name: richtext.CmdAlign, Value: string(richtext.AlignCenter)})
	case "alt+r":
		eng.Exec(richtext.Command{Name: richtext.CmdAlign, Value: string(richtext.AlignRight)})
	case "alt+f":
		eng.Exec(richtext.Command{Name: richtext.CmdFontFamily, Value: nextOption(richtext.FontFamilies, eng.ActiveFontFamily())})
	case "alt+s":
		eng.Exec(richtext.Command{Name: richtext.CmdFontSize, Value: nextOption(richtext.FontSizes, eng.ActiveFontSize())})
	case "ctrl+v":
		text, err := clipboardRead()
		if err != nil {
			return false, "Clipboard unavailable"
		}
		eng.PasteMarkdown(text)
	case "alt+v":
		text, err := clipboardRead()
		if err != nil {
			return false, "Clipboard unavailable"
		}
		eng.PasteText(text)
	}
	return false, ""
}

func markStyle(m richtext.Marks) lipgloss.Style {
	return lipgloss.NewStyle().Bold(m.Bold).Italic(m.Italic).Underline(m.Underline)
}

// View renders the content with the cursor and selection.
func (e *FieldEditor) View() string {
	eng := e.field.Engine()
	sel := eng.Selection()
	cursor := styles.CursorStyle.Reverse(true)

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(e.label) + "\n")

	if eng.IsEmpty() {
		b.WriteString(cursor.Render(" ") + styles.PlaceholderStyle.Render(eng.DisplayText()))
		b.WriteString("\n" + e.commandBar())
		return b.String()
	}

	pos := 0
	var lines []string
	for _, p := range eng.Paragraphs() {
		var line strings.Builder
		for _, r := range p.Runs {
			base := markStyle(r.Marks)
			for _, ch := range r.Text {
				s := string(ch)
				switch {
				case ch == '\n':
					if pos == sel.Head {
						line.WriteString(cursor.Render(" "))
					}
					line.WriteString("\n")
					pos++
					continue
				case pos == sel.Head && sel.Empty():
					s = cursor.Render(s)
				case !sel.Empty() && pos >= sel.From() && pos < sel.To():
					s = styles.SelectedStyle.Inherit(base).Render(s)
				default:
					s = base.Render(s)
				}
				line.WriteString(s)
				pos++
			}
		}
		if pos == sel.Head && sel.Empty() {
			line.WriteString(cursor.Render(" "))
		}
		text := line.String()
		if e.width > 0 {
			text = wordwrap.String(text, e.width)
			if p.Align != richtext.AlignLeft {
				text = lipgloss.NewStyle().Width(e.width).Align(alignPosition(p.Align)).Render(text)
			}
		}
		lines = append(lines, text)
		// The paragraph boundary takes one position.
		pos++
	}
	b.WriteString(strings.Join(lines, "\n"))
	if bar := e.commandBar(); bar != "" {
		b.WriteString("\n" + bar)
	}
	return b.String()
}

func alignPosition(a richtext.Alignment) lipgloss.Position {
	switch a {
	case richtext.AlignCenter:
		return lipgloss.Center
	case richtext.AlignRight:
		return lipgloss.Right
	}
	return lipgloss.Left
}

var (
	barStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(styles.ColorActive)).
			Padding(0, 1)
	barItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorNormal)).Padding(0, 1)
	barActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorWhite)).Background(lipgloss.Color(styles.ColorActive)).Padding(0, 1)
)

func renderItems(items []richtext.MenuItem) string {
	var parts []string
	for _, it := range items {
		if it.Active {
			parts = append(parts, barActiveStyle.Render(it.Label))
		} else {
			parts = append(parts, barItemStyle.Render(it.Label))
		}
	}
	return strings.Join(parts, "")
}

// commandBar renders the floating formatting bar. It is only shown while text
// is selected.
func (e *FieldEditor) commandBar() string {
	menu := e.field.Engine().Menu()
	if !menu.Visible {
		return ""
	}
	family := "Default"
	if menu.FontFamily != "" {
		family = richtext.Label(richtext.FontFamilies, menu.FontFamily)
	}
	size := "Default"
	if menu.FontSize != "" {
		size = richtext.Label(richtext.FontSizes, menu.FontSize)
	}
	sep := styles.DescriptionStyle.Render(" │ ")
	return barStyle.Render(renderItems(menu.Marks) + sep + renderItems(menu.Alignments) + sep +
		styles.DescriptionStyle.Render("Font: ") + family + sep +
		styles.DescriptionStyle.Render("Size: ") + size)
}
