package tui

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/rawtext"
	"github.com/pluqqy/pluqqy-cv/pkg/styles"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// RawEditor shows the raw notation of one section at a time. Edits are handed
// to the raw buffers, which merge them into the document when they decode.
type RawEditor struct {
	sync    *rawtext.Sync
	section models.SectionID
	area    textarea.Model
	lastErr error
	applied bool
}

// NewRawEditor creates a raw editor over sync.
func NewRawEditor(sync *rawtext.Sync) *RawEditor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(20)
	return &RawEditor{sync: sync, area: ta}
}

// Section returns the section shown.
func (r *RawEditor) Section() models.SectionID { return r.section }

// Value returns the text in the editor.
func (r *RawEditor) Value() string { return r.area.Value() }

// Err returns the decode error of the last edit, if any.
func (r *RawEditor) Err() error { return r.lastErr }

// Open shows section and focuses the editor.
func (r *RawEditor) Open(section models.SectionID) tea.Cmd {
	r.section = section
	r.lastErr = nil
	r.applied = false
	r.area.SetValue(r.sync.Text(section))
	r.area.CursorStart()
	return r.area.Focus()
}

// Blur removes focus from the editor.
func (r *RawEditor) Blur() { r.area.Blur() }

// Refresh reloads the shown text when the document changed. Sections that
// have been edited keep their buffer.
func (r *RawEditor) Refresh() {
	if r.section == "" || r.sync.Touched(r.section) {
		return
	}
	if text := r.sync.Text(r.section); text != r.area.Value() {
		r.area.SetValue(text)
	}
}

// SetSize sets the size of the text area.
func (r *RawEditor) SetSize(width, height int) {
	r.area.SetWidth(max(width, 10))
	r.area.SetHeight(max(height, 3))
}

func (r *RawEditor) shift(delta int) tea.Cmd {
	all := models.Sections()
	for i, s := range all {
		if s == r.section {
			return r.Open(all[(i+delta+len(all))%len(all)])
		}
	}
	return r.Open(all[0])
}

// Update handles a message for the raw panel and reports when the panel
// should close.
func (r *RawEditor) Update(msg tea.Msg) (done bool, status string, cmd tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			r.Blur()
			return true, "", nil
		case "alt+]":
			return false, "", r.shift(1)
		case "alt+[":
			return false, "", r.shift(-1)
		case Shortcuts.ResetBuffer.Get():
			r.sync.Reset(r.section)
			r.lastErr = nil
			r.applied = false
			r.area.SetValue(r.sync.Text(r.section))
			return false, r.section.Label() + " buffer reset", nil
		case Shortcuts.CopyBuffer.Get():
			if err := clipboardWrite(r.area.Value()); err != nil {
				return false, "Clipboard unavailable", nil
			}
			return false, "✓ Copied " + r.section.Label() + " to clipboard", nil
		}
	}

	before := r.area.Value()
	r.area, cmd = r.area.Update(msg)
	if after := r.area.Value(); after != before {
		out := r.sync.Edit(r.section, after)
		r.applied = out.Applied
		r.lastErr = out.Err
	}
	return false, "", cmd
}

func (r *RawEditor) tabs() string {
	var parts []string
	for _, s := range models.Sections() {
		parts = append(parts, styles.GetTabStyle(s == r.section, r.sync.Touched(s)).Render(s.Label()))
	}
	return strings.Join(parts, " ")
}

func (r *RawEditor) status() string {
	if r.lastErr == nil {
		if r.applied {
			return styles.DescriptionStyle.Render("✓ applied")
		}
		return ""
	}
	var de *rawtext.DecodeError
	if errors.As(r.lastErr, &de) && len(de.Errors) > 0 {
		first := de.Errors[0]
		return styles.ErrorStyle.Render("✗ not applied: " + first.Field + ": " + first.Message)
	}
	return styles.ErrorStyle.Render("✗ not applied: " + r.lastErr.Error())
}

// View renders the tabs, the text and the decode status.
func (r *RawEditor) View() string {
	view := r.tabs() + "\n" + r.area.View()
	if s := r.status(); s != "" {
		view += "\n" + s
	}
	return view
}
