package richtext

import "strings"

// DefaultPlaceholder is shown by an empty field when no placeholder is set.
const DefaultPlaceholder = "Click to edit..."

// Options configures an Engine.
type Options struct {
	Placeholder string
	// Typography enables typographic substitutions while typing.
	Typography bool
	// OnUpdate receives the markup after every change to the content.
	OnUpdate func(markup string)
}

// Selection is a range between an anchor and the cursor (head).
type Selection struct {
	Anchor int
	Head   int
}

// From returns the start of the range.
func (s Selection) From() int { return min(s.Anchor, s.Head) }

// To returns the end of the range.
func (s Selection) To() int { return max(s.Anchor, s.Head) }

// Empty reports whether the selection is a bare cursor.
func (s Selection) Empty() bool { return s.Anchor == s.Head }

// MarkType names a boolean mark.
type MarkType int

const (
	MarkBold MarkType = iota
	MarkItalic
	MarkUnderline
)

func (t MarkType) flag(m *Marks) *bool {
	switch t {
	case MarkItalic:
		return &m.Italic
	case MarkUnderline:
		return &m.Underline
	}
	return &m.Bold
}

// Engine is the editing state of one rich-text field: the content, the
// selection and the marks to apply to the next typed text.
type Engine struct {
	doc    *Doc
	sel    Selection
	stored *Marks
	opts   Options
	value  string
}

// New creates an engine holding content.
func New(content string, opts Options) *Engine {
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	e := &Engine{opts: opts}
	e.load(content)
	return e
}

func (e *Engine) load(content string) {
	e.doc = Parse(content)
	e.value = e.doc.Markup()
	e.stored = nil
	e.sel = Selection{Anchor: e.doc.Size(), Head: e.doc.Size()}
}

// Value returns the current markup. An empty field reports "".
func (e *Engine) Value() string { return e.value }

// IsEmpty reports whether the field holds no text.
func (e *Engine) IsEmpty() bool { return e.doc.IsEmpty() }

// Placeholder returns the text displayed while the field is empty.
func (e *Engine) Placeholder() string { return e.opts.Placeholder }

// DisplayText returns the plain text to show, the placeholder when empty.
func (e *Engine) DisplayText() string {
	if e.doc.IsEmpty() {
		return e.opts.Placeholder
	}
	return e.doc.PlainText()
}

// Paragraphs returns the content as marked runs.
func (e *Engine) Paragraphs() []Paragraph { return e.doc.Paragraphs() }

// Size is the largest cursor position.
func (e *Engine) Size() int { return e.doc.Size() }

// SetContent replaces the content without emitting an update. The cursor is
// moved to the end.
func (e *Engine) SetContent(markup string) {
	e.load(markup)
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection { return e.sel }

// SetSelection sets the selection, clamped to the content.
func (e *Engine) SetSelection(anchor, head int) {
	e.sel = Selection{Anchor: e.doc.clamp(anchor), Head: e.doc.clamp(head)}
	e.stored = nil
}

// SelectAll selects the whole content.
func (e *Engine) SelectAll() {
	e.SetSelection(0, e.doc.Size())
}

// MoveCursor moves the head by delta. Without extend the selection collapses.
func (e *Engine) MoveCursor(delta int, extend bool) {
	head := e.doc.clamp(e.sel.Head + delta)
	if !extend && !e.sel.Empty() && delta != 0 {
		if delta < 0 {
			head = e.sel.From()
		} else {
			head = e.sel.To()
		}
	}
	anchor := head
	if extend {
		anchor = e.sel.Anchor
	}
	e.SetSelection(anchor, head)
}

// MoveToParagraphStart moves the cursor to the start of its paragraph.
func (e *Engine) MoveToParagraphStart(extend bool) {
	pi, _ := e.doc.locate(e.sel.Head)
	e.moveTo(e.doc.position(pi, 0), extend)
}

// MoveToParagraphEnd moves the cursor to the end of its paragraph.
func (e *Engine) MoveToParagraphEnd(extend bool) {
	pi, _ := e.doc.locate(e.sel.Head)
	e.moveTo(e.doc.position(pi, len(e.doc.paras[pi].chars)), extend)
}

func (e *Engine) moveTo(pos int, extend bool) {
	anchor := pos
	if extend {
		anchor = e.sel.Anchor
	}
	e.SetSelection(anchor, pos)
}

// currentMarks are the marks applied to text typed at the cursor.
func (e *Engine) currentMarks() Marks {
	if e.stored != nil {
		return *e.stored
	}
	return e.doc.markAt(e.sel.From())
}

func (e *Engine) deleteSelection() int {
	from := e.sel.From()
	e.doc.remove(from, e.sel.To())
	e.sel = Selection{Anchor: from, Head: from}
	return from
}

// InsertText replaces the selection with s. Newlines start new paragraphs.
// Typographic substitutions apply when a single character is typed.
func (e *Engine) InsertText(s string) {
	if s == "" {
		return
	}
	m := e.currentMarks()
	pos := e.deleteSelection()
	runes := []rune(s)
	for _, r := range runes {
		if r == '\n' {
			e.doc.split(pos)
			pos++
			continue
		}
		pos = e.doc.insert(pos, []char{{r: r, m: m}})
	}
	if e.opts.Typography && len(runes) == 1 {
		pos = e.substitute(pos, m)
	}
	e.sel = Selection{Anchor: pos, Head: pos}
	e.stored = nil
	e.commit()
}

func (e *Engine) substitute(pos int, m Marks) int {
	repl, n, ok := typographic(e.doc.runeBefore(pos, 4))
	if !ok {
		return pos
	}
	start := pos - n
	e.doc.remove(start, pos)
	return e.doc.insert(start, marked(repl, m))
}

func marked(s string, m Marks) []char {
	out := make([]char, 0, len(s))
	for _, r := range s {
		out = append(out, char{r: r, m: m})
	}
	return out
}

// PasteText inserts s verbatim, one paragraph per line.
func (e *Engine) PasteText(s string) {
	s = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
	if s == "" {
		return
	}
	m := e.currentMarks()
	pos := e.deleteSelection()
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			e.doc.split(pos)
			pos++
		}
		pos = e.doc.insert(pos, marked(line, m))
	}
	e.sel = Selection{Anchor: pos, Head: pos}
	e.stored = nil
	e.commit()
}

// Backspace deletes the selection or the character before the cursor,
// joining paragraphs at a paragraph start.
func (e *Engine) Backspace() {
	if !e.sel.Empty() {
		e.deleteSelection()
		e.commit()
		return
	}
	if e.sel.Head == 0 {
		return
	}
	pos := e.sel.Head - 1
	e.doc.remove(pos, e.sel.Head)
	e.sel = Selection{Anchor: pos, Head: pos}
	e.commit()
}

// DeleteForward deletes the selection or the character after the cursor.
func (e *Engine) DeleteForward() {
	if !e.sel.Empty() {
		e.deleteSelection()
		e.commit()
		return
	}
	if e.sel.Head >= e.doc.Size() {
		return
	}
	e.doc.remove(e.sel.Head, e.sel.Head+1)
	e.commit()
}

// SplitParagraph replaces the selection with a paragraph break.
func (e *Engine) SplitParagraph() {
	pos := e.deleteSelection()
	e.doc.split(pos)
	e.sel = Selection{Anchor: pos + 1, Head: pos + 1}
	e.commit()
}

// InsertHardBreak replaces the selection with a line break inside the
// paragraph.
func (e *Engine) InsertHardBreak() {
	m := e.currentMarks()
	pos := e.deleteSelection()
	pos = e.doc.insert(pos, []char{{r: '\n', m: m}})
	e.sel = Selection{Anchor: pos, Head: pos}
	e.commit()
}

// IsActive reports whether t applies to the whole selection, or to text
// typed at the cursor when the selection is empty.
func (e *Engine) IsActive(t MarkType) bool {
	if e.sel.Empty() {
		m := e.currentMarks()
		return *t.flag(&m)
	}
	active, seen := true, false
	e.doc.each(e.sel.From(), e.sel.To(), func(c *char) {
		seen = true
		if !*t.flag(&c.m) {
			active = false
		}
	})
	return seen && active
}

// ToggleBold toggles bold on the selection.
func (e *Engine) ToggleBold() { e.toggle(MarkBold) }

// ToggleItalic toggles italic on the selection.
func (e *Engine) ToggleItalic() { e.toggle(MarkItalic) }

// ToggleUnderline toggles underline on the selection.
func (e *Engine) ToggleUnderline() { e.toggle(MarkUnderline) }

func (e *Engine) toggle(t MarkType) {
	on := !e.IsActive(t)
	e.updateMarks(func(m *Marks) { *t.flag(m) = on })
}

// updateMarks applies fn to every selected character, or to the stored
// marks when the selection is empty.
func (e *Engine) updateMarks(fn func(*Marks)) {
	if e.sel.Empty() {
		m := e.currentMarks()
		fn(&m)
		e.stored = &m
		return
	}
	e.doc.each(e.sel.From(), e.sel.To(), func(c *char) { fn(&c.m) })
	e.commit()
}

// SetTextAlign aligns every paragraph touched by the selection. Unknown
// alignments are ignored and reported with false.
func (e *Engine) SetTextAlign(a Alignment) bool {
	if _, ok := parseAlignment(string(a)); !ok {
		return false
	}
	fp, tp := e.doc.paraRange(e.sel.From(), e.sel.To())
	for i := fp; i <= tp; i++ {
		e.doc.paras[i].align = a
	}
	e.commit()
	return true
}

// ActiveAlign returns the alignment of the paragraph holding the cursor.
func (e *Engine) ActiveAlign() Alignment {
	pi, _ := e.doc.locate(e.sel.Head)
	return e.doc.paras[pi].align
}

// SetFontFamily applies a catalog font family. Values outside the catalog are
// ignored and reported with false.
func (e *Engine) SetFontFamily(family string) bool {
	if !ValidFontFamily(family) {
		return false
	}
	e.updateMarks(func(m *Marks) { m.FontFamily = family })
	return true
}

// UnsetFontFamily removes the font family from the selection.
func (e *Engine) UnsetFontFamily() {
	e.updateMarks(func(m *Marks) { m.FontFamily = "" })
}

// SetFontSize applies a catalog font size. Values outside the catalog are
// ignored and reported with false.
func (e *Engine) SetFontSize(size string) bool {
	size = strings.TrimSuffix(size, "px")
	if !ValidFontSize(size) {
		return false
	}
	e.updateMarks(func(m *Marks) { m.FontSize = size })
	return true
}

// UnsetFontSize removes the font size from the selection.
func (e *Engine) UnsetFontSize() {
	e.updateMarks(func(m *Marks) { m.FontSize = "" })
}

// ActiveFontFamily returns the font family shared by the selection, or "".
func (e *Engine) ActiveFontFamily() string {
	return e.shared(func(m Marks) string { return m.FontFamily })
}

// ActiveFontSize returns the font size shared by the selection, or "".
func (e *Engine) ActiveFontSize() string {
	return e.shared(func(m Marks) string { return m.FontSize })
}

func (e *Engine) shared(get func(Marks) string) string {
	if e.sel.Empty() {
		return get(e.currentMarks())
	}
	var v string
	first := true
	e.doc.each(e.sel.From(), e.sel.To(), func(c *char) {
		if first {
			v, first = get(c.m), false
		} else if get(c.m) != v {
			v = ""
		}
	})
	return v
}

// commit serializes the content and emits it when it changed.
func (e *Engine) commit() {
	v := e.doc.Markup()
	if v == e.value {
		return
	}
	e.value = v
	if e.opts.OnUpdate != nil {
		e.opts.OnUpdate(v)
	}
}
