// Package richtext implements the content model of a rich-text field: a list
// of aligned paragraphs whose characters carry inline marks, with conversion
// to and from the markup string stored in the document.
package richtext

import "strings"

// Marks are the inline formats of a character.
type Marks struct {
	Bold       bool
	Italic     bool
	Underline  bool
	FontFamily string
	FontSize   string
}

// IsZero reports whether no mark is set.
func (m Marks) IsZero() bool {
	return m == Marks{}
}

func (m Marks) hasStyle() bool {
	return m.FontFamily != "" || m.FontSize != ""
}

type char struct {
	r rune
	m Marks
}

type paragraph struct {
	align Alignment
	chars []char
}

// Run is a maximal span of text sharing the same marks.
type Run struct {
	Text  string
	Marks Marks
}

// Paragraph is a read-only view of one paragraph.
type Paragraph struct {
	Align Alignment
	Runs  []Run
}

// Text returns the paragraph text without marks.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Doc is the content of a field. A Doc always holds at least one paragraph.
// Positions address the gaps between characters; the boundary between two
// paragraphs counts as one position.
type Doc struct {
	paras []paragraph
}

func emptyDoc() *Doc {
	return &Doc{paras: []paragraph{{align: AlignLeft}}}
}

// Parse builds a Doc from markup. Malformed or unknown markup is kept as
// plain text; Parse never fails.
func Parse(markup string) *Doc {
	return parseMarkup(markup)
}

// Markup serializes d. An empty document serializes to "".
func (d *Doc) Markup() string {
	return serialize(d)
}

// Canonicalize returns the markup Parse(markup).Markup(), the form an engine
// holding markup would report as its value.
func Canonicalize(markup string) string {
	return Parse(markup).Markup()
}

// IsEmpty reports whether d holds no text.
func (d *Doc) IsEmpty() bool {
	return len(d.paras) == 1 && len(d.paras[0].chars) == 0
}

// Size is the largest valid position.
func (d *Doc) Size() int {
	n := len(d.paras) - 1
	for _, p := range d.paras {
		n += len(p.chars)
	}
	return n
}

// PlainText returns the text with paragraphs separated by a newline.
func (d *Doc) PlainText() string {
	var b strings.Builder
	for i, p := range d.paras {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range p.chars {
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

// Paragraphs returns the paragraphs of d as runs of equally marked text.
func (d *Doc) Paragraphs() []Paragraph {
	out := make([]Paragraph, len(d.paras))
	for i, p := range d.paras {
		out[i] = Paragraph{Align: p.align, Runs: runs(p.chars)}
	}
	return out
}

func runs(chars []char) []Run {
	var out []Run
	var b strings.Builder
	for i, c := range chars {
		if i > 0 && c.m != chars[i-1].m {
			out = append(out, Run{Text: b.String(), Marks: chars[i-1].m})
			b.Reset()
		}
		b.WriteRune(c.r)
	}
	if b.Len() > 0 {
		out = append(out, Run{Text: b.String(), Marks: chars[len(chars)-1].m})
	}
	return out
}

func (d *Doc) clone() *Doc {
	out := &Doc{paras: make([]paragraph, len(d.paras))}
	for i, p := range d.paras {
		out.paras[i] = paragraph{align: p.align, chars: append([]char(nil), p.chars...)}
	}
	return out
}

// locate maps a position to a paragraph index and an offset inside it.
func (d *Doc) locate(pos int) (int, int) {
	if pos < 0 {
		pos = 0
	}
	for i, p := range d.paras {
		if pos <= len(p.chars) {
			return i, pos
		}
		pos -= len(p.chars) + 1
	}
	last := len(d.paras) - 1
	return last, len(d.paras[last].chars)
}

func (d *Doc) position(para, off int) int {
	pos := 0
	for i := 0; i < para; i++ {
		pos += len(d.paras[i].chars) + 1
	}
	return pos + off
}

func (d *Doc) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if n := d.Size(); pos > n {
		return n
	}
	return pos
}

// insert places chars at pos and returns the position after them.
func (d *Doc) insert(pos int, chars []char) int {
	pi, off := d.locate(pos)
	p := &d.paras[pi]
	next := make([]char, 0, len(p.chars)+len(chars))
	next = append(next, p.chars[:off]...)
	next = append(next, chars...)
	next = append(next, p.chars[off:]...)
	p.chars = next
	return pos + len(chars)
}

// split breaks the paragraph at pos. The new paragraph keeps the alignment.
func (d *Doc) split(pos int) {
	pi, off := d.locate(pos)
	p := d.paras[pi]
	head := paragraph{align: p.align, chars: append([]char(nil), p.chars[:off]...)}
	tail := paragraph{align: p.align, chars: append([]char(nil), p.chars[off:]...)}
	paras := make([]paragraph, 0, len(d.paras)+1)
	paras = append(paras, d.paras[:pi]...)
	paras = append(paras, head, tail)
	paras = append(paras, d.paras[pi+1:]...)
	d.paras = paras
}

// remove deletes the range [from, to), joining paragraphs it spans.
func (d *Doc) remove(from, to int) {
	from, to = d.clamp(from), d.clamp(to)
	if from >= to {
		return
	}
	fp, fo := d.locate(from)
	tp, to2 := d.locate(to)
	joined := paragraph{align: d.paras[fp].align}
	joined.chars = append(append([]char(nil), d.paras[fp].chars[:fo]...), d.paras[tp].chars[to2:]...)
	paras := make([]paragraph, 0, len(d.paras)-(tp-fp))
	paras = append(paras, d.paras[:fp]...)
	paras = append(paras, joined)
	paras = append(paras, d.paras[tp+1:]...)
	d.paras = paras
}

// each calls fn for every character in [from, to).
func (d *Doc) each(from, to int, fn func(c *char)) {
	fp, fo := d.locate(from)
	tp, toff := d.locate(to)
	for pi := fp; pi <= tp; pi++ {
		start, end := 0, len(d.paras[pi].chars)
		if pi == fp {
			start = fo
		}
		if pi == tp {
			end = toff
		}
		for i := start; i < end; i++ {
			fn(&d.paras[pi].chars[i])
		}
	}
}

// paraRange returns the indexes of the paragraphs touched by [from, to].
func (d *Doc) paraRange(from, to int) (int, int) {
	fp, _ := d.locate(from)
	tp, _ := d.locate(to)
	return fp, tp
}

// markAt returns the marks of the character before pos, or after it at the
// start of a paragraph.
func (d *Doc) markAt(pos int) Marks {
	pi, off := d.locate(pos)
	p := d.paras[pi]
	switch {
	case off > 0:
		return p.chars[off-1].m
	case len(p.chars) > 0:
		return p.chars[0].m
	}
	return Marks{}
}

// runeBefore returns up to n runes of the paragraph ending at pos.
func (d *Doc) runeBefore(pos, n int) []rune {
	pi, off := d.locate(pos)
	start := off - n
	if start < 0 {
		start = 0
	}
	out := make([]rune, 0, off-start)
	for _, c := range d.paras[pi].chars[start:off] {
		out = append(out, c.r)
	}
	return out
}
