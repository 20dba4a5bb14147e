package sections

import (
	"strings"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// Layout is how the summary is split for editing.
type Layout string

const (
	LayoutSingle     Layout = "single"
	LayoutBullets    Layout = "bullets"
	LayoutParagraphs Layout = "paragraphs"
)

// ParagraphSeparator joins summary segments.
const ParagraphSeparator = "\n\n"

// SplitParagraphs segments a summary on blank lines, dropping blank segments.
func SplitParagraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ParagraphSeparator) {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// Summary edits the summary as one text or as a list of segments. The layout
// and the segments are view state; only the joined text is stored.
type Summary struct {
	st     *store.Store
	layout Layout
	paras  []string
}

// NewSummary creates a summary editor using layout.
func NewSummary(st *store.Store, layout Layout) *Summary {
	s := &Summary{st: store.Must(st), layout: normalizeLayout(layout)}
	s.paras = s.segment(s.st.Snapshot().Summary)
	return s
}

func normalizeLayout(l Layout) Layout {
	switch l {
	case LayoutBullets, LayoutParagraphs:
		return l
	}
	return LayoutSingle
}

func (s *Summary) segment(text string) []string {
	if s.layout == LayoutSingle {
		return []string{text}
	}
	return SplitParagraphs(text)
}

// Layout returns the current layout.
func (s *Summary) Layout() Layout { return s.layout }

// Paragraphs returns the segments being edited. When the stored summary was
// changed elsewhere the segments are rebuilt from it.
func (s *Summary) Paragraphs() []string {
	stored := s.st.Snapshot().Summary
	if strings.Join(s.paras, ParagraphSeparator) != stored {
		s.paras = s.segment(stored)
	}
	return append([]string(nil), s.paras...)
}

func (s *Summary) commit(paras []string) {
	s.paras = paras
	text := strings.Join(paras, ParagraphSeparator)
	s.st.Merge(store.Partial{Summary: &text})
}

// SetParagraph replaces segment i.
func (s *Summary) SetParagraph(i int, content string) bool {
	paras := s.Paragraphs()
	if s.layout == LayoutSingle {
		if i != 0 {
			return false
		}
		s.commit([]string{content})
		return true
	}
	if i < 0 || i >= len(paras) {
		return false
	}
	paras[i] = content
	s.commit(paras)
	return true
}

// AddParagraph appends an empty segment. It does nothing in the single layout.
func (s *Summary) AddParagraph() bool {
	if s.layout == LayoutSingle {
		return false
	}
	s.commit(append(s.Paragraphs(), ""))
	return true
}

// RemoveParagraph removes segment i. It does nothing in the single layout.
func (s *Summary) RemoveParagraph(i int) bool {
	if s.layout == LayoutSingle {
		return false
	}
	paras := s.Paragraphs()
	if i < 0 || i >= len(paras) {
		return false
	}
	s.commit(append(paras[:i], paras[i+1:]...))
	return true
}

// CanRemove reports whether views should offer removing a segment.
func (s *Summary) CanRemove() bool {
	return s.layout != LayoutSingle && len(s.Paragraphs()) > 1
}

// ChangeLayout switches the layout and converts the segments: the single
// layout joins them, the others split every segment on blank lines.
func (s *Summary) ChangeLayout(l Layout) {
	paras := s.Paragraphs()
	s.layout = normalizeLayout(l)
	var next []string
	if s.layout == LayoutSingle {
		next = []string{strings.Join(paras, ParagraphSeparator)}
	} else {
		for _, p := range paras {
			next = append(next, SplitParagraphs(p)...)
		}
	}
	s.commit(next)
}

// Text returns the stored summary.
func (s *Summary) Text() string {
	return s.st.Snapshot().Summary
}

// Section returns the section edited by s.
func (s *Summary) Section() models.SectionID { return models.SectionSummary }
