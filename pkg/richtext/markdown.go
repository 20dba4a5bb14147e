package richtext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown converts markdown into a Doc. Emphasis becomes italic, strong
// emphasis becomes bold and every block starts a paragraph. Links keep their
// text only.
func FromMarkdown(src string) *Doc {
	source := []byte(src)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	p := &parser{doc: &Doc{}}
	marks := []Marks{{}}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		top := marks[len(marks)-1]
		switch n := n.(type) {
		case *ast.Document, *ast.List, *ast.ListItem, *ast.Blockquote:
			// containers; their children are blocks
		case *ast.Emphasis:
			if entering {
				m := top
				if n.Level >= 2 {
					m.Bold = true
				} else {
					m.Italic = true
				}
				marks = append(marks, m)
			} else {
				marks = marks[:len(marks)-1]
			}
		case *ast.Text:
			if entering {
				p.appendText(string(n.Segment.Value(source)), top)
				switch {
				case n.HardLineBreak():
					p.appendText("\n", top)
				case n.SoftLineBreak():
					p.appendText(" ", top)
				}
			}
		case *ast.String:
			if entering {
				p.appendText(string(n.Value), top)
			}
		case *ast.AutoLink:
			if entering {
				p.appendText(string(n.URL(source)), top)
			}
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					p.startParagraph(AlignLeft)
					line := string(seg.Value(source))
					if len(line) > 0 && line[len(line)-1] == '\n' {
						line = line[:len(line)-1]
					}
					p.appendText(line, top)
				}
				p.open = false
			}
			return ast.WalkSkipChildren, nil
		default:
			if n.Type() == ast.TypeBlock {
				if entering {
					p.startParagraph(AlignLeft)
				} else {
					p.open = false
				}
			}
		}
		return ast.WalkContinue, nil
	})

	if len(p.doc.paras) == 0 {
		return emptyDoc()
	}
	return p.doc
}

// PasteMarkdown replaces the selection with the converted markdown. Pasted
// paragraphs are inserted at the cursor; the first joins the paragraph being
// edited.
func (e *Engine) PasteMarkdown(src string) {
	pasted := FromMarkdown(src)
	if pasted.IsEmpty() {
		return
	}
	pos := e.deleteSelection()
	for i, para := range pasted.paras {
		if i > 0 {
			e.doc.split(pos)
			pos++
		}
		pos = e.doc.insert(pos, para.chars)
	}
	e.sel = Selection{Anchor: pos, Head: pos}
	e.stored = nil
	e.commit()
}
