package richtext

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "blockquote": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var whitespace = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\t", " ")

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type parser struct {
	doc  *Doc
	open bool
}

func parseMarkup(markup string) *Doc {
	if strings.TrimSpace(markup) == "" {
		return emptyDoc()
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(escapeUnknownTags(markup)), body)
	if err != nil {
		return plainDoc(markup)
	}

	p := &parser{doc: &Doc{}}
	for _, n := range nodes {
		p.walk(n, Marks{}, 0)
	}
	if len(p.doc.paras) == 0 {
		return emptyDoc()
	}
	return p.doc
}

// escapeUnknownTags turns tags that are not HTML elements, such as "<Go>" or
// "<T>", into literal text so their content survives parsing.
func escapeUnknownTags(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var sb strings.Builder
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return sb.String()
			}
			return markup
		}
		raw := string(z.Raw())
		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == 0 {
				raw = html.EscapeString(raw)
			}
		}
		sb.WriteString(raw)
	}
}

func plainDoc(text string) *Doc {
	d := emptyDoc()
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			d.paras = append(d.paras, paragraph{align: AlignLeft})
		}
		for _, r := range line {
			d.paras[i].chars = append(d.paras[i].chars, char{r: r})
		}
	}
	return d
}

// startParagraph opens a paragraph, reusing the open one while it is empty.
func (p *parser) startParagraph(align Alignment) {
	if p.open && p.current() == 0 {
		p.doc.paras[len(p.doc.paras)-1].align = align
		return
	}
	p.doc.paras = append(p.doc.paras, paragraph{align: align})
	p.open = true
}

// current is the length of the open paragraph.
func (p *parser) current() int {
	if len(p.doc.paras) == 0 {
		return 0
	}
	return len(p.doc.paras[len(p.doc.paras)-1].chars)
}

func (p *parser) appendText(s string, m Marks) {
	if !p.open {
		p.startParagraph(AlignLeft)
	}
	last := &p.doc.paras[len(p.doc.paras)-1]
	for _, r := range s {
		last.chars = append(last.chars, char{r: r, m: m})
	}
}

// walk adds n to the document. depth counts enclosing elements; text with no
// enclosing element keeps its line breaks as hard breaks.
func (p *parser) walk(n *html.Node, m Marks, depth int) {
	switch n.Type {
	case html.TextNode:
		text := n.Data
		if strings.TrimSpace(text) == "" && (!p.open || (p.current() == 0 && strings.ContainsAny(text, "\r\n"))) {
			return
		}
		if depth == 0 {
			text = lineEndings.Replace(text)
		} else {
			text = whitespace.Replace(text)
		}
		p.appendText(text, m)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c, m, depth)
		}
		return
	}

	style := parseStyle(attr(n, "style"))
	switch n.Data {
	case "script", "style", "head", "title":
		return
	case "br":
		p.appendText("\n", m)
		return
	case "strong", "b":
		m.Bold = true
	case "em", "i":
		m.Italic = true
	case "u":
		m.Underline = true
	}
	if f := style["font-family"]; ValidFontFamily(f) {
		m.FontFamily = f
	}
	if s := strings.TrimSuffix(style["font-size"], "px"); ValidFontSize(s) {
		m.FontSize = s
	}

	block := blockTags[n.Data]
	if block {
		align, _ := parseAlignment(style["text-align"])
		p.startParagraph(align)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, m, depth+1)
	}
	if block {
		p.open = false
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// parseStyle reads an inline style attribute into lower-cased properties.
func parseStyle(s string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.Trim(strings.TrimSpace(v), `"'`)
		if k != "" {
			out[k] = v
		}
	}
	return out
}

func serialize(d *Doc) string {
	if d.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for _, p := range d.paras {
		if p.align == AlignLeft || p.align == "" {
			b.WriteString("<p>")
		} else {
			b.WriteString(`<p style="text-align: ` + string(p.align) + `">`)
		}
		for _, r := range runs(p.chars) {
			writeRun(&b, r)
		}
		b.WriteString("</p>")
	}
	return b.String()
}

func writeRun(b *strings.Builder, r Run) {
	var closers []string
	if r.Marks.Bold {
		b.WriteString("<strong>")
		closers = append(closers, "</strong>")
	}
	if r.Marks.Italic {
		b.WriteString("<em>")
		closers = append(closers, "</em>")
	}
	if r.Marks.Underline {
		b.WriteString("<u>")
		closers = append(closers, "</u>")
	}
	if r.Marks.hasStyle() {
		var decls []string
		if r.Marks.FontFamily != "" {
			decls = append(decls, "font-family: "+r.Marks.FontFamily)
		}
		if r.Marks.FontSize != "" {
			decls = append(decls, "font-size: "+r.Marks.FontSize+"px")
		}
		b.WriteString(`<span style="` + strings.Join(decls, "; ") + `">`)
		closers = append(closers, "</span>")
	}

	lines := strings.Split(r.Text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(escaper.Replace(line))
	}

	for i := len(closers) - 1; i >= 0; i-- {
		b.WriteString(closers[i])
	}
}

// PlainText strips the markup, separating paragraphs with a newline.
func PlainText(markup string) string {
	return Parse(markup).PlainText()
}
