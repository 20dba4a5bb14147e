// Package field binds rich-text engines to string leaves of the document and
// keeps them in step with the store without disturbing an edit in progress.
package field

import (
	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// Source is the presentation pair of a field: the authoritative value and the
// callback that requests an update of it.
type Source struct {
	Value    func() string
	OnChange func(string)
}

// PathSource binds a field to the string leaf at path.
func PathSource(st *store.Store, path store.Path) Source {
	st = store.Must(st)
	return Source{
		Value: func() string {
			v, _ := st.Get(path)
			return v
		},
		OnChange: func(v string) {
			st.SetField(path, v)
		},
	}
}

// Field is a rich-text engine bound to a Source.
type Field struct {
	src     Source
	engine  *richtext.Engine
	reloads int
}

// New creates a field holding the current value of src. Every change made in
// the engine is forwarded to src.OnChange before opts.OnUpdate is called.
func New(src Source, opts richtext.Options) *Field {
	f := &Field{src: src}
	next := opts.OnUpdate
	opts.OnUpdate = func(markup string) {
		if f.src.OnChange != nil {
			f.src.OnChange(markup)
		}
		if next != nil {
			next(markup)
		}
	}
	f.engine = richtext.New(src.Value(), opts)
	return f
}

// Engine returns the editing state of the field.
func (f *Field) Engine() *richtext.Engine { return f.engine }

// Value returns the authoritative value.
func (f *Field) Value() string { return f.src.Value() }

// Reloads counts the times Sync replaced the engine content.
func (f *Field) Reloads() int { return f.reloads }

// Sync reloads the engine from the authoritative value when the two differ,
// and reports whether it did. An equal value leaves content, cursor and
// selection untouched.
func (f *Field) Sync() bool {
	v := f.src.Value()
	if !NeedsReload(v, f.engine.Value()) {
		return false
	}
	f.engine.SetContent(v)
	f.reloads++
	return true
}

// NeedsReload reports whether an engine whose serialized value is current must
// be reloaded to show authoritative. Values that differ only in markup
// spelling, such as plain text against its paragraph form, are equal.
func NeedsReload(authoritative, current string) bool {
	if authoritative == current {
		return false
	}
	return richtext.Canonicalize(authoritative) != current
}
