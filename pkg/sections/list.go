// Package sections implements the list-level operations of the document's
// sections on top of the store. Every operation copies the entries it
// touches and replaces the whole section through store.Merge.
package sections

import (
	"slices"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// List edits one list-shaped section. Operations addressing an index that does
// not exist do nothing and report false.
type List[T models.Entry[T]] struct {
	st       *store.Store
	section  models.SectionID
	get      func(*models.CV) []T
	put      func(*[]T) store.Partial
	defaults func() T
}

func newList[T models.Entry[T]](st *store.Store, section models.SectionID, get func(*models.CV) []T, put func(*[]T) store.Partial, defaults func() T) *List[T] {
	return &List[T]{st: store.Must(st), section: section, get: get, put: put, defaults: defaults}
}

// Section returns the section edited by l.
func (l *List[T]) Section() models.SectionID { return l.section }

// Entries returns the current entries. The slice is shared with the snapshot
// and must not be modified.
func (l *List[T]) Entries() []T {
	return l.get(l.st.Snapshot())
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	return len(l.Entries())
}

func (l *List[T]) commit(items []T) {
	l.st.Merge(l.put(&items))
}

// Append adds entry at the end of the list.
func (l *List[T]) Append(entry T) {
	items := l.Entries()
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	l.commit(append(next, entry))
}

// AppendDefault adds the default entry of the section.
func (l *List[T]) AppendDefault() {
	l.Append(l.defaults())
}

// RemoveAt removes the entry at i. Later entries shift down by one.
func (l *List[T]) RemoveAt(i int) bool {
	items := l.Entries()
	if i < 0 || i >= len(items) {
		return false
	}
	l.commit(slices.Delete(slices.Clone(items), i, i+1))
	return true
}

// SetFieldAt sets the scalar key of the entry at i.
func (l *List[T]) SetFieldAt(i int, key, value string) bool {
	return l.update(i, func(e T) (T, bool) { return e.WithField(key, value) })
}

func (l *List[T]) update(i int, fn func(T) (T, bool)) bool {
	items := l.Entries()
	if i < 0 || i >= len(items) {
		return false
	}
	entry, ok := fn(items[i])
	if !ok {
		return false
	}
	next := slices.Clone(items)
	next[i] = entry
	l.commit(next)
	return true
}

// Sub returns the editor of the nested list key of every entry.
func (l *List[T]) Sub(key string) *SubList[T] {
	return &SubList[T]{list: l, key: key}
}

// Binding returns the presentation tuple of the section.
func (l *List[T]) Binding() Binding[T] {
	return Binding[T]{
		Entries:       l.Entries(),
		OnAppend:      l.AppendDefault,
		OnRemoveAt:    l.RemoveAt,
		OnFieldChange: l.SetFieldAt,
	}
}

// Binding is what a view of a list section needs: its entries and the
// callbacks that edit them.
type Binding[T any] struct {
	Entries       []T
	OnAppend      func()
	OnRemoveAt    func(i int) bool
	OnFieldChange func(i int, key, value string) bool
}

// SubList edits a nested list of strings, such as the responsibilities of an
// experience, one level below List.
type SubList[T models.Entry[T]] struct {
	list *List[T]
	key  string
}

// Items returns the nested list of entry i.
func (s *SubList[T]) Items(i int) []string {
	items := s.list.Entries()
	if i < 0 || i >= len(items) {
		return nil
	}
	v, _ := items[i].SubList(s.key)
	return v
}

// Append adds item to the nested list of entry i. An absent optional list is
// created.
func (s *SubList[T]) Append(i int, item string) bool {
	return s.list.update(i, func(e T) (T, bool) {
		cur, ok := e.SubList(s.key)
		if !ok {
			return e, false
		}
		next := make([]string, len(cur), len(cur)+1)
		copy(next, cur)
		return e.WithSubList(s.key, append(next, item))
	})
}

// AppendDefault adds the default item of the nested list to entry i.
func (s *SubList[T]) AppendDefault(i int) bool {
	return s.Append(i, models.DefaultSubListItem(s.key))
}

// RemoveAt removes item j of entry i. Removing the last item is allowed.
func (s *SubList[T]) RemoveAt(i, j int) bool {
	return s.list.update(i, func(e T) (T, bool) {
		cur, ok := e.SubList(s.key)
		if !ok || j < 0 || j >= len(cur) {
			return e, false
		}
		return e.WithSubList(s.key, slices.Delete(slices.Clone(cur), j, j+1))
	})
}

// SetAt replaces item j of entry i.
func (s *SubList[T]) SetAt(i, j int, value string) bool {
	return s.list.update(i, func(e T) (T, bool) {
		cur, ok := e.SubList(s.key)
		if !ok {
			return e, false
		}
		next, ok := models.WithItem(cur, j, value)
		if !ok {
			return e, false
		}
		return e.WithSubList(s.key, next)
	})
}
