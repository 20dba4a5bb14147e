package field

import (
	"log/slog"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// Registry owns the fields opened on a store and reconciles all of them after
// every published snapshot. Fields whose path no longer resolves, for example
// after the entry holding them was removed, are dropped.
type Registry struct {
	st     *store.Store
	opts   richtext.Options
	fields map[string]*Field
	paths  map[string]store.Path
	cancel func()
	logger *slog.Logger
}

// NewRegistry subscribes a registry to st. It panics if st is nil.
func NewRegistry(st *store.Store, opts richtext.Options, logger *slog.Logger) *Registry {
	st = store.Must(st)
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		st:     st,
		opts:   opts,
		fields: make(map[string]*Field),
		paths:  make(map[string]store.Path),
		logger: logger,
	}
	r.cancel = st.Subscribe(func(_, next *models.CV) { r.sync(next) })
	return r
}

// Open returns the field bound to path, creating it on first use. It reports
// false when path does not address a string leaf.
func (r *Registry) Open(path store.Path) (*Field, bool) {
	key := path.String()
	if f, ok := r.fields[key]; ok {
		return f, true
	}
	if _, ok := r.st.Get(path); !ok {
		return nil, false
	}
	f := New(PathSource(r.st, path), r.opts)
	r.fields[key] = f
	r.paths[key] = path
	return f, true
}

// Lookup returns the open field bound to path.
func (r *Registry) Lookup(path store.Path) (*Field, bool) {
	f, ok := r.fields[path.String()]
	return f, ok
}

// Len returns the number of open fields.
func (r *Registry) Len() int { return len(r.fields) }

// Close drops every field and stops listening to the store.
func (r *Registry) Close() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.fields = make(map[string]*Field)
	r.paths = make(map[string]store.Path)
}

func (r *Registry) sync(cv *models.CV) {
	for key, f := range r.fields {
		if _, ok := store.Lookup(cv, r.paths[key]); !ok {
			delete(r.fields, key)
			delete(r.paths, key)
			r.logger.Debug("field closed", "path", key)
			continue
		}
		if f.Sync() {
			r.logger.Debug("field reloaded", "path", key)
		}
	}
}
