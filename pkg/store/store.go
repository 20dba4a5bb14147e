// Package store holds the authoritative CV and publishes a new snapshot after
// every update.
package store

import (
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

// Listener is called after every published update with the previous and the
// new snapshot.
type Listener func(prev, next *models.CV)

// Partial carries replacement values for top-level sections. A nil field leaves
// the section untouched; a non-nil field replaces it wholesale.
type Partial struct {
	ContactInfo  *models.ContactInfo
	Summary      *string
	Skills       *[]models.Skill
	Experiences  *[]models.Experience
	Certificates *[]models.Certificate
	Courses      *[]models.Course
	Education    *[]models.Education
	Headings     *models.Headings
}

// Result reports whether SetField changed the document.
type Result struct {
	Applied bool
	Reason  error // set when Applied is false
}

// Store owns the CV. Snapshots returned by Store are shared and must not be
// modified.
type Store struct {
	mu        sync.Mutex
	current   *models.CV
	listeners map[int]Listener
	order     []int
	nextID    int
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for rejected updates.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a store seeded with cv.
func New(seed *models.CV, opts ...Option) *Store {
	s := &Store{
		current:   models.Normalize(seed),
		listeners: make(map[int]Listener),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Must returns s, panicking if it is nil. Consumers call it when they are
// constructed so that a missing store fails immediately.
func Must(s *Store) *Store {
	if s == nil {
		panic("store: document store is not initialized")
	}
	return s
}

// Snapshot returns the current document.
func (s *Store) Snapshot() *models.CV {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Merge replaces every section present in p and publishes the result. A new
// snapshot is published even when p is empty.
func (s *Store) Merge(p Partial) {
	s.mu.Lock()
	prev := s.current
	next := Apply(prev, p)
	s.current = next
	s.mu.Unlock()

	s.publish(prev, next)
}

// SetField replaces the string leaf at path. The update is skipped, and the
// current snapshot kept, when any key along the path is missing, an
// intermediate value is not an object, or the leaf is not a string.
func (s *Store) SetField(path Path, value string) Result {
	s.mu.Lock()
	prev := s.current
	next, res := SetPath(prev, path, value)
	if !res.Applied {
		s.mu.Unlock()
		s.logger.Debug("field update skipped", "path", path.String(), "reason", res.Reason)
		return res
	}
	s.current = next
	s.mu.Unlock()

	s.publish(prev, next)
	return res
}

// Subscribe registers fn for every published update. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) publish(prev, next *models.CV) {
	s.mu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	live := s.order[:0]
	for _, id := range s.order {
		if fn, ok := s.listeners[id]; ok {
			fns = append(fns, fn)
			live = append(live, id)
		}
	}
	s.order = live
	s.mu.Unlock()

	for _, fn := range fns {
		fn(prev, next)
	}
}

// Apply returns a new document with the sections of p replacing those of cv.
// Sections not in p are shared with cv.
func Apply(cv *models.CV, p Partial) *models.CV {
	next := *cv
	if p.ContactInfo != nil {
		next.ContactInfo = p.ContactInfo
	}
	if p.Summary != nil {
		next.Summary = *p.Summary
	}
	if p.Skills != nil {
		next.Skills = models.NormalizeSkills(*p.Skills)
	}
	if p.Experiences != nil {
		next.Experiences = *p.Experiences
	}
	if p.Certificates != nil {
		next.Certificates = *p.Certificates
	}
	if p.Courses != nil {
		next.Courses = *p.Courses
	}
	if p.Education != nil {
		next.Education = *p.Education
	}
	if p.Headings != nil {
		next.Headings = *p.Headings
	}
	return &next
}

// SetPath is the pure form of Store.SetField. When the update is skipped the
// returned document is cv itself.
func SetPath(cv *models.CV, path Path, value string) (*models.CV, Result) {
	next, err := setPath(cv, path, value)
	if err != nil {
		return cv, Result{Reason: err}
	}
	return next, Result{Applied: true}
}

// Changed lists the sections whose branch differs by reference between prev
// and next. Headings are reported under the pseudo section "headings".
func Changed(prev, next *models.CV) []models.SectionID {
	var out []models.SectionID
	if prev == nil || next == nil {
		if prev == next {
			return nil
		}
		return append(models.Sections(), "headings")
	}
	if prev.ContactInfo != next.ContactInfo {
		out = append(out, models.SectionContact)
	}
	if prev.Summary != next.Summary {
		out = append(out, models.SectionSummary)
	}
	pairs := []struct {
		id   models.SectionID
		a, b any
	}{
		{models.SectionExperience, prev.Experiences, next.Experiences},
		{models.SectionEducation, prev.Education, next.Education},
		{models.SectionSkills, prev.Skills, next.Skills},
		{models.SectionCertificates, prev.Certificates, next.Certificates},
		{models.SectionCourses, prev.Courses, next.Courses},
		{"headings", prev.Headings, next.Headings},
	}
	for _, p := range pairs {
		if !SameBranch(p.a, p.b) {
			out = append(out, p.id)
		}
	}
	return out
}

// SameBranch reports whether a and b are the same slice or map value, meaning
// the same backing storage and length.
func SameBranch(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != vb.Kind() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

// Get returns the string leaf at path in the current snapshot.
func (s *Store) Get(path Path) (string, bool) {
	return Lookup(s.Snapshot(), path)
}
