package rawtext

import (
	"io"
	"log/slog"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// Outcome reports what an edit of a buffer did to the document.
type Outcome struct {
	// Applied is true when the buffer decoded and was merged into the store.
	Applied bool
	// Err is the decode failure when Applied is false.
	Err error
}

// Buffer is the presentation pair of a raw section.
type Buffer struct {
	Text     string
	OnChange func(text string) Outcome
}

// Sync keeps one raw buffer per section. A section that was never edited
// shows a fresh serialization of the current document; once edited, its
// buffer holds the text exactly as typed, valid or not, for the rest of the
// session.
type Sync struct {
	st      *store.Store
	buffers map[models.SectionID]string
	logger  *slog.Logger
}

// Option configures a Sync.
type Option func(*Sync)

// WithLogger sets the logger used for failed decodes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sync) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates the raw buffers of st. It panics if st is nil.
func New(st *store.Store, opts ...Option) *Sync {
	s := &Sync{
		st:      store.Must(st),
		buffers: make(map[models.SectionID]string),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Text returns the raw text shown for section.
func (s *Sync) Text(section models.SectionID) string {
	if text, ok := s.buffers[section]; ok {
		return text
	}
	text, err := Encode(s.st.Snapshot(), section)
	if err != nil {
		s.logger.Error("encode section", "section", section, "error", err)
		return ""
	}
	return text
}

// Touched reports whether section has been edited.
func (s *Sync) Touched(section models.SectionID) bool {
	_, ok := s.buffers[section]
	return ok
}

// Edit stores text as the buffer of section and merges it into the document
// when it decodes. A buffer that does not decode leaves the document as it
// was.
func (s *Sync) Edit(section models.SectionID, text string) Outcome {
	if !section.Valid() {
		return Outcome{Err: ErrUnknownSection}
	}
	s.buffers[section] = text

	p, err := Decode(section, text)
	if err != nil {
		s.logger.Debug("raw buffer not applied", "section", section, "error", err)
		return Outcome{Err: err}
	}
	s.st.Merge(p)
	return Outcome{Applied: true}
}

// Reset discards the buffer of section so that it shows the document again.
func (s *Sync) Reset(section models.SectionID) {
	delete(s.buffers, section)
}

// Buffer returns the presentation pair of section.
func (s *Sync) Buffer(section models.SectionID) Buffer {
	return Buffer{
		Text:     s.Text(section),
		OnChange: func(text string) Outcome { return s.Edit(section, text) },
	}
}
