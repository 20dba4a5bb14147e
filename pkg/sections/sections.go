package sections

import (
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// Controllers groups the editors of every section of one store.
type Controllers struct {
	Contact      *Contact
	Summary      *Summary
	Skills       *Skills
	Experience   *List[models.Experience]
	Education    *List[models.Education]
	Certificates *List[models.Certificate]
	Courses      *List[models.Course]
	Headings     *Headings
}

// New creates the section controllers of st. It panics if st is nil.
func New(st *store.Store) *Controllers {
	st = store.Must(st)
	return &Controllers{
		Contact: &Contact{st: st},
		Summary: NewSummary(st, LayoutSingle),
		Skills: &Skills{List: newList(st, models.SectionSkills,
			func(cv *models.CV) []models.Skill { return cv.Skills },
			func(v *[]models.Skill) store.Partial { return store.Partial{Skills: v} },
			models.DefaultSkill)},
		Experience: newList(st, models.SectionExperience,
			func(cv *models.CV) []models.Experience { return cv.Experiences },
			func(v *[]models.Experience) store.Partial { return store.Partial{Experiences: v} },
			models.DefaultExperience),
		Education: newList(st, models.SectionEducation,
			func(cv *models.CV) []models.Education { return cv.Education },
			func(v *[]models.Education) store.Partial { return store.Partial{Education: v} },
			models.DefaultEducation),
		Certificates: newList(st, models.SectionCertificates,
			func(cv *models.CV) []models.Certificate { return cv.Certificates },
			func(v *[]models.Certificate) store.Partial { return store.Partial{Certificates: v} },
			models.DefaultCertificate),
		Courses: newList(st, models.SectionCourses,
			func(cv *models.CV) []models.Course { return cv.Courses },
			func(v *[]models.Course) store.Partial { return store.Partial{Courses: v} },
			models.DefaultCourse),
		Headings: &Headings{st: st},
	}
}

// Skills edits the skills section.
type Skills struct {
	*List[models.Skill]
}

// CycleLevel advances the level of skill i, wrapping from Expert to Beginner.
func (s *Skills) CycleLevel(i int) bool {
	return s.update(i, func(sk models.Skill) (models.Skill, bool) {
		sk.Level = sk.Level.Next()
		return sk, true
	})
}

// Headings edits the heading overrides.
type Headings struct {
	st *store.Store
}

// Heading returns the heading shown for section.
func (h *Headings) Heading(section models.SectionID) string {
	return h.st.Snapshot().Headings.Heading(section)
}

// Overridden reports whether section has a custom heading.
func (h *Headings) Overridden(section models.SectionID) bool {
	_, ok := h.st.Snapshot().Headings[section.HeadingKey()]
	return ok
}

// SetHeading overrides the heading of section.
func (h *Headings) SetHeading(section models.SectionID, heading string) {
	next := h.st.Snapshot().Headings.With(section, heading)
	h.st.Merge(store.Partial{Headings: &next})
}

// ResetHeading removes the override of section.
func (h *Headings) ResetHeading(section models.SectionID) bool {
	cur := h.st.Snapshot().Headings
	if _, ok := cur[section.HeadingKey()]; !ok {
		return false
	}
	var next models.Headings
	for k, v := range cur {
		if k == section.HeadingKey() {
			continue
		}
		if next == nil {
			next = make(models.Headings, len(cur)-1)
		}
		next[k] = v
	}
	h.st.Merge(store.Partial{Headings: &next})
	return true
}
