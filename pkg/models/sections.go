package models

import "fmt"

// SectionID identifies a top-level section of the CV. The value doubles as the
// key of the section in the JSON notation.
type SectionID string

const (
	SectionContact      SectionID = "contactInfo"
	SectionSummary      SectionID = "summary"
	SectionExperience   SectionID = "experiences"
	SectionEducation    SectionID = "education"
	SectionSkills       SectionID = "skills"
	SectionCertificates SectionID = "certificates"
	SectionCourses      SectionID = "courses"
)

type sectionInfo struct {
	id             SectionID
	label          string
	headingKey     string
	defaultHeading string
}

var sectionTable = []sectionInfo{
	{SectionContact, "Contact Info", "contactInfo", "Contact Information"},
	{SectionSummary, "Summary", "summary", "Professional Summary"},
	{SectionExperience, "Experience", "experience", "Work Experience"},
	{SectionEducation, "Education", "education", "Education"},
	{SectionSkills, "Skills", "skills", "Technical Skills"},
	{SectionCertificates, "Certificates", "certificates", "Certifications"},
	{SectionCourses, "Courses", "courses", "Professional Development"},
}

// Sections returns every section in display order.
func Sections() []SectionID {
	out := make([]SectionID, len(sectionTable))
	for i, s := range sectionTable {
		out[i] = s.id
	}
	return out
}

// ParseSection resolves a section identifier, accepting either the section id
// or its heading key ("experience" for "experiences").
func ParseSection(s string) (SectionID, error) {
	for _, info := range sectionTable {
		if string(info.id) == s || info.headingKey == s {
			return info.id, nil
		}
	}
	return "", fmt.Errorf("unknown section: %s", s)
}

func (s SectionID) info() (sectionInfo, bool) {
	for _, info := range sectionTable {
		if info.id == s {
			return info, true
		}
	}
	return sectionInfo{}, false
}

// Valid reports whether s is a known section.
func (s SectionID) Valid() bool {
	_, ok := s.info()
	return ok
}

// Label is the short name used on tabs.
func (s SectionID) Label() string {
	if info, ok := s.info(); ok {
		return info.label
	}
	return string(s)
}

// HeadingKey is the key used for this section in Headings.
func (s SectionID) HeadingKey() string {
	if info, ok := s.info(); ok {
		return info.headingKey
	}
	return string(s)
}

// DefaultHeading is the heading shown when no override exists.
func (s SectionID) DefaultHeading() string {
	if info, ok := s.info(); ok {
		return info.defaultHeading
	}
	return string(s)
}

// Heading returns the override for section s, or its default heading.
func (h Headings) Heading(s SectionID) string {
	if v, ok := h[s.HeadingKey()]; ok {
		return v
	}
	return s.DefaultHeading()
}

// With returns a copy of h with the heading for s replaced.
func (h Headings) With(s SectionID, heading string) Headings {
	next := make(Headings, len(h)+1)
	for k, v := range h {
		next[k] = v
	}
	next[s.HeadingKey()] = heading
	return next
}
