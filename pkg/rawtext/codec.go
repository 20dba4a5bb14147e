// Package rawtext converts sections of the document to and from the raw JSON
// notation shown in the raw view, and keeps one editable buffer per section.
package rawtext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// ErrUnknownSection is returned for a section without a raw notation.
var ErrUnknownSection = errors.New("unknown section")

// Indent is the indentation of the raw notation.
const Indent = "  "

// Encode serializes the section of cv to its raw notation.
func Encode(cv *models.CV, section models.SectionID) (string, error) {
	var v any
	switch section {
	case models.SectionContact:
		v = cv.ContactInfo
	case models.SectionSummary:
		v = cv.Summary
	case models.SectionSkills:
		v = nonNil(cv.Skills)
	case models.SectionExperience:
		v = nonNil(cv.Experiences)
	case models.SectionEducation:
		v = nonNil(cv.Education)
	case models.SectionCertificates:
		v = nonNil(cv.Certificates)
	case models.SectionCourses:
		v = nonNil(cv.Courses)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode %s: %w", section, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Decode parses text as the raw notation of section and returns the partial
// update replacing that section. The text must be valid JSON matching the
// section schema; unknown keys inside entries are ignored and skill levels
// outside the catalog become Beginner.
func Decode(section models.SectionID, text string) (store.Partial, error) {
	if err := Validate(section, text); err != nil {
		return store.Partial{}, err
	}

	var p store.Partial
	var err error
	switch section {
	case models.SectionContact:
		var c models.ContactInfo
		err = json.Unmarshal([]byte(text), &c)
		p.ContactInfo = &c
	case models.SectionSummary:
		var s string
		err = json.Unmarshal([]byte(text), &s)
		p.Summary = &s
	case models.SectionSkills:
		var v []models.Skill
		v, err = decodeList(text, models.NormalizeSkills)
		p.Skills = &v
	case models.SectionExperience:
		var v []models.Experience
		v, err = decodeList(text, models.NormalizeExperiences)
		p.Experiences = &v
	case models.SectionEducation:
		var v []models.Education
		v, err = decodeList(text, models.NormalizeEducation)
		p.Education = &v
	case models.SectionCertificates:
		var v []models.Certificate
		v, err = decodeList[models.Certificate](text, nil)
		p.Certificates = &v
	case models.SectionCourses:
		var v []models.Course
		v, err = decodeList[models.Course](text, nil)
		p.Courses = &v
	default:
		return store.Partial{}, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	if err != nil {
		return store.Partial{}, &DecodeError{
			Section: section,
			Errors:  []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	return p, nil
}

func decodeList[T any](text string, normalize func([]T) []T) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, err
	}
	items = nonNil(items)
	if normalize != nil {
		items = normalize(items)
	}
	return items, nil
}
