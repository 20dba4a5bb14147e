package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

// Reasons a SetField call leaves the document unchanged.
var (
	ErrEmptyPath       = errors.New("empty path")
	ErrUnknownKey      = errors.New("key not present")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotObject       = errors.New("intermediate value is not an object")
	ErrNotString       = errors.New("target is not a string")
)

// Path addresses a string leaf of the document as an ordered list of keys.
// List entries are addressed by their decimal index.
type Path []string

// ParsePath splits a dotted path such as "experiences.0.company".
func ParsePath(s string) Path {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// ContactPath addresses a contact field.
func ContactPath(key string) Path {
	return Path{string(models.SectionContact), key}
}

// SummaryPath addresses the summary text.
func SummaryPath() Path {
	return Path{string(models.SectionSummary)}
}

// HeadingPath addresses the heading override of a section.
func HeadingPath(s models.SectionID) Path {
	return Path{"headings", s.HeadingKey()}
}

// EntryPath addresses a scalar field of a list entry.
func EntryPath(s models.SectionID, index int, key string) Path {
	return Path{string(s), strconv.Itoa(index), key}
}

// ItemPath addresses one item of a nested list of a list entry.
func ItemPath(s models.SectionID, index int, key string, item int) Path {
	return Path{string(s), strconv.Itoa(index), key, strconv.Itoa(item)}
}

// setPath returns a copy of cv with the leaf at p replaced. Only the branches
// along p are copied. On failure cv itself is returned.
func setPath(cv *models.CV, p Path, value string) (*models.CV, error) {
	if len(p) == 0 {
		return cv, ErrEmptyPath
	}
	next := *cv
	rest := p[1:]
	var err error

	switch p[0] {
	case string(models.SectionSummary):
		if len(rest) > 0 {
			return cv, fmt.Errorf("%w: %s", ErrNotObject, p[:1])
		}
		next.Summary = value
	case string(models.SectionContact):
		next.ContactInfo, err = setContact(cv.ContactInfo, rest, value)
	case "headings":
		next.Headings, err = setHeading(cv.Headings, rest, value)
	case string(models.SectionSkills):
		next.Skills, err = setInList(cv.Skills, rest, value)
	case string(models.SectionExperience):
		next.Experiences, err = setInList(cv.Experiences, rest, value)
	case string(models.SectionCertificates):
		next.Certificates, err = setInList(cv.Certificates, rest, value)
	case string(models.SectionCourses):
		next.Courses, err = setInList(cv.Courses, rest, value)
	case string(models.SectionEducation):
		next.Education, err = setInList(cv.Education, rest, value)
	default:
		return cv, fmt.Errorf("%w: %s", ErrUnknownKey, p[0])
	}
	if err != nil {
		return cv, err
	}
	return &next, nil
}

func setContact(c *models.ContactInfo, rest Path, value string) (*models.ContactInfo, error) {
	if c == nil {
		return c, ErrUnknownKey
	}
	if len(rest) == 0 {
		return c, ErrNotString
	}
	if !c.Has(rest[0]) {
		return c, fmt.Errorf("%w: %s", ErrUnknownKey, rest[0])
	}
	if len(rest) > 1 {
		return c, fmt.Errorf("%w: %s", ErrNotObject, rest[0])
	}
	return c.With(rest[0], value), nil
}

func setHeading(h models.Headings, rest Path, value string) (models.Headings, error) {
	if h == nil {
		return h, fmt.Errorf("%w: headings", ErrUnknownKey)
	}
	if len(rest) == 0 {
		return h, ErrNotString
	}
	if _, ok := h[rest[0]]; !ok {
		return h, fmt.Errorf("%w: %s", ErrUnknownKey, rest[0])
	}
	if len(rest) > 1 {
		return h, fmt.Errorf("%w: %s", ErrNotObject, rest[0])
	}
	next := make(models.Headings, len(h))
	for k, v := range h {
		next[k] = v
	}
	next[rest[0]] = value
	return next, nil
}

func setInList[T models.Entry[T]](items []T, rest Path, value string) ([]T, error) {
	if len(rest) == 0 {
		return items, ErrNotString
	}
	i, err := index(rest[0], len(items))
	if err != nil {
		return items, err
	}
	if len(rest) == 1 {
		return items, ErrNotString
	}

	entry := items[i]
	key := rest[1]
	switch entry.Kind(key) {
	case models.FieldString:
		if len(rest) > 2 {
			return items, fmt.Errorf("%w: %s", ErrNotObject, key)
		}
		entry, _ = entry.WithField(key, value)
	case models.FieldList:
		if len(rest) == 2 {
			return items, fmt.Errorf("%w: %s", ErrNotString, key)
		}
		list, _ := entry.SubList(key)
		j, err := index(rest[2], len(list))
		if err != nil {
			return items, err
		}
		if len(rest) > 3 {
			return items, fmt.Errorf("%w: %s.%s", ErrNotObject, key, rest[2])
		}
		list, _ = models.WithItem(list, j, value)
		entry, _ = entry.WithSubList(key, list)
	default:
		return items, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	next := make([]T, len(items))
	copy(next, items)
	next[i] = entry
	return next, nil
}

func index(key string, n int) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return i, nil
}

// Lookup returns the string leaf at p. The second result is false when p does
// not address a string.
func Lookup(cv *models.CV, p Path) (string, bool) {
	if cv == nil || len(p) == 0 {
		return "", false
	}
	rest := p[1:]
	switch p[0] {
	case string(models.SectionSummary):
		return cv.Summary, len(rest) == 0
	case string(models.SectionContact):
		if cv.ContactInfo == nil || len(rest) != 1 {
			return "", false
		}
		return cv.ContactInfo.Get(rest[0])
	case "headings":
		if len(rest) != 1 {
			return "", false
		}
		v, ok := cv.Headings[rest[0]]
		return v, ok
	case string(models.SectionSkills):
		return lookupInList(cv.Skills, rest)
	case string(models.SectionExperience):
		return lookupInList(cv.Experiences, rest)
	case string(models.SectionCertificates):
		return lookupInList(cv.Certificates, rest)
	case string(models.SectionCourses):
		return lookupInList(cv.Courses, rest)
	case string(models.SectionEducation):
		return lookupInList(cv.Education, rest)
	}
	return "", false
}

func lookupInList[T models.Entry[T]](items []T, rest Path) (string, bool) {
	if len(rest) < 2 {
		return "", false
	}
	i, err := index(rest[0], len(items))
	if err != nil {
		return "", false
	}
	entry, key := items[i], rest[1]
	switch entry.Kind(key) {
	case models.FieldString:
		if len(rest) != 2 {
			return "", false
		}
		return entry.Field(key)
	case models.FieldList:
		if len(rest) != 3 {
			return "", false
		}
		list, _ := entry.SubList(key)
		j, err := index(rest[2], len(list))
		if err != nil {
			return "", false
		}
		return list[j], true
	}
	return "", false
}
