package models

import "slices"

// FieldKind describes what a key addresses inside an entry.
type FieldKind int

const (
	// FieldUnknown means the entry type has no such key.
	FieldUnknown FieldKind = iota
	// FieldAbsent is an optional scalar that is currently not set.
	FieldAbsent
	// FieldString is a present scalar.
	FieldString
	// FieldList is a list of strings. An optional list that is not set is
	// reported as FieldAbsent.
	FieldList
)

// Entry is implemented by every list entry type of the CV. The accessors form a
// closed set of keys per entity; keys match the JSON notation.
//
// WithField and WithSubList never modify the receiver. WithField sets optional
// scalars even when they are absent; it reports false only for keys the entity
// does not have (or that are not scalars).
type Entry[T any] interface {
	Kind(key string) FieldKind
	Field(key string) (string, bool)
	WithField(key, value string) (T, bool)
	SubList(key string) ([]string, bool)
	WithSubList(key string, items []string) (T, bool)
}

// Skill

func (s Skill) Kind(key string) FieldKind {
	switch key {
	case "name", "level":
		return FieldString
	}
	return FieldUnknown
}

func (s Skill) Field(key string) (string, bool) {
	switch key {
	case "name":
		return s.Name, true
	case "level":
		return string(s.Level), true
	}
	return "", false
}

// WithField sets name or level. Levels outside the catalog become Beginner.
func (s Skill) WithField(key, value string) (Skill, bool) {
	switch key {
	case "name":
		s.Name = value
	case "level":
		s.Level = ParseSkillLevel(value)
	default:
		return s, false
	}
	return s, true
}

func (s Skill) SubList(string) ([]string, bool) { return nil, false }

func (s Skill) WithSubList(string, []string) (Skill, bool) { return s, false }

// Experience

func (e Experience) Kind(key string) FieldKind {
	switch key {
	case "company", "position", "startDate":
		return FieldString
	case "endDate":
		if e.EndDate == nil {
			return FieldAbsent
		}
		return FieldString
	case "responsibilities", "technologies":
		return FieldList
	}
	return FieldUnknown
}

func (e Experience) Field(key string) (string, bool) {
	switch key {
	case "company":
		return e.Company, true
	case "position":
		return e.Position, true
	case "startDate":
		return e.StartDate, true
	case "endDate":
		if e.EndDate == nil {
			return "", false
		}
		return *e.EndDate, true
	}
	return "", false
}

func (e Experience) WithField(key, value string) (Experience, bool) {
	switch key {
	case "company":
		e.Company = value
	case "position":
		e.Position = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = StringPtr(value)
	default:
		return e, false
	}
	return e, true
}

func (e Experience) SubList(key string) ([]string, bool) {
	switch key {
	case "responsibilities":
		return e.Responsibilities, true
	case "technologies":
		return e.Technologies, true
	}
	return nil, false
}

func (e Experience) WithSubList(key string, items []string) (Experience, bool) {
	switch key {
	case "responsibilities":
		e.Responsibilities = items
	case "technologies":
		e.Technologies = items
	default:
		return e, false
	}
	return e, true
}

// Certificate

func (c Certificate) Kind(key string) FieldKind {
	switch key {
	case "name", "issuer", "date":
		return FieldString
	}
	return FieldUnknown
}

func (c Certificate) Field(key string) (string, bool) {
	switch key {
	case "name":
		return c.Name, true
	case "issuer":
		return c.Issuer, true
	case "date":
		return c.Date, true
	}
	return "", false
}

func (c Certificate) WithField(key, value string) (Certificate, bool) {
	switch key {
	case "name":
		c.Name = value
	case "issuer":
		c.Issuer = value
	case "date":
		c.Date = value
	default:
		return c, false
	}
	return c, true
}

func (c Certificate) SubList(string) ([]string, bool) { return nil, false }

func (c Certificate) WithSubList(string, []string) (Certificate, bool) { return c, false }

// Course

func (c Course) Kind(key string) FieldKind {
	switch key {
	case "name", "platform", "completionDate":
		return FieldString
	}
	return FieldUnknown
}

func (c Course) Field(key string) (string, bool) {
	switch key {
	case "name":
		return c.Name, true
	case "platform":
		return c.Platform, true
	case "completionDate":
		return c.CompletionDate, true
	}
	return "", false
}

func (c Course) WithField(key, value string) (Course, bool) {
	switch key {
	case "name":
		c.Name = value
	case "platform":
		c.Platform = value
	case "completionDate":
		c.CompletionDate = value
	default:
		return c, false
	}
	return c, true
}

func (c Course) SubList(string) ([]string, bool) { return nil, false }

func (c Course) WithSubList(string, []string) (Course, bool) { return c, false }

// Education

func (e Education) Kind(key string) FieldKind {
	switch key {
	case "institution", "degree", "major", "graduationYear":
		return FieldString
	case "gpa":
		if e.GPA == nil {
			return FieldAbsent
		}
		return FieldString
	case "activities":
		if e.Activities == nil {
			return FieldAbsent
		}
		return FieldList
	}
	return FieldUnknown
}

func (e Education) Field(key string) (string, bool) {
	switch key {
	case "institution":
		return e.Institution, true
	case "degree":
		return e.Degree, true
	case "major":
		return e.Major, true
	case "graduationYear":
		return e.GraduationYear, true
	case "gpa":
		if e.GPA == nil {
			return "", false
		}
		return *e.GPA, true
	}
	return "", false
}

func (e Education) WithField(key, value string) (Education, bool) {
	switch key {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "major":
		e.Major = value
	case "graduationYear":
		e.GraduationYear = value
	case "gpa":
		e.GPA = StringPtr(value)
	default:
		return e, false
	}
	return e, true
}

func (e Education) SubList(key string) ([]string, bool) {
	if key == "activities" {
		return e.Activities, true
	}
	return nil, false
}

func (e Education) WithSubList(key string, items []string) (Education, bool) {
	if key != "activities" {
		return e, false
	}
	e.Activities = items
	return e, true
}

// WithItem returns a copy of items with index i replaced. It reports false when
// i is out of range.
func WithItem(items []string, i int, value string) ([]string, bool) {
	if i < 0 || i >= len(items) {
		return items, false
	}
	next := slices.Clone(items)
	next[i] = value
	return next, true
}
