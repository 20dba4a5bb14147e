package models

import "encoding/json"

// SkillLevel is the proficiency of a skill.
type SkillLevel string

const (
	Beginner     SkillLevel = "Beginner"
	Intermediate SkillLevel = "Intermediate"
	Advanced     SkillLevel = "Advanced"
	Expert       SkillLevel = "Expert"
)

// SkillLevels lists the levels from lowest to highest.
var SkillLevels = []SkillLevel{Beginner, Intermediate, Advanced, Expert}

// ParseSkillLevel returns the level named s. Anything that is not one of the
// four canonical names becomes Beginner.
func ParseSkillLevel(s string) SkillLevel {
	l := SkillLevel(s)
	if l.Valid() {
		return l
	}
	return Beginner
}

// UnmarshalJSON accepts any JSON value. Anything other than one of the four
// canonical names, including numbers and null, becomes Beginner.
func (l *SkillLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*l = Beginner
		return nil
	}
	*l = ParseSkillLevel(s)
	return nil
}

// Valid reports whether l is one of the canonical levels.
func (l SkillLevel) Valid() bool {
	return l.index() >= 0
}

// Next returns the following level, wrapping from Expert to Beginner.
func (l SkillLevel) Next() SkillLevel {
	i := l.index()
	return SkillLevels[(i+1)%len(SkillLevels)]
}

// Percent is the fill of a progress bar for the level.
func (l SkillLevel) Percent() int {
	i := l.index()
	if i < 0 {
		i = 0
	}
	return (i + 1) * 100 / len(SkillLevels)
}

func (l SkillLevel) index() int {
	for i, v := range SkillLevels {
		if v == l {
			return i
		}
	}
	return -1
}
