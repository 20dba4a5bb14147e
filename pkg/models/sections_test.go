package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		input   string
		want    SectionID
		wantErr bool
	}{
		{"contactInfo", SectionContact, false},
		{"experiences", SectionExperience, false},
		{"experience", SectionExperience, false},
		{"courses", SectionCourses, false},
		{"projects", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSection(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSectionMetadata(t *testing.T) {
	assert.Len(t, Sections(), 7)
	assert.Equal(t, SectionContact, Sections()[0])

	assert.Equal(t, "Experience", SectionExperience.Label())
	assert.Equal(t, "experience", SectionExperience.HeadingKey())
	assert.Equal(t, "Work Experience", SectionExperience.DefaultHeading())

	unknown := SectionID("projects")
	assert.False(t, unknown.Valid())
	assert.Equal(t, "projects", unknown.Label())
}

func TestHeadings(t *testing.T) {
	var h Headings
	assert.Equal(t, "Technical Skills", h.Heading(SectionSkills))

	next := h.With(SectionSkills, "Toolbox")
	assert.Equal(t, "Toolbox", next.Heading(SectionSkills))
	assert.Equal(t, "Toolbox", next["skills"])
	assert.Nil(t, h)
}

func TestSkillLevels(t *testing.T) {
	tests := []struct {
		input   string
		level   SkillLevel
		next    SkillLevel
		percent int
	}{
		{"Beginner", Beginner, Intermediate, 25},
		{"Intermediate", Intermediate, Advanced, 50},
		{"Advanced", Advanced, Expert, 75},
		{"Expert", Expert, Beginner, 100},
		{"Guru", Beginner, Intermediate, 25},
		{"expert", Beginner, Intermediate, 25},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := ParseSkillLevel(tt.input)
			assert.Equal(t, tt.level, l)
			assert.Equal(t, tt.next, l.Next())
			assert.Equal(t, tt.percent, l.Percent())
		})
	}
}

func TestSkillLevel_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want SkillLevel
	}{
		{"canonical", `{"name": "Go", "level": "Advanced"}`, Advanced},
		{"unknown name", `{"name": "Go", "level": "Wizard"}`, Beginner},
		{"number", `{"name": "Go", "level": 3}`, Beginner},
		{"null", `{"name": "Go", "level": null}`, Beginner},
		{"object", `{"name": "Go", "level": {"rank": 1}}`, Beginner},
		{"missing", `{"name": "Go"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Skill
			require.NoError(t, json.Unmarshal([]byte(tt.json), &s))
			assert.Equal(t, tt.want, s.Level)
			assert.Equal(t, ParseSkillLevel(string(tt.want)), NormalizeSkills([]Skill{s})[0].Level)
		})
	}
}
