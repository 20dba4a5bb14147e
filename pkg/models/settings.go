package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Settings represents the application configuration
type Settings struct {
	UI     UISettings     `yaml:"ui"`
	Editor EditorSettings `yaml:"editor"`
}

// UISettings controls the initial presentation. None of it is stored in the
// CV; it only seeds the per-view state when the editor starts.
type UISettings struct {
	Template    string          `yaml:"template" validate:"oneof=modern classic minimal professional"`
	ShowPreview bool            `yaml:"show_preview"`
	WrapWidth   int             `yaml:"wrap_width" validate:"gte=0,lte=400"` // 0 wraps to the pane width
	Variants    VariantSettings `yaml:"variants"`
}

// VariantSettings selects the starting layout variant of every section
type VariantSettings struct {
	Contact      string `yaml:"contact_info" validate:"omitempty,oneof=modern-grid centered minimalist"`
	Summary      string `yaml:"summary" validate:"omitempty,oneof=single-paragraph bullet-points multi-paragraph"`
	Experience   string `yaml:"experience" validate:"omitempty,oneof=timeline cards minimal"`
	Education    string `yaml:"education" validate:"omitempty,oneof=classic modern compact"`
	Skills       string `yaml:"skills" validate:"omitempty,oneof=tags grid bars"`
	Certificates string `yaml:"certificates" validate:"omitempty,oneof=grid list compact"`
	Courses      string `yaml:"courses" validate:"omitempty,oneof=grid timeline compact"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	Placeholder  string `yaml:"placeholder"`
	Typography   bool   `yaml:"typography"`
	StartSection string `yaml:"start_section" validate:"omitempty,oneof=contactInfo summary experiences education skills certificates courses"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			Template:    "modern",
			ShowPreview: true,
			WrapWidth:   0,
		},
		Editor: EditorSettings{
			Placeholder:  "Click to edit...",
			Typography:   true,
			StartSection: string(SectionContact),
		},
	}
}

// Variant returns the configured variant id for a section, or "" for the
// catalog default.
func (v VariantSettings) Variant(s SectionID) string {
	switch s {
	case SectionContact:
		return v.Contact
	case SectionSummary:
		return v.Summary
	case SectionExperience:
		return v.Experience
	case SectionEducation:
		return v.Education
	case SectionSkills:
		return v.Skills
	case SectionCertificates:
		return v.Certificates
	case SectionCourses:
		return v.Courses
	}
	return ""
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
