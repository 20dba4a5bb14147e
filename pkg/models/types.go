package models

// CV is the structured document edited by pluqqy-cv.
//
// A CV value is treated as immutable once it has been handed to the document
// store: updates build a new CV that shares every untouched branch with the
// previous one.
type CV struct {
	ContactInfo  *ContactInfo  `json:"contactInfo" yaml:"contactInfo"`
	Summary      string        `json:"summary" yaml:"summary"`
	Skills       []Skill       `json:"skills" yaml:"skills"`
	Experiences  []Experience  `json:"experiences" yaml:"experiences"`
	Certificates []Certificate `json:"certificates" yaml:"certificates"`
	Courses      []Course      `json:"courses" yaml:"courses"`
	Education    []Education   `json:"education" yaml:"education"`
	Headings     Headings      `json:"headings,omitempty" yaml:"headings,omitempty"`
}

// Skill is a named skill with a proficiency level.
type Skill struct {
	Name  string     `json:"name" yaml:"name"`
	Level SkillLevel `json:"level" yaml:"level"`
}

// Experience is a single position held at a company.
type Experience struct {
	Company          string   `json:"company" yaml:"company"`
	Position         string   `json:"position" yaml:"position"`
	StartDate        string   `json:"startDate" yaml:"startDate"`
	EndDate          *string  `json:"endDate,omitempty" yaml:"endDate,omitempty"` // nil means ongoing
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	Technologies     []string `json:"technologies" yaml:"technologies"`
}

// Certificate is an earned certification.
type Certificate struct {
	Name   string `json:"name" yaml:"name"`
	Issuer string `json:"issuer" yaml:"issuer"`
	Date   string `json:"date" yaml:"date"`
}

// Course is a completed course.
type Course struct {
	Name           string `json:"name" yaml:"name"`
	Platform       string `json:"platform" yaml:"platform"`
	CompletionDate string `json:"completionDate" yaml:"completionDate"`
}

// Education is a degree obtained at an institution.
type Education struct {
	Institution    string   `json:"institution" yaml:"institution"`
	Degree         string   `json:"degree" yaml:"degree"`
	Major          string   `json:"major" yaml:"major"`
	GraduationYear string   `json:"graduationYear" yaml:"graduationYear"`
	GPA            *string  `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Activities     []string `json:"activities,omitempty" yaml:"activities,omitempty"`
}

// Headings maps a section heading key to a custom heading. Only overridden
// sections are present.
type Headings map[string]string

// StringPtr returns a pointer to s, for the optional fields of the record.
func StringPtr(s string) *string {
	return &s
}
