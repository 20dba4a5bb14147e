package models

// SampleCV returns the example document loaded when no seed file is given.
func SampleCV() *CV {
	return &CV{
		ContactInfo: NewContactInfo("John Doe", map[string]string{
			"title":    "Senior Software Engineer",
			"email":    "john.doe@example.com",
			"phone":    "+1 (555) 123-4567",
			"location": "San Francisco, CA",
			"linkedin": "https://linkedin.com/in/johndoe",
			"github":   "https://github.com/johndoe",
		}),
		Summary: "Experienced software engineer with a strong background in web development and distributed systems. Passionate about creating scalable solutions and mentoring junior developers.",
		Skills: []Skill{
			{Name: "JavaScript/TypeScript", Level: Expert},
			{Name: "React", Level: Expert},
			{Name: "Node.js", Level: Advanced},
			{Name: "Python", Level: Advanced},
			{Name: "AWS", Level: Intermediate},
			{Name: "Docker", Level: Advanced},
		},
		Experiences: []Experience{
			{
				Company:   "Tech Corp",
				Position:  "Senior Software Engineer",
				StartDate: "2020-01",
				EndDate:   StringPtr("Present"),
				Responsibilities: []string{
					"Led a team of 5 developers in building a microservices architecture",
					"Improved system performance by 40% through optimization",
					"Mentored junior developers and conducted code reviews",
				},
				Technologies: []string{"React", "Node.js", "TypeScript", "AWS"},
			},
		},
		Certificates: []Certificate{
			{Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "2023"},
		},
		Courses: []Course{
			{Name: "Advanced TypeScript", Platform: "Frontend Masters", CompletionDate: "2023"},
		},
		Education: []Education{
			{
				Institution:    "University of Technology",
				Degree:         "Bachelor of Science",
				Major:          "Computer Science",
				GraduationYear: "2018",
				GPA:            StringPtr("3.8"),
				Activities: []string{
					"President of Computer Science Club",
					"Undergraduate Research Assistant",
					"Dean's List (All Semesters)",
				},
			},
		},
	}
}

// Default entries appended by the section controllers.

func DefaultSkill() Skill {
	return Skill{Name: "New Skill", Level: Beginner}
}

func DefaultExperience() Experience {
	return Experience{
		Company:          "Company Name",
		Position:         "Position Title",
		StartDate:        "Start Date",
		EndDate:          StringPtr("End Date"),
		Responsibilities: []string{"Describe your key responsibilities and achievements"},
		Technologies:     []string{"Add technologies used"},
	}
}

func DefaultCertificate() Certificate {
	return Certificate{Name: "Certificate Name", Issuer: "Issuing Organization", Date: "Completion Date"}
}

func DefaultCourse() Course {
	return Course{Name: "Course Name", Platform: "Learning Platform", CompletionDate: "Completion Date"}
}

func DefaultEducation() Education {
	return Education{
		Institution:    "Institution Name",
		Degree:         "Degree Name",
		Major:          "Major/Field of Study",
		GraduationYear: "Graduation Year",
		GPA:            StringPtr("3.5"),
		Activities: []string{
			"Add your extracurricular activities",
			"Add your achievements or honors",
		},
	}
}

// Defaults for items appended to a nested list, keyed by list name.
const (
	DefaultResponsibility = "Add your responsibility"
	DefaultTechnology     = "New Skill"
	DefaultActivity       = "New activity or achievement"
)

// DefaultSubListItem returns the text of a freshly appended nested item.
func DefaultSubListItem(key string) string {
	switch key {
	case "responsibilities":
		return DefaultResponsibility
	case "technologies":
		return DefaultTechnology
	case "activities":
		return DefaultActivity
	}
	return ""
}
