package examples

import "github.com/pluqqy/pluqqy-cv/pkg/models"

func getGraduateExamples() []Example {
	return []Example{
		{
			Name:        "Recent Graduate",
			Description: "Education first, no work experience yet",
			Filename:    "example-graduate.json",
			Build:       recentGraduate,
		},
	}
}

func recentGraduate() *models.CV {
	return &models.CV{
		ContactInfo: models.NewContactInfo("Sam Rivera", map[string]string{
			"email":    "sam.rivera@example.com",
			"linkedin": "https://linkedin.com/in/samrivera",
		}),
		Summary: "Computer science graduate looking for a first role in backend development.",
		Skills: []models.Skill{
			{Name: "Java", Level: models.Intermediate},
			{Name: "SQL", Level: models.Intermediate},
			{Name: "Git", Level: models.Beginner},
		},
		Education: []models.Education{
			{
				Institution:    "State University",
				Degree:         "Bachelor of Science",
				Major:          "Computer Science",
				GraduationYear: "2025",
				GPA:            models.StringPtr("3.6"),
				Activities: []string{
					"Teaching assistant, Data Structures",
					"Hackathon winner, Spring 2024",
				},
			},
		},
	}
}
