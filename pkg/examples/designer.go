package examples

import "github.com/pluqqy/pluqqy-cv/pkg/models"

func getDesignerExamples() []Example {
	return []Example{
		{
			Name:        "Product Designer",
			Description: "Bullet summary, custom headings and a course-heavy profile",
			Filename:    "example-designer.yaml",
			Build:       productDesigner,
		},
	}
}

func productDesigner() *models.CV {
	return &models.CV{
		ContactInfo: models.NewContactInfo("Lena Park", map[string]string{
			"title":   "Product Designer",
			"email":   "lena@example.com",
			"website": "https://lenapark.design",
		}),
		Summary: "Design systems that scale across web and mobile\n\nResearch-led, with a habit of shipping\n\nMentor in two design bootcamps",
		Skills: []models.Skill{
			{Name: "Figma", Level: models.Expert},
			{Name: "User Research", Level: models.Advanced},
			{Name: "Prototyping", Level: models.Advanced},
			{Name: "HTML/CSS", Level: models.Intermediate},
		},
		Experiences: []models.Experience{
			{
				Company:   "Northwind",
				Position:  "Senior Product Designer",
				StartDate: "2019-06",
				EndDate:   models.StringPtr("Present"),
				Responsibilities: []string{
					"Led the redesign of the onboarding flow, lifting activation by 18%",
					"Maintained the company design system",
				},
				Technologies: []string{"Figma", "Storybook"},
			},
		},
		Courses: []models.Course{
			{Name: "Interaction Design Specialization", Platform: "Coursera", CompletionDate: "2020"},
			{Name: "Design Systems", Platform: "Design+Code", CompletionDate: "2022"},
		},
		Headings: models.Headings{
			"experience": "Selected Work",
			"courses":    "Learning",
		},
	}
}
