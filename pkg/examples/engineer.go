package examples

import "github.com/pluqqy/pluqqy-cv/pkg/models"

func getEngineerExamples() []Example {
	return []Example{
		{
			Name:        "Senior Software Engineer",
			Description: "The bundled sample: web and distributed systems experience",
			Filename:    "example-engineer.json",
			Build:       models.SampleCV,
		},
		{
			Name:        "Platform Engineer",
			Description: "Infrastructure focus with two positions and an open-ended current role",
			Filename:    "example-platform-engineer.yaml",
			Build:       platformEngineer,
		},
	}
}

func platformEngineer() *models.CV {
	return &models.CV{
		ContactInfo: models.NewContactInfo("Maya Okafor", map[string]string{
			"title":    "Platform Engineer",
			"email":    "maya.okafor@example.com",
			"location": "Berlin, Germany",
			"github":   "https://github.com/mayaokafor",
		}),
		Summary: "Platform engineer building the paved road for product teams.\n\nOwns the deployment pipeline, the service mesh and the on-call tooling used by forty engineers.",
		Skills: []models.Skill{
			{Name: "Go", Level: models.Expert},
			{Name: "Kubernetes", Level: models.Advanced},
			{Name: "Terraform", Level: models.Advanced},
			{Name: "PostgreSQL", Level: models.Intermediate},
		},
		Experiences: []models.Experience{
			{
				Company:   "Cloudline",
				Position:  "Platform Engineer",
				StartDate: "2021-03",
				Responsibilities: []string{
					"Cut median deploy time from 25 to 6 minutes",
					"Introduced progressive delivery for 60 services",
				},
				Technologies: []string{"Go", "Kubernetes", "Argo CD"},
			},
			{
				Company:   "Datawerk",
				Position:  "Backend Engineer",
				StartDate: "2017-09",
				EndDate:   models.StringPtr("2021-02"),
				Responsibilities: []string{
					"Built the billing event pipeline",
				},
				Technologies: []string{"Python", "Kafka"},
			},
		},
		Certificates: []models.Certificate{
			{Name: "Certified Kubernetes Administrator", Issuer: "CNCF", Date: "2022"},
		},
		Education: []models.Education{
			{
				Institution:    "TU Berlin",
				Degree:         "Master of Science",
				Major:          "Computer Engineering",
				GraduationYear: "2017",
			},
		},
	}
}
