package jobs

import "job-board/internal/models"

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func typePtr(t models.JobType) *models.JobType { return &t }

func sampleJobs() []models.Job {
	return []models.Job{
		{
			ID:           "1",
			Title:        "Senior Frontend Developer",
			Company:      "TechCorp Inc.",
			Location:     "San Francisco, CA",
			Salary:       &models.Salary{Min: 120000, Max: 180000, Currency: "USD"},
			Description:  "Build modern, responsive web applications using React and TypeScript.",
			Requirements: []string{"5+ years of experience with React", "Strong TypeScript skills"},
			Type:         models.JobTypeFullTime,
			PostedDate:   "2024-01-15",
			ApplyURL:     strPtr("https://example.com/apply/1"),
		},
		{
			ID:          "2",
			Title:       "Full Stack Engineer",
			Company:     "StartupXYZ",
			Location:    "Remote",
			Salary:      &models.Salary{Min: 100000, Max: 150000, Currency: "USD"},
			Description: "Work on both frontend and backend systems.",
			Type:        models.JobTypeFullTime,
			PostedDate:  "2024-01-14",
		},
		{
			ID:          "3",
			Title:       "React Developer",
			Company:     "Digital Agency Pro",
			Location:    "New York, NY",
			Salary:      &models.Salary{Min: 90000, Max: 130000, Currency: "USD"},
			Description: "Collaborate with designers on client projects.",
			Type:        models.JobTypeFullTime,
			PostedDate:  "2024-01-13",
		},
		{
			ID:          "4",
			Title:       "Frontend Engineer - Contract",
			Company:     "Enterprise Solutions",
			Location:    "Austin, TX",
			Salary:      &models.Salary{Min: 80, Max: 120, Currency: "USD"},
			Description: "Six-month contract building a customer portal.",
			Type:        models.JobTypeContract,
			PostedDate:  "2024-01-12",
		},
		{
			ID:          "5",
			Title:       "Design Intern",
			Company:     "Innovation Labs",
			Location:    "remote (EU time zones)",
			Description: "Summer internship with mentorship from the product team.",
			Type:        models.JobTypeInternship,
			PostedDate:  "2024-01-11",
		},
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}
