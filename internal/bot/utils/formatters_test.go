package utils

import (
	"fmt"
	"strings"
	"testing"

	"job-board/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleJob() *models.Job {
	url := "https://example.com/apply/1"
	return &models.Job{
		ID:           "1",
		Title:        "Senior Frontend Developer",
		Company:      "TechCorp Inc.",
		Location:     "San Francisco, CA",
		Salary:       &models.Salary{Min: 120000, Max: 180000, Currency: "USD"},
		Description:  "Build modern web apps.",
		Requirements: []string{"5+ years of React"},
		Type:         models.JobTypeFullTime,
		PostedDate:   "2024-01-15",
		ApplyURL:     &url,
	}
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `TechCorp Inc\.`, EscapeMarkdown("TechCorp Inc."))
	assert.Equal(t, `5\+ years \(React\)`, EscapeMarkdown("5+ years (React)"))
	assert.Equal(t, `a\\b`, EscapeMarkdown(`a\b`))
	assert.Equal(t, "plain", EscapeMarkdown("plain"))
}

func TestFormatJob(t *testing.T) {
	text := FormatJob(sampleJob())

	assert.Contains(t, text, "*Senior Frontend Developer*")
	assert.Contains(t, text, `TechCorp Inc\.`)
	assert.Contains(t, text, "Full Time")
	assert.Contains(t, text, `$120,000 \- $180,000`)
	assert.Contains(t, text, "Jan 15, 2024")
	assert.Contains(t, text, `• 5\+ years of React`)
}

func TestFormatJobWithoutSalary(t *testing.T) {
	job := sampleJob()
	job.Salary = nil
	job.Requirements = nil

	text := FormatJob(job)

	assert.Contains(t, text, "Salary not specified")
	assert.NotContains(t, text, "Requirements")
}

func TestFormatJobList(t *testing.T) {
	var jobs []models.Job
	for i := 0; i < MaxListedJobs+2; i++ {
		job := *sampleJob()
		job.ID = fmt.Sprintf("job-%d", i)
		jobs = append(jobs, job)
	}

	text := FormatJobList(jobs)

	assert.Contains(t, text, fmt.Sprintf("*Jobs found:* %d", MaxListedJobs+2))
	assert.Contains(t, text, `/job job\-0`)
	assert.NotContains(t, text, fmt.Sprintf(`/job job\-%d`, MaxListedJobs))
	assert.Contains(t, text, "Showing the first 10")
	assert.Equal(t, MaxListedJobs, strings.Count(text, "/job "))
}

func TestFormatApplicationResult(t *testing.T) {
	ok := FormatApplicationResult(models.ApplicationResult{
		Success:       true,
		Message:       "Application submitted successfully for Dev at Acme",
		ApplicationID: "app_1_abc",
	})
	assert.Contains(t, ok, "✅")
	assert.Contains(t, ok, "`app\\_1\\_abc`")

	failed := FormatApplicationResult(models.ApplicationResult{Message: "Invalid email format"})
	assert.Equal(t, "❌ Invalid email format", failed)
}

func TestInlineJobKeyboard(t *testing.T) {
	job := sampleJob()

	kb := InlineJobKeyboard(job)
	if assert.Len(t, kb.InlineKeyboard, 1) {
		assert.Len(t, kb.InlineKeyboard[0], 2)
		assert.Equal(t, CallbackApply, kb.InlineKeyboard[0][0].Unique)
		assert.Equal(t, "1", kb.InlineKeyboard[0][0].Data)
	}

	job.ApplyURL = nil
	kb = InlineJobKeyboard(job)
	if assert.Len(t, kb.InlineKeyboard, 1) {
		assert.Len(t, kb.InlineKeyboard[0], 1)
	}
}
