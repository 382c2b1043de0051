package seed

import (
	"testing"

	"job-board/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobs(t *testing.T) {
	jobs, err := Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 5)

	seen := map[string]bool{}
	for _, job := range jobs {
		assert.False(t, seen[job.ID], "duplicate id %s", job.ID)
		seen[job.ID] = true

		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.Requirements)
		if job.Salary != nil {
			assert.LessOrEqual(t, job.Salary.Min, job.Salary.Max, job.ID)
		}
	}

	first := jobs[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Senior Frontend Developer", first.Title)
	assert.Equal(t, &models.Salary{Min: 120000, Max: 180000, Currency: "USD"}, first.Salary)
	assert.Equal(t, "2024-01-15", first.PostedDate)
	require.NotNil(t, first.ApplyURL)
	assert.Equal(t, "https://example.com/apply/1", *first.ApplyURL)
	assert.Contains(t, first.Description, "React and TypeScript.")

	assert.Equal(t, models.JobTypeContract, jobs[3].Type)
	assert.Equal(t, "Remote", jobs[1].Location)
}

func TestParseOptionalFields(t *testing.T) {
	jobs, err := Parse([]byte(`
- id: x
  title: Intern
  type: internship
  postedDate: "2024-02-01"
`))
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Nil(t, jobs[0].Salary)
	assert.Nil(t, jobs[0].ApplyURL)
	assert.Empty(t, jobs[0].Requirements)
}

func TestParseRejectsUnknownType(t *testing.T) {
	_, err := Parse([]byte(`- {id: "1", title: T, type: gig}`))
	assert.ErrorContains(t, err, "unknown type")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte(`- id: [`))
	assert.Error(t, err)
}
