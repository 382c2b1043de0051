package jobs

import (
	"strings"

	"job-board/internal/models"

	"golang.org/x/text/cases"
)

// Apply returns the jobs matching every set field of criteria, in input order.
// Empty criteria return jobs unchanged.
//
// Salary bounds match on overlap: a job passes MinSalary when its range tops
// out at or above it, and MaxSalary when its range starts at or below it. A
// job without a salary never passes a salary bound.
func Apply(jobs []models.Job, criteria models.FilterCriteria) []models.Job {
	if criteria.IsEmpty() {
		return jobs
	}

	m := matcher{criteria: criteria, fold: cases.Fold()}
	if criteria.Location != nil {
		m.location = m.fold.String(*criteria.Location)
	}
	if criteria.Search != nil {
		m.search = m.fold.String(*criteria.Search)
	}

	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if m.match(&job) {
			filtered = append(filtered, job)
		}
	}

	return filtered
}

type matcher struct {
	criteria models.FilterCriteria
	fold     cases.Caser
	location string
	search   string
}

func (m *matcher) match(job *models.Job) bool {
	c := m.criteria

	if c.Type != nil && job.Type != *c.Type {
		return false
	}

	if c.Location != nil && !m.contains(job.Location, m.location) {
		return false
	}

	if c.MinSalary != nil && (job.Salary == nil || job.Salary.Max < *c.MinSalary) {
		return false
	}

	if c.MaxSalary != nil && (job.Salary == nil || job.Salary.Min > *c.MaxSalary) {
		return false
	}

	if c.Search != nil &&
		!m.contains(job.Title, m.search) &&
		!m.contains(job.Company, m.search) &&
		!m.contains(job.Description, m.search) {
		return false
	}

	return true
}

// contains reports whether the folded form of s contains folded needle.
func (m *matcher) contains(s, needle string) bool {
	return strings.Contains(m.fold.String(s), needle)
}
