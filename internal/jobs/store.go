package jobs

import (
	"fmt"

	"job-board/internal/models"
)

// Store is the fixed, read-only set of job postings. It is safe for
// concurrent use because nothing mutates it after NewStore returns.
type Store struct {
	jobs  []models.Job
	index map[string]int
}

func NewStore(seed []models.Job) (*Store, error) {
	s := &Store{
		jobs:  make([]models.Job, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}

	for _, job := range seed {
		if job.ID == "" {
			return nil, fmt.Errorf("job %q has an empty id", job.Title)
		}
		if _, dup := s.index[job.ID]; dup {
			return nil, fmt.Errorf("duplicate job id %q", job.ID)
		}

		s.index[job.ID] = len(s.jobs)
		s.jobs = append(s.jobs, cloneJob(job))
	}

	return s, nil
}

// All returns every job in seed order.
func (s *Store) All() []models.Job {
	out := make([]models.Job, len(s.jobs))
	for i, job := range s.jobs {
		out[i] = cloneJob(job)
	}
	return out
}

// Get returns the job with the given id, or nil if there is none.
func (s *Store) Get(id string) *models.Job {
	i, ok := s.index[id]
	if !ok {
		return nil
	}

	job := cloneJob(s.jobs[i])
	return &job
}

func (s *Store) Len() int {
	return len(s.jobs)
}

func cloneJob(job models.Job) models.Job {
	if job.Salary != nil {
		salary := *job.Salary
		job.Salary = &salary
	}
	if job.ApplyURL != nil {
		applyURL := *job.ApplyURL
		job.ApplyURL = &applyURL
	}
	if job.Requirements != nil {
		job.Requirements = append([]string(nil), job.Requirements...)
	}
	return job
}
