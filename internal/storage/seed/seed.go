// Package seed holds the job postings compiled into the binary.
package seed

import (
	_ "embed"
	"fmt"

	"job-board/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed jobs.yaml
var jobsYAML []byte

// Jobs decodes the embedded postings in file order.
func Jobs() ([]models.Job, error) {
	return Parse(jobsYAML)
}

// Parse decodes a YAML list of jobs, rejecting unknown job types.
func Parse(data []byte) ([]models.Job, error) {
	var jobs []models.Job
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("unmarshal jobs: %w", err)
	}

	for _, job := range jobs {
		if !models.IsValidJobType(string(job.Type)) {
			return nil, fmt.Errorf("job %q: unknown type %q", job.ID, job.Type)
		}
	}

	return jobs, nil
}
