package models

// JobType is the employment kind of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

var JobTypeDisplayNames = map[JobType]string{
	JobTypeFullTime:   "Full Time",
	JobTypePartTime:   "Part Time",
	JobTypeContract:   "Contract",
	JobTypeInternship: "Internship",
}

type Salary struct {
	Min      int    `json:"min" yaml:"min"`
	Max      int    `json:"max" yaml:"max"`
	Currency string `json:"currency" yaml:"currency"`
}

// Job is a single posting. Jobs are seeded at startup and never mutated.
type Job struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Company      string   `json:"company" yaml:"company"`
	Location     string   `json:"location" yaml:"location"`
	Salary       *Salary  `json:"salary,omitempty" yaml:"salary,omitempty"`
	Description  string   `json:"description" yaml:"description"`
	Requirements []string `json:"requirements" yaml:"requirements"`
	Type         JobType  `json:"type" yaml:"type"`
	PostedDate   string   `json:"postedDate" yaml:"postedDate"`
	ApplyURL     *string  `json:"applyUrl,omitempty" yaml:"applyUrl,omitempty"`
}

// JobTypes returns every job type in display order.
func JobTypes() []JobType {
	return []JobType{
		JobTypeFullTime,
		JobTypePartTime,
		JobTypeContract,
		JobTypeInternship,
	}
}

func IsValidJobType(text string) bool {
	_, ok := JobTypeDisplayNames[JobType(text)]
	return ok
}

func GetJobTypeDisplayName(t JobType) string {
	if name, ok := JobTypeDisplayNames[t]; ok {
		return name
	}
	return string(t)
}
