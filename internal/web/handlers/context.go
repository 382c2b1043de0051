package handlers

import (
	"context"

	"job-board/internal/models"

	"go.uber.org/zap"
)

// JobService is the job board API the handlers render.
type JobService interface {
	ListJobs(criteria models.FilterCriteria) []models.Job
	GetJob(id string) *models.Job
	SubmitApplication(jobID string, data models.ApplicationData) models.ApplicationResult
}

// Pinger is a backing service checked by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Context contains deps for all handlers
type Context struct {
	Jobs    JobService
	Checks  map[string]Pinger
	Logger  *zap.Logger
	Version string
}
