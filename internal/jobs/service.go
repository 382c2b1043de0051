package jobs

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"job-board/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Application failure messages
const (
	MsgJobNotFound    = "Job not found"
	MsgRequiredFields = "Full name and email are required"
	MsgInvalidEmail   = "Invalid email format"
)

// Whitespace covers Unicode separators and BOM as well as ASCII space, tab,
// newline and vertical tab.
var emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// Service is the job board API consumed by the web and bot front-ends.
type Service struct {
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ListJobs returns the jobs matching criteria in seed order.
func (s *Service) ListJobs(criteria models.FilterCriteria) []models.Job {
	jobs := Apply(s.store.All(), criteria)

	s.logger.Debug("jobs listed",
		zap.Bool("filtered", !criteria.IsEmpty()),
		zap.Int("total", s.store.Len()),
		zap.Int("returned", len(jobs)),
	)

	return jobs
}

// GetJob returns nil when no job has the given id.
func (s *Service) GetJob(id string) *models.Job {
	return s.store.Get(id)
}

// SubmitApplication validates an application for jobID. Failures are
// reported in the result, never as an error. Nothing is stored: every
// successful call yields a new application id.
func (s *Service) SubmitApplication(jobID string, data models.ApplicationData) models.ApplicationResult {
	job := s.store.Get(jobID)
	if job == nil {
		return s.reject(jobID, MsgJobNotFound)
	}

	if data.FullName == "" || data.Email == "" {
		return s.reject(jobID, MsgRequiredFields)
	}

	if !emailRegex.MatchString(data.Email) {
		return s.reject(jobID, MsgInvalidEmail)
	}

	applicationID := s.newApplicationID()

	s.logger.Info("application submitted",
		zap.String("job_id", jobID),
		zap.String("application_id", applicationID),
		zap.Bool("has_cover_letter", data.CoverLetter != nil),
		zap.Bool("has_resume", data.Resume != nil),
	)

	return models.ApplicationResult{
		Success:       true,
		Message:       fmt.Sprintf("Application submitted successfully for %s at %s", job.Title, job.Company),
		ApplicationID: applicationID,
	}
}

func (s *Service) reject(jobID, message string) models.ApplicationResult {
	s.logger.Info("application rejected",
		zap.String("job_id", jobID),
		zap.String("reason", message),
	)

	return models.ApplicationResult{
		Success: false,
		Message: message,
	}
}

// newApplicationID combines a millisecond timestamp with a random suffix.
// Uniqueness is best effort.
func (s *Service) newApplicationID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("app_%d_%s", s.now().UnixMilli(), suffix)
}
