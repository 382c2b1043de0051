package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"job-board/internal/models"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type jobRow struct {
	ID             string         `db:"id"`
	Title          string         `db:"title"`
	Company        string         `db:"company"`
	Location       string         `db:"location"`
	SalaryMin      sql.NullInt64  `db:"salary_min"`
	SalaryMax      sql.NullInt64  `db:"salary_max"`
	SalaryCurrency sql.NullString `db:"salary_currency"`
	Description    string         `db:"description"`
	Requirements   pq.StringArray `db:"requirements"`
	JobType        string         `db:"job_type"`
	PostedDate     string         `db:"posted_date"`
	ApplyURL       sql.NullString `db:"apply_url"`
}

// LoadJobs returns every row of the jobs table ordered by position.
func (s *Store) LoadJobs(ctx context.Context) ([]models.Job, error) {
	var rows []jobRow

	_, err := s.sess.
		Select(
			"id", "title", "company", "location",
			"salary_min", "salary_max", "salary_currency",
			"description", "requirements", "job_type",
			"to_char(posted_date, 'YYYY-MM-DD') AS posted_date",
			"apply_url",
		).
		From("jobs").
		OrderBy("position").
		LoadContext(ctx, &rows)

	if err != nil {
		s.logger.Error("failed to load jobs", zap.Error(err))
		return nil, fmt.Errorf("load jobs: %w", err)
	}

	jobs := make([]models.Job, 0, len(rows))
	for _, row := range rows {
		job, err := row.toModel()
		if err != nil {
			s.logger.Error("invalid job row",
				zap.String("job_id", row.ID),
				zap.Error(err),
			)
			return nil, err
		}
		jobs = append(jobs, job)
	}

	s.logger.Info("jobs loaded from PostgreSQL", zap.Int("count", len(jobs)))

	return jobs, nil
}

func (r jobRow) toModel() (models.Job, error) {
	if !models.IsValidJobType(r.JobType) {
		return models.Job{}, fmt.Errorf("job %q: unknown type %q", r.ID, r.JobType)
	}

	job := models.Job{
		ID:           r.ID,
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Description:  r.Description,
		Requirements: []string(r.Requirements),
		Type:         models.JobType(r.JobType),
		PostedDate:   r.PostedDate,
	}

	// a salary needs both ends of the range
	if r.SalaryMin.Valid && r.SalaryMax.Valid {
		job.Salary = &models.Salary{
			Min:      int(r.SalaryMin.Int64),
			Max:      int(r.SalaryMax.Int64),
			Currency: r.SalaryCurrency.String,
		}
	}

	if r.ApplyURL.Valid && r.ApplyURL.String != "" {
		applyURL := r.ApplyURL.String
		job.ApplyURL = &applyURL
	}

	return job, nil
}
