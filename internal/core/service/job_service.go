package service

import (
	"context"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

// JobService implements posting and listing of jobs.
type JobService struct {
	jobs      ports.JobRepository
	users     ports.UserRepository
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, logger zerolog.Logger) *JobService {
	return &JobService{
		jobs:  jobs,
		users: users,
		// Descriptions are rendered to other users, strip anything but
		// basic formatting.
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
	}
}

// CreateJob persists a new posting for the employer. The employer's full
// name is denormalized onto the posting so listings need no join.
func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	employer, err := s.users.FindByID(ctx, input.EmployerID)
	if err != nil {
		return nil, err
	}
	if employer.Role != domain.RoleEmployer {
		return nil, domain.ErrForbidden
	}

	job := &domain.Job{
		EmployerID:      employer.ID,
		EmployerName:    employer.FullName,
		Title:           s.sanitizer.Sanitize(input.Title),
		Description:     s.sanitizer.Sanitize(input.Description),
		Location:        input.Location,
		SalaryRange:     input.SalaryRange,
		JobType:         input.JobType,
		Requirements:    s.sanitizer.Sanitize(input.Requirements),
		IsInternational: input.IsInternational,
		Deadline:        input.Deadline,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("employer_id", employer.ID).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("employer_id", employer.ID).Msg("job created")
	return created, nil
}

// ListJobs returns the listing appropriate for the caller's role:
// employers see their own postings, everyone else sees approved ones.
func (s *JobService) ListJobs(ctx context.Context, input ports.ListJobsInput) ([]domain.Job, error) {
	if input.Role == domain.RoleEmployer {
		return s.jobs.FindByEmployer(ctx, input.UserID)
	}
	return s.jobs.FindApproved(ctx)
}
