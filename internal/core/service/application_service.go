package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

// ApplicationService implements workers applying to job postings.
type ApplicationService struct {
	applications ports.ApplicationRepository
	jobs         ports.JobRepository
	logger       zerolog.Logger
}

func NewApplicationService(applications ports.ApplicationRepository, jobs ports.JobRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, logger: logger}
}

// Apply records a worker's application. The target job must exist and be
// approved; a worker may apply to a given job at most once.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	// Unapproved postings are invisible to workers, treat them as absent.
	if !job.IsApproved {
		return nil, domain.ErrJobNotFound
	}

	exists, err := s.applications.Exists(ctx, input.JobID, input.WorkerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	application := &domain.Application{
		ID:        uuid.NewString(),
		JobID:     input.JobID,
		WorkerID:  input.WorkerID,
		Status:    domain.ApplicationPending,
		Message:   input.Message,
		AppliedAt: time.Now().UTC(),
	}

	if err := s.applications.Create(ctx, application); err != nil {
		s.logger.Error().Err(err).Str("job_id", input.JobID).Msg("failed to store application")
		return nil, err
	}

	s.logger.Info().Str("application_id", application.ID).Str("job_id", input.JobID).Str("worker_id", input.WorkerID).Msg("application submitted")
	return application, nil
}
