package ports

import (
	"context"

	"github.com/cv360/marketplace/internal/core/domain"
)

// JobRepository defines the interface for job-posting persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// FindByEmployer returns the employer's own postings regardless of
	// approval state, newest first.
	FindByEmployer(ctx context.Context, employerID string) ([]domain.Job, error)
	// FindApproved returns approved postings only, newest first.
	FindApproved(ctx context.Context) ([]domain.Job, error)
	Count(ctx context.Context) (int64, error)
	CountUnapproved(ctx context.Context) (int64, error)
}
