package ports

import (
	"context"

	"github.com/cv360/marketplace/internal/core/domain"
)

// ApplyInput carries a worker's application to a job posting.
type ApplyInput struct {
	JobID    string
	WorkerID string
	Message  string
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.Application, error)
}
