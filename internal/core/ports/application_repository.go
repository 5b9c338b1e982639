package ports

import (
	"context"

	"github.com/cv360/marketplace/internal/core/domain"
)

// ApplicationRepository defines the interface for application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	Exists(ctx context.Context, jobID, workerID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
