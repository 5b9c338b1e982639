package ports

import (
	"context"

	"github.com/cv360/marketplace/internal/core/domain"
)

// AdminStats is the aggregate view served on the admin dashboard.
type AdminStats struct {
	TotalWorkers      int64 `json:"total_workers"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
	PendingJobs       int64 `json:"pending_jobs"`
}

// StatsCache fronts the stats aggregation with a short-lived cache so the
// admin dashboard does not fan out count queries on every refresh.
type StatsCache interface {
	Get(ctx context.Context) (*AdminStats, error)
	Set(ctx context.Context, stats *AdminStats) error
}

// AdminService defines admin-only use cases.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
	// RefreshStats recomputes the aggregates and rewrites the cache.
	RefreshStats(ctx context.Context) (*AdminStats, error)
	Users(ctx context.Context) ([]domain.User, error)
}
