package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

// AdminService serves the admin dashboard: platform statistics and the
// full user listing.
type AdminService struct {
	users        ports.UserRepository
	jobs         ports.JobRepository
	applications ports.ApplicationRepository
	cache        ports.StatsCache
	logger       zerolog.Logger
}

func NewAdminService(users ports.UserRepository, jobs ports.JobRepository, applications ports.ApplicationRepository, cache ports.StatsCache, logger zerolog.Logger) *AdminService {
	return &AdminService{
		users:        users,
		jobs:         jobs,
		applications: applications,
		cache:        cache,
		logger:       logger,
	}
}

// Stats returns the cached aggregates when fresh, recomputing on a miss.
// A cache read failure falls through to a recompute rather than failing
// the request.
func (s *AdminService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	if s.cache != nil {
		stats, err := s.cache.Get(ctx)
		if err == nil && stats != nil {
			return stats, nil
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		}
	}
	return s.RefreshStats(ctx)
}

// RefreshStats recomputes the aggregates from the repositories and
// rewrites the cache. Also invoked on a schedule, see internal/jobs.
func (s *AdminService) RefreshStats(ctx context.Context) (*ports.AdminStats, error) {
	workers, err := s.users.CountByRole(ctx, domain.RoleWorker)
	if err != nil {
		return nil, err
	}
	employers, err := s.users.CountByRole(ctx, domain.RoleEmployer)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.jobs.CountUnapproved(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.AdminStats{
		TotalWorkers:      workers,
		TotalEmployers:    employers,
		TotalJobs:         jobs,
		TotalApplications: applications,
		PendingJobs:       pending,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}
