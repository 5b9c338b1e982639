package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/cv360/marketplace/internal/api/metrics"
	"github.com/cv360/marketplace/internal/core/ports"
)

const refreshTimeout = 30 * time.Second

// Scheduler runs periodic maintenance tasks, currently the admin stats
// cache refresh.
type Scheduler struct {
	cron   *cron.Cron
	admin  ports.AdminService
	logger zerolog.Logger
}

func NewScheduler(admin ports.AdminService, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		admin:  admin,
		logger: logger,
	}
}

// Start registers the jobs and launches the cron loop. spec is a standard
// five-field cron expression.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refreshStats); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info().Str("spec", spec).Msg("stats refresh scheduled")
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := s.admin.RefreshStats(ctx); err != nil {
		metrics.StatsRefreshTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("scheduled stats refresh failed")
		return
	}
	metrics.StatsRefreshTotal.WithLabelValues("ok").Inc()
	s.logger.Debug().Msg("stats cache refreshed")
}
