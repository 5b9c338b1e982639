package ports

import (
	"context"
	"time"

	"github.com/cv360/marketplace/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	EmployerID      string
	Title           string
	Description     string
	Location        string
	SalaryRange     string
	JobType         string
	Requirements    string
	IsInternational bool
	Deadline        *time.Time
}

// ListJobsInput selects the listing view: employers see their own
// postings, every other role sees approved postings only.
type ListJobsInput struct {
	Role   string
	UserID string
}

// JobService defines use-case operations for job postings.
type JobService interface {
	CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	ListJobs(ctx context.Context, input ListJobsInput) ([]domain.Job, error)
}
