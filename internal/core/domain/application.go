package domain

import (
	"errors"
	"time"
)

// ApplicationStatus tracks the employer's decision on an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

var ErrAlreadyApplied = errors.New("already applied for this job")

// Application links a worker to a job posting. One application per
// worker per job.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"job_id"`
	WorkerID  string            `json:"worker_id"`
	Status    ApplicationStatus `json:"status"`
	Message   string            `json:"message,omitempty"`
	AppliedAt time.Time         `json:"applied_at"`
}
