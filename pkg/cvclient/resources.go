package cvclient

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Job mirrors the marketplace listing as returned by the backend.
type Job struct {
	ID              string     `json:"id"`
	EmployerID      string     `json:"employer_id"`
	EmployerName    string     `json:"employer_name"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	SalaryRange     string     `json:"salary_range"`
	JobType         string     `json:"job_type"`
	Requirements    string     `json:"requirements"`
	IsInternational bool       `json:"is_international"`
	IsApproved      bool       `json:"is_approved"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// JobRequest is the posting form submitted by an employer.
type JobRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	SalaryRange     string `json:"salary_range,omitempty"`
	JobType         string `json:"job_type"`
	Requirements    string `json:"requirements,omitempty"`
	IsInternational bool   `json:"is_international"`
	Deadline        string `json:"deadline,omitempty"`
}

// Application is a worker's submission against a job.
type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	WorkerID  string    `json:"worker_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	AppliedAt time.Time `json:"applied_at"`
}

// AdminStats is the platform-wide counters panel.
type AdminStats struct {
	TotalWorkers      int64 `json:"total_workers"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
	PendingJobs       int64 `json:"pending_jobs"`
}

// Profile fetches the caller's own account record.
func (m *Manager) Profile(ctx context.Context) (Profile, error) {
	var p Profile
	if err := m.resource(ctx, http.MethodGet, "/api/profile", nil, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Jobs lists the postings visible to the current role: approved listings
// for workers and admins, the employer's own postings for employers.
func (m *Manager) Jobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := m.resource(ctx, http.MethodGet, "/api/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob submits a new posting. The backend enforces the employer
// role; a worker token gets an AuthError with kind AuthRejected.
func (m *Manager) CreateJob(ctx context.Context, req JobRequest) (Job, error) {
	var job Job
	if err := m.resource(ctx, http.MethodPost, "/api/jobs", req, &job); err != nil {
		return Job{}, err
	}
	return job, nil
}

type applyRequest struct {
	JobID   string `json:"job_id"`
	Message string `json:"message,omitempty"`
}

type applyResponse struct {
	Message     string      `json:"message"`
	Application Application `json:"application"`
}

// Apply submits an application to a job on behalf of the current worker.
func (m *Manager) Apply(ctx context.Context, jobID, message string) (Application, error) {
	var resp applyResponse
	err := m.resource(ctx, http.MethodPost, "/api/applications", applyRequest{JobID: jobID, Message: message}, &resp)
	if err != nil {
		return Application{}, err
	}
	return resp.Application, nil
}

// AdminStats fetches the platform counters. Admin role only.
func (m *Manager) AdminStats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	if err := m.resource(ctx, http.MethodGet, "/api/admin/stats", nil, &stats); err != nil {
		return AdminStats{}, err
	}
	return stats, nil
}

// AdminUsers lists every registered account. Admin role only.
func (m *Manager) AdminUsers(ctx context.Context) ([]Profile, error) {
	var users []Profile
	if err := m.resource(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// resource performs an authenticated call with the current token. A 401
// becomes an AuthError with kind AuthRejected and, when the manager is
// configured to invalidate on 401, clears the session; by default the
// session is left untouched so the caller decides what a rejection
// means. A 403 also maps to AuthRejected but never touches the session.
func (m *Manager) resource(ctx context.Context, method, path string, body, out any) error {
	session := m.Current()
	if session.Anonymous() {
		return &AuthError{Kind: AuthRejected, Message: "not logged in"}
	}

	err := m.client.do(ctx, method, path, session.Token, body, out)
	if err == nil {
		return nil
	}

	var se *ServerError
	if errors.As(err, &se) {
		switch se.Status {
		case http.StatusUnauthorized:
			m.rejected()
			return &AuthError{Kind: AuthRejected, Message: se.Message}
		case http.StatusForbidden:
			return &AuthError{Kind: AuthRejected, Message: se.Message}
		}
	}
	return err
}

// profile confirms a token against the profile endpoint, used by
// Restore when revalidation is enabled.
func (c *Client) profile(ctx context.Context, token string) (Profile, error) {
	var p Profile
	err := c.do(ctx, http.MethodGet, "/api/profile", token, nil, &p)
	if err != nil {
		var se *ServerError
		if errors.As(err, &se) && se.Status == http.StatusUnauthorized {
			return Profile{}, &AuthError{Kind: AuthRejected, Message: se.Message}
		}
		return Profile{}, err
	}
	return p, nil
}
