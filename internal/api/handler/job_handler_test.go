package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

type stubJobService struct {
	createFn func(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error)
	listFn   func(ctx context.Context, input ports.ListJobsInput) ([]domain.Job, error)
}

func (s *stubJobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	return s.createFn(ctx, input)
}

func (s *stubJobService) ListJobs(ctx context.Context, input ports.ListJobsInput) ([]domain.Job, error) {
	return s.listFn(ctx, input)
}

func TestJobHandler_List(t *testing.T) {
	stub := &stubJobService{
		listFn: func(_ context.Context, input ports.ListJobsInput) ([]domain.Job, error) {
			if input.Role != "worker" || input.UserID != "user-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return []domain.Job{{ID: "job-1", Title: "Picker", IsApproved: true}}, nil
		},
	}
	handler := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/jobs", "")
	c.Set("user_id", "user-1")
	c.Set("role", "worker")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var jobs []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &jobs); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(jobs) != 1 || jobs[0]["title"] != "Picker" {
		t.Fatalf("unexpected listing: %+v", jobs)
	}
}

func TestJobHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubJobService{
		listFn: func(_ context.Context, _ ports.ListJobsInput) ([]domain.Job, error) {
			return nil, nil
		},
	}
	handler := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/jobs", "")
	c.Set("user_id", "user-1")
	c.Set("role", "worker")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestJobHandler_Create(t *testing.T) {
	stub := &stubJobService{
		createFn: func(_ context.Context, input ports.CreateJobInput) (*domain.Job, error) {
			if input.EmployerID != "user-2" || input.Title != "Driver" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Deadline == nil || input.Deadline.Format("2006-01-02") != "2026-12-31" {
				t.Fatalf("deadline not parsed: %+v", input.Deadline)
			}
			return &domain.Job{ID: "job-9", EmployerID: input.EmployerID, Title: input.Title, JobType: input.JobType}, nil
		},
	}
	handler := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/jobs",
		`{"title":"Driver","description":"d","location":"NL","salary_range":"3000","job_type":"full_time","deadline":"2026-12-31"}`)
	c.Set("user_id", "user-2")
	c.Set("role", "employer")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestJobHandler_Create_MissingFields(t *testing.T) {
	stub := &stubJobService{
		createFn: func(_ context.Context, _ ports.CreateJobInput) (*domain.Job, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/jobs", `{"title":"Driver"}`)
	c.Set("user_id", "user-2")
	c.Set("role", "employer")

	_ = handler.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestJobHandler_Create_ServiceError(t *testing.T) {
	stub := &stubJobService{
		createFn: func(_ context.Context, _ ports.CreateJobInput) (*domain.Job, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/jobs",
		`{"title":"Driver","description":"d","location":"NL","salary_range":"3000","job_type":"full_time"}`)
	c.Set("user_id", "user-3")
	c.Set("role", "employer")

	if err := handler.Create(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}
