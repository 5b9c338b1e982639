package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

type stubApplicationService struct {
	applyFn func(ctx context.Context, input ports.ApplyInput) (*domain.Application, error)
}

func (s *stubApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	return s.applyFn(ctx, input)
}

func TestApplicationHandler_Apply(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(_ context.Context, input ports.ApplyInput) (*domain.Application, error) {
			if input.JobID != "job-1" || input.WorkerID != "user-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Application{ID: "app-1", JobID: input.JobID, WorkerID: input.WorkerID, Status: domain.ApplicationPending}, nil
		},
	}
	handler := NewApplicationHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/applications",
		`{"job_id":"job-1","message":"hello"}`)
	c.Set("user_id", "user-1")
	c.Set("role", "worker")

	if err := handler.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestApplicationHandler_Apply_MissingJobID(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(_ context.Context, _ ports.ApplyInput) (*domain.Application, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewApplicationHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/applications", `{"message":"hello"}`)
	c.Set("user_id", "user-1")
	c.Set("role", "worker")

	_ = handler.Apply(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestApplicationHandler_Apply_Duplicate(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(_ context.Context, _ ports.ApplyInput) (*domain.Application, error) {
			return nil, domain.ErrAlreadyApplied
		},
	}
	handler := NewApplicationHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/applications", `{"job_id":"job-1"}`)
	c.Set("user_id", "user-1")
	c.Set("role", "worker")

	if err := handler.Apply(c); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied to propagate, got %v", err)
	}
}
