package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

type stubAdminService struct {
	stats *ports.AdminStats
	users []domain.User
}

func (s *stubAdminService) Stats(_ context.Context) (*ports.AdminStats, error) {
	return s.stats, nil
}

func (s *stubAdminService) RefreshStats(_ context.Context) (*ports.AdminStats, error) {
	return s.stats, nil
}

func (s *stubAdminService) Users(_ context.Context) ([]domain.User, error) {
	return s.users, nil
}

func TestAdminHandler_Stats(t *testing.T) {
	handler := NewAdminHandler(&stubAdminService{
		stats: &ports.AdminStats{TotalWorkers: 3, PendingJobs: 1},
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/stats", "")

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_workers"] != float64(3) || resp["pending_jobs"] != float64(1) {
		t.Fatalf("unexpected stats payload: %+v", resp)
	}
}

func TestAdminHandler_Users_EmptyIsArray(t *testing.T) {
	handler := NewAdminHandler(&stubAdminService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/users", "")

	if err := handler.Users(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}
