package cvclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func loggedInManager(t *testing.T, baseURL string, opts ...ManagerOption) *Manager {
	t.Helper()
	store := NewMemoryStore()
	if err := store.Save(authenticated(RoleWorker)); err != nil {
		t.Fatal(err)
	}
	m := NewManager(NewClient(baseURL), store, opts...)
	if _, err := m.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	return m
}

func TestJobsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-worker" {
			t.Errorf("authorization header = %q", got)
		}
		jsonResponse(w, http.StatusOK, []Job{
			{ID: "j1", Title: "Welder", JobType: "full_time", IsApproved: true},
			{ID: "j2", Title: "Driver", JobType: "contract", IsApproved: true},
		})
	}))
	defer srv.Close()

	m := loggedInManager(t, srv.URL)

	jobs, err := m.Jobs(context.Background())
	if err != nil {
		t.Fatalf("jobs: %v", err)
	}
	if len(jobs) != 2 || jobs[0].Title != "Welder" {
		t.Fatalf("jobs = %+v", jobs)
	}
}

func TestResourceAnonymousIsRejectedLocally(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	m := NewManager(NewClient(srv.URL), NewMemoryStore())

	_, err := m.Jobs(context.Background())
	var ae *AuthError
	if !errors.As(err, &ae) || ae.Kind != AuthRejected {
		t.Fatalf("error = %v, want *AuthError rejected", err)
	}
	if requests != 0 {
		t.Fatalf("anonymous call issued %d requests, want 0", requests)
	}
}

func TestResource401LeavesSessionByDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	m := loggedInManager(t, srv.URL)

	_, err := m.Jobs(context.Background())
	var ae *AuthError
	if !errors.As(err, &ae) || ae.Kind != AuthRejected {
		t.Fatalf("error = %v, want *AuthError rejected", err)
	}

	// The rejection is surfaced, the session stays: the caller decides.
	if m.Current().Anonymous() {
		t.Fatal("401 cleared the session without being asked to")
	}
}

func TestResource401InvalidatesWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	m := loggedInManager(t, srv.URL, WithInvalidateOn401(true))

	_, err := m.Jobs(context.Background())
	var ae *AuthError
	if !errors.As(err, &ae) || ae.Kind != AuthRejected {
		t.Fatalf("error = %v, want *AuthError rejected", err)
	}
	if !m.Current().Anonymous() {
		t.Fatal("401 did not clear the session")
	}
}

func TestResource403DoesNotInvalidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	}))
	defer srv.Close()

	// Even with invalidation on, a role rejection is not a bad token.
	m := loggedInManager(t, srv.URL, WithInvalidateOn401(true))

	_, err := m.CreateJob(context.Background(), JobRequest{Title: "Welder", Description: "d", Location: "l", JobType: "full_time"})
	var ae *AuthError
	if !errors.As(err, &ae) || ae.Kind != AuthRejected {
		t.Fatalf("error = %v, want *AuthError rejected", err)
	}
	if m.Current().Anonymous() {
		t.Fatal("403 cleared the session")
	}
}

func TestApplySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/applications" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		jsonResponse(w, http.StatusCreated, applyResponse{
			Message:     "application submitted",
			Application: Application{ID: "a1", JobID: "j1", Status: "pending"},
		})
	}))
	defer srv.Close()

	m := loggedInManager(t, srv.URL)

	app, err := m.Apply(context.Background(), "j1", "I can start Monday")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.ID != "a1" || app.Status != "pending" {
		t.Fatalf("application = %+v", app)
	}
}

func TestApplyDuplicateSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusConflict, map[string]string{"error": "already applied to this job"})
	}))
	defer srv.Close()

	m := loggedInManager(t, srv.URL)

	_, err := m.Apply(context.Background(), "j1", "")
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *ServerError", err)
	}
	if se.Status != http.StatusConflict || se.Message != "already applied to this job" {
		t.Fatalf("server error = %+v", se)
	}
}

func TestAdminStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, AdminStats{
			TotalWorkers:      8,
			TotalEmployers:    3,
			TotalJobs:         5,
			TotalApplications: 20,
			PendingJobs:       2,
		})
	}))
	defer srv.Close()

	m := loggedInManager(t, srv.URL)

	stats, err := m.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalWorkers != 8 || stats.TotalApplications != 20 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestResourceMalformedBodyIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	m := loggedInManager(t, srv.URL)

	_, err := m.Jobs(context.Background())
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *ServerError", err)
	}
}
