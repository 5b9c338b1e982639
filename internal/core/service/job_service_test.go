package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

type stubJobRepo struct {
	jobs []domain.Job
	seq  int
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.seq++
	copy := *job
	copy.ID = fmt.Sprintf("job-%d", r.seq)
	r.jobs = append(r.jobs, copy)
	return &copy, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			copy := r.jobs[i]
			return &copy, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) FindByEmployer(_ context.Context, employerID string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *stubJobRepo) FindApproved(_ context.Context) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if j.IsApproved {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

func (r *stubJobRepo) CountUnapproved(_ context.Context) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if !j.IsApproved {
			n++
		}
	}
	return n, nil
}

func (r *stubJobRepo) approve(id string) {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].IsApproved = true
		}
	}
}

func seedEmployer(t *testing.T, users *stubUserRepo) *domain.User {
	t.Helper()
	employer, err := users.Create(context.Background(), &domain.User{
		Username: "acme",
		Email:    "acme@example.com",
		Role:     domain.RoleEmployer,
		FullName: "Acme Logistics",
	})
	if err != nil {
		t.Fatalf("seed employer: %v", err)
	}
	return employer
}

func TestJobService_CreateJob(t *testing.T) {
	users := newStubUserRepo()
	jobs := &stubJobRepo{}
	svc := NewJobService(jobs, users, zerolog.Nop())

	employer := seedEmployer(t, users)

	job, err := svc.CreateJob(context.Background(), ports.CreateJobInput{
		EmployerID:  employer.ID,
		Title:       "Forklift operator",
		Description: "Night shifts at the central warehouse.",
		Location:    "Rotterdam",
		SalaryRange: "2500-3000",
		JobType:     "full_time",
	})
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}
	if job.ID == "" {
		t.Fatalf("expected assigned job ID")
	}
	if job.EmployerName != "Acme Logistics" {
		t.Fatalf("expected denormalized employer name, got %q", job.EmployerName)
	}
	if job.IsApproved {
		t.Fatalf("new jobs must await approval")
	}
}

func TestJobService_CreateJob_SanitizesMarkup(t *testing.T) {
	users := newStubUserRepo()
	jobs := &stubJobRepo{}
	svc := NewJobService(jobs, users, zerolog.Nop())

	employer := seedEmployer(t, users)

	job, err := svc.CreateJob(context.Background(), ports.CreateJobInput{
		EmployerID:  employer.ID,
		Title:       "Cleaner",
		Description: `Great team<script>alert("x")</script>`,
		Location:    "Utrecht",
		SalaryRange: "2000-2200",
		JobType:     "part_time",
	})
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}
	if job.Description != "Great team" {
		t.Fatalf("expected script stripped, got %q", job.Description)
	}
}

func TestJobService_CreateJob_NonEmployer(t *testing.T) {
	users := newStubUserRepo()
	jobs := &stubJobRepo{}
	svc := NewJobService(jobs, users, zerolog.Nop())

	worker, _ := users.Create(context.Background(), &domain.User{
		Username: "wanda", Email: "wanda@example.com", Role: domain.RoleWorker, FullName: "Wanda",
	})

	if _, err := svc.CreateJob(context.Background(), ports.CreateJobInput{EmployerID: worker.ID, Title: "x"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobService_ListJobs_ByRole(t *testing.T) {
	users := newStubUserRepo()
	jobs := &stubJobRepo{}
	svc := NewJobService(jobs, users, zerolog.Nop())

	employer := seedEmployer(t, users)

	first, _ := svc.CreateJob(context.Background(), ports.CreateJobInput{
		EmployerID: employer.ID, Title: "A", Description: "a", Location: "X", SalaryRange: "1", JobType: "full_time",
	})
	_, _ = svc.CreateJob(context.Background(), ports.CreateJobInput{
		EmployerID: employer.ID, Title: "B", Description: "b", Location: "X", SalaryRange: "1", JobType: "full_time",
	})
	jobs.approve(first.ID)

	own, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Role: domain.RoleEmployer, UserID: employer.ID})
	if err != nil {
		t.Fatalf("ListJobs employer: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("employer should see both postings, got %d", len(own))
	}

	visible, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Role: domain.RoleWorker, UserID: "user-99"})
	if err != nil {
		t.Fatalf("ListJobs worker: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != first.ID {
		t.Fatalf("worker should only see the approved posting, got %+v", visible)
	}
}
