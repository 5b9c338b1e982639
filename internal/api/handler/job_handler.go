package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cv360/marketplace/internal/api/metrics"
	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type createJobRequest struct {
	Title           string `json:"title"            validate:"required"`
	Description     string `json:"description"      validate:"required"`
	Location        string `json:"location"         validate:"required"`
	SalaryRange     string `json:"salary_range"     validate:"required"`
	JobType         string `json:"job_type"         validate:"required,oneof=full_time part_time contract temporary"`
	Requirements    string `json:"requirements"`
	IsInternational bool   `json:"is_international"`
	// Deadline is an optional RFC 3339 date.
	Deadline string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

// List returns the job listing for the caller's role.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  map[string]string
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListJobs(c.Request().Context(), ports.ListJobsInput{
		Role:   role,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return c.JSON(http.StatusOK, jobs)
}

// Create posts a new job for the authenticated employer.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var deadline *time.Time
	if req.Deadline != "" {
		d, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "deadline must be a YYYY-MM-DD date"})
		}
		deadline = &d
	}

	job, err := h.service.CreateJob(c.Request().Context(), ports.CreateJobInput{
		EmployerID:      userID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		JobType:         req.JobType,
		Requirements:    req.Requirements,
		IsInternational: req.IsInternational,
		Deadline:        deadline,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.JobType).Inc()
	return c.JSON(http.StatusCreated, job)
}
