package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cv360/marketplace/internal/api/metrics"
	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

// ApplicationHandler handles workers applying to jobs.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applyRequest struct {
	JobID   string `json:"job_id" validate:"required"`
	Message string `json:"message"`
}

type applyResponse struct {
	Message     string              `json:"message"`
	Application *domain.Application `json:"application"`
}

// Apply submits an application for the authenticated worker.
//
// @Summary      Apply for a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Application"
// @Success      201   {object}  applyResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	application, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:    req.JobID,
		WorkerID: userID,
		Message:  req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			metrics.ApplicationsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.ApplicationsTotal.WithLabelValues("submitted").Inc()
	return c.JSON(http.StatusCreated, applyResponse{
		Message:     "application submitted successfully",
		Application: application,
	})
}
