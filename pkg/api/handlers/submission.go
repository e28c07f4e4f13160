package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/pkg/api/errors"
	"github.com/estatedesk/backend/pkg/intake"
	"github.com/estatedesk/backend/pkg/metrics"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SubmissionHandler handles the public landing-page contact form.
type SubmissionHandler struct {
	intakeService *intake.Service
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(client *ent.Client, m *metrics.Metrics) *SubmissionHandler {
	return &SubmissionHandler{
		intakeService: intake.NewService(client),
		metrics:       m,
		validator:     validator.New(),
	}
}

// Submit accepts a public contact form submission. The endpoint is
// unauthenticated; abuse control is the rate limiter in front of it.
func (h *SubmissionHandler) Submit(c echo.Context) error {
	var req intake.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.intakeService.Submit(ctx, req)
	if err != nil {
		log.Printf("❌ Failed to process submission: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to process submission",
		})
	}

	h.metrics.RecordSubmission()
	if result.LeadCreated {
		h.metrics.RecordLeadCreated("landing_page")
	} else {
		h.metrics.RecordSubmissionDeduped()
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":    true,
		"submission": result.Submission,
	})
}
