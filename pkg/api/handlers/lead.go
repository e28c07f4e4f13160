package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/pkg/activities"
	"github.com/estatedesk/backend/pkg/api/errors"
	"github.com/estatedesk/backend/pkg/leads"
	"github.com/estatedesk/backend/pkg/metrics"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// LeadHandler handles lead CRUD requests.
type LeadHandler struct {
	leadService     *leads.Service
	activityService *activities.Service
	metrics         *metrics.Metrics
	validator       *validator.Validate
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(client *ent.Client, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		leadService:     leads.NewService(client),
		activityService: activities.NewService(client),
		metrics:         m,
		validator:       validator.New(),
	}
}

// CreateLead creates a lead from the CRM side.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	var req leads.CreateLeadRequest
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

	lead, err := h.leadService.CreateLead(ctx, req)
	if err != nil {
		if err.Error() == "lead email already in use" {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "lead_exists",
				Message: "A lead with this email already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create lead",
		})
	}

	h.metrics.RecordLeadCreated(lead.Source)

	return c.JSON(http.StatusCreated, lead)
}

// GetLead returns one lead by ID.
func (h *LeadHandler) GetLead(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	lead, err := h.leadService.GetLeadByID(ctx, leadID)
	if err != nil {
		if err.Error() == "lead not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Lead not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to get lead",
		})
	}

	return c.JSON(http.StatusOK, lead)
}

// ListLeads returns all leads, newest first.
func (h *LeadHandler) ListLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	rows, err := h.leadService.ListLeads(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to list leads",
		})
	}

	return c.JSON(http.StatusOK, rows)
}

// ListLeadActivities returns the activity history of one lead.
func (h *LeadHandler) ListLeadActivities(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	rows, err := h.activityService.ListForLead(ctx, leadID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to list activities",
		})
	}

	return c.JSON(http.StatusOK, rows)
}

// UpdateLead applies a partial update to a lead.
func (h *LeadHandler) UpdateLead(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req leads.UpdateLeadRequest
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

	lead, err := h.leadService.UpdateLead(ctx, leadID, req)
	if err != nil {
		if err.Error() == "lead not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Lead not found",
			})
		}
		if err.Error() == "lead email already in use" {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "lead_exists",
				Message: "A lead with this email already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to update lead",
		})
	}

	return c.JSON(http.StatusOK, lead)
}

// DeleteLead deletes a lead.
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil || leadID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.leadService.DeleteLead(ctx, leadID); err != nil {
		if err.Error() == "lead not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Lead not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to delete lead",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Lead deleted successfully",
	})
}
