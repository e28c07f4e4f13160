package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/pkg/api/errors"
	"github.com/estatedesk/backend/pkg/deals"
	"github.com/estatedesk/backend/pkg/metrics"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// DealHandler handles deal CRUD requests.
type DealHandler struct {
	dealService *deals.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewDealHandler creates a new deal handler.
func NewDealHandler(client *ent.Client, m *metrics.Metrics) *DealHandler {
	return &DealHandler{
		dealService: deals.NewService(client),
		metrics:     m,
		validator:   validator.New(),
	}
}

// CreateDeal opens a deal between a lead and a property.
func (h *DealHandler) CreateDeal(c echo.Context) error {
	var req deals.CreateDealRequest
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

	deal, err := h.dealService.CreateDeal(ctx, req)
	if err != nil {
		if err.Error() == "lead or property not found" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_reference",
				Message: "Lead or property not found",
			})
		}
		if err.Error() == "invalid expected close date" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "Expected close date must be YYYY-MM-DD",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create deal",
		})
	}

	return c.JSON(http.StatusCreated, deal)
}

// GetDeal returns one deal by ID.
func (h *DealHandler) GetDeal(c echo.Context) error {
	dealID, err := strconv.Atoi(c.Param("id"))
	if err != nil || dealID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid deal ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	deal, err := h.dealService.GetDealByID(ctx, dealID)
	if err != nil {
		if err.Error() == "deal not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Deal not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to get deal",
		})
	}

	return c.JSON(http.StatusOK, deal)
}

// ListDeals returns all deals with lead and property, newest first.
func (h *DealHandler) ListDeals(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	rows, err := h.dealService.ListDeals(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to list deals",
		})
	}

	return c.JSON(http.StatusOK, rows)
}

// UpdateDeal applies a partial update to a deal.
func (h *DealHandler) UpdateDeal(c echo.Context) error {
	dealID, err := strconv.Atoi(c.Param("id"))
	if err != nil || dealID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid deal ID",
		})
	}

	var req deals.UpdateDealRequest
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

	deal, justClosed, err := h.dealService.UpdateDeal(ctx, dealID, req)
	if err != nil {
		if err.Error() == "deal not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Deal not found",
			})
		}
		if err.Error() == "invalid expected close date" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "Expected close date must be YYYY-MM-DD",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to update deal",
		})
	}

	if justClosed {
		h.metrics.RecordDealClosed()
	}

	return c.JSON(http.StatusOK, deal)
}

// DeleteDeal deletes a deal.
func (h *DealHandler) DeleteDeal(c echo.Context) error {
	dealID, err := strconv.Atoi(c.Param("id"))
	if err != nil || dealID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid deal ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.dealService.DeleteDeal(ctx, dealID); err != nil {
		if err.Error() == "deal not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Deal not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to delete deal",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Deal deleted successfully",
	})
}
