package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/pkg/activities"
	"github.com/estatedesk/backend/pkg/api/errors"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ActivityHandler handles the activity log. The log is append-only, so
// there are no update or delete routes.
type ActivityHandler struct {
	activityService *activities.Service
	validator       *validator.Validate
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(client *ent.Client) *ActivityHandler {
	return &ActivityHandler{
		activityService: activities.NewService(client),
		validator:       validator.New(),
	}
}

// CreateActivity logs an interaction authored by the authenticated user.
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	var req activities.CreateActivityRequest
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

	activity, err := h.activityService.CreateActivity(ctx, userID, req)
	if err != nil {
		if err.Error() == "referenced record not found" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_reference",
				Message: "Referenced lead, property, or deal not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create activity",
		})
	}

	return c.JSON(http.StatusCreated, activity)
}

// maxActivityLimit bounds the activity feed. The full-log view never
// returns more than the 100 most recent rows.
const maxActivityLimit = 100

// ListActivities returns the activity feed, newest first. An optional
// limit query parameter lowers the cap; it can never raise it.
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	limit := maxActivityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_limit",
				Message: "Limit must be a positive integer",
			})
		}
		if parsed < limit {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	rows, err := h.activityService.ListActivities(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to list activities",
		})
	}

	return c.JSON(http.StatusOK, rows)
}
