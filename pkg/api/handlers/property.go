package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/pkg/api/errors"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/estatedesk/backend/pkg/properties"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PropertyHandler handles property CRUD requests.
type PropertyHandler struct {
	propertyService *properties.Service
	validator       *validator.Validate
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(client *ent.Client) *PropertyHandler {
	return &PropertyHandler{
		propertyService: properties.NewService(client),
		validator:       validator.New(),
	}
}

// CreateProperty creates a listing.
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req properties.CreatePropertyRequest
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

	property, err := h.propertyService.CreateProperty(ctx, req)
	if err != nil {
		if err.Error() == "property slug already in use" {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "slug_exists",
				Message: "A property with this slug already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to create property",
		})
	}

	return c.JSON(http.StatusCreated, property)
}

// GetProperty returns one property by ID.
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil || propertyID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	property, err := h.propertyService.GetPropertyByID(ctx, propertyID)
	if err != nil {
		if err.Error() == "property not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Property not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to get property",
		})
	}

	return c.JSON(http.StatusOK, property)
}

// ListProperties returns all listings, newest first.
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	rows, err := h.propertyService.ListProperties(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to list properties",
		})
	}

	return c.JSON(http.StatusOK, rows)
}

// UpdateProperty applies a partial update to a listing.
func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil || propertyID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
	}

	var req properties.UpdatePropertyRequest
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

	property, err := h.propertyService.UpdateProperty(ctx, propertyID, req)
	if err != nil {
		if err.Error() == "property not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Property not found",
			})
		}
		if err.Error() == "property slug already in use" {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "slug_exists",
				Message: "A property with this slug already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to update property",
		})
	}

	return c.JSON(http.StatusOK, property)
}

// DeleteProperty deletes a listing.
func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil || propertyID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.propertyService.DeleteProperty(ctx, propertyID); err != nil {
		if err.Error() == "property not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Property not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to delete property",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Property deleted successfully",
	})
}
