package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/estatedesk/backend/pkg/properties"
	"github.com/labstack/echo/v4"
)

// LandingHandler serves the public landing-page property view.
type LandingHandler struct {
	propertyService *properties.Service
}

// NewLandingHandler creates a new landing page handler.
func NewLandingHandler(client *ent.Client) *LandingHandler {
	return &LandingHandler{
		propertyService: properties.NewService(client),
	}
}

// GetProperty returns one published property by slug. Unpublished and
// off-market properties are indistinguishable from missing ones here.
func (h *LandingHandler) GetProperty(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_slug",
			Message: "Property slug is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	property, err := h.propertyService.GetPublishedBySlug(ctx, slug)
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
