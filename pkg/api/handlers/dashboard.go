package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/pkg/activities"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/estatedesk/backend/pkg/pipeline"
	"github.com/labstack/echo/v4"
)

// recentActivityCount is how many feed entries the dashboard shows.
const recentActivityCount = 10

// DashboardHandler serves the CRM dashboard summary.
type DashboardHandler struct {
	pipelineService *pipeline.Service
	activityService *activities.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(client *ent.Client) *DashboardHandler {
	return &DashboardHandler{
		pipelineService: pipeline.NewService(client),
		activityService: activities.NewService(client),
	}
}

// DashboardResponse combines the pipeline summary with the latest
// activity feed entries.
type DashboardResponse struct {
	*pipeline.Summary
	RecentActivities []*activities.ActivityResponse `json:"recent_activities"`
}

// GetDashboard returns the pipeline summary and recent activities.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	summary, err := h.pipelineService.Summarize(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to compute dashboard summary",
		})
	}

	recent, err := h.activityService.ListActivities(ctx, recentActivityCount)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load recent activities",
		})
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		Summary:          summary,
		RecentActivities: recent,
	})
}
