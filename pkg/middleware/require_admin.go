package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/user"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/labstack/echo/v4"
)

// RequireAdmin ensures the authenticated user has the admin role.
// Apply AFTER the JWT authentication middleware.
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get user ID from context (set by JWT middleware)
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			// Role is checked against the database, not the token, so a
			// demotion takes effect before the token expires.
			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "user_not_found",
					Message: "User not found",
				})
			}

			if u.Role != user.RoleAdmin {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "insufficient_permissions",
					Message: "Admin access required",
				})
			}

			c.Set("user_role", u.Role.String())

			return next(c)
		}
	}
}
