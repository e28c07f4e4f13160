package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/user"
	"github.com/estatedesk/backend/pkg/api/errors"
	"github.com/estatedesk/backend/pkg/auth"
	"github.com/estatedesk/backend/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles user provisioning. All routes behind it require
// the admin role.
type AdminHandler struct {
	db        *ent.Client
	validator *validator.Validate
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(db *ent.Client) *AdminHandler {
	return &AdminHandler{
		db:        db,
		validator: validator.New(),
	}
}

// CreateUserRequest represents an admin provisioning a new user with an
// explicit role.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin agent"`
}

// ListUsers returns all user accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	users, err := h.db.User.Query().
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "database_error",
		})
	}

	infos := make([]models.UserInfo, len(users))
	for i, u := range users {
		infos[i] = models.UserInfo{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		}
	}

	return c.JSON(http.StatusOK, infos)
}

// CreateUser provisions a new account with the given role.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
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

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "database_error",
		})
	}
	if exists {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "password_hashing_error",
		})
	}

	newUser, err := h.db.User.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetRole(user.Role(req.Role)).
		Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "user_creation_error",
		})
	}

	return c.JSON(http.StatusCreated, models.UserInfo{
		ID:    newUser.ID,
		Name:  newUser.Name,
		Email: newUser.Email,
		Role:  string(newUser.Role),
	})
}
