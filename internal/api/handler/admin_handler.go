package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charactervault/character-api/internal/core/ports"
)

// AdminHandler handles the ADMIN-only user management endpoints.
type AdminHandler struct {
	service ports.UserAdminService
}

func NewAdminHandler(service ports.UserAdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type updateStatusRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// ListUsers returns every user record. Password hashes are never serialized.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole changes a user's role.
//
// @Summary      Update a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User role updated successfully"})
}

// UpdateStatus enables or disables a user account.
//
// @Summary      Update a user's enabled status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/users/{id}/status [put]
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetEnabled(c.Request().Context(), c.Param("id"), *req.Enabled); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User status updated successfully"})
}
