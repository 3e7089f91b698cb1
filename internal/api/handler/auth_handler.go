package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charactervault/character-api/internal/api/metrics"
	"github.com/charactervault/character-api/internal/core/domain"
	"github.com/charactervault/character-api/internal/core/ports"
)

// AuthHandler handles login, registration, password reset and account updates.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type updateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

// jwtResponse mirrors the login/update-account contract. Token is a pointer so
// update-account can render an explicit null when no new token was minted.
type jwtResponse struct {
	Token    *string `json:"token"`
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  jwtResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrTooManyAttempts) {
			metrics.ThrottledLoginsTotal.Inc()
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, jwtResponse{
		Token:    &token,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}

// Register creates a new user account with role USER.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "User registered successfully"})
}

// ResetPassword overwrites the password for the account owning the email.
//
// @Summary      Reset a password by email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Email and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		return err
	}
	metrics.PasswordResetsTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Password reset successfully"})
}

// UpdateAccount changes the caller's own username and/or email. When the
// username changes, the response carries a replacement token; otherwise the
// token field is null and the caller keeps using its current one.
//
// @Summary      Update the authenticated user's account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateAccountRequest  true  "New username and email"
// @Success      200   {object}  jwtResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/update-account [put]
func (h *AuthHandler) UpdateAccount(c echo.Context) error {
	currentUsername, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.UpdateAccount(c.Request().Context(), currentUsername, req.Username, req.Email)
	if err != nil {
		return err
	}

	resp := jwtResponse{
		ID:       result.User.ID,
		Username: result.User.Username,
		Email:    result.User.Email,
		Role:     result.User.Role,
	}
	if result.Token != "" {
		resp.Token = &result.Token
	}
	return c.JSON(http.StatusOK, resp)
}
