package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/caresync/clinic-system/internal/api/metrics"
	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Role     string `json:"role" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userSummary is the redacted user view returned on login. The password
// hash is never serialized.
type userSummary struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type loginResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  userSummary `json:"user"`
}

// Login authenticates role-aware credentials and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Keep the label set bounded: anything outside the role enumeration
	// lands in a single "other" bucket.
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !domain.ValidRole(role) {
		role = "other"
	}

	signed, user, err := h.authService.Login(c.Request().Context(), req.Role, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues(role, "invalid_credentials").Inc()
		case errors.Is(err, domain.ErrAccountInactive):
			metrics.LoginAttemptsTotal.WithLabelValues(role, "inactive").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(role, "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token: signed,
		Role:  user.Role,
		User: userSummary{
			Email:  user.Email,
			Role:   user.Role,
			Status: user.Status,
		},
	})
}

// Logout revokes the presented token for its remaining lifetime.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), claims.TokenID, claims.ExpiresAt); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
