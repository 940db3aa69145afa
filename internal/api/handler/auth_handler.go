package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cjalex1313/trex-gym/internal/api/metrics"
	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

// AuthHandler exposes the public login and refresh endpoints plus /me.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type adminLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type clientLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Pin   string `json:"pin"   validate:"required,len=6,numeric"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LoginAdmin authenticates a back-office operator.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin credentials"
// @Success      200   {object}  ports.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "success").Inc()
	return c.JSON(http.StatusOK, result)
}

// LoginClient authenticates a gym member by email and PIN.
//
// @Summary      Client login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      clientLoginRequest  true  "Client credentials"
// @Success      200   {object}  ports.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/client/login [post]
func (h *AuthHandler) LoginClient(c echo.Context) error {
	var req clientLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.LoginClient(c.Request().Context(), req.Email, req.Pin)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.RoleClient, "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleClient, "success").Inc()
	return c.JSON(http.StatusOK, result)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
//
// @Summary      Refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  domain.TokenPair
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, pair)
}

// Me returns the identity carried by the presented access token. Available to
// any authenticated principal.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AuthenticatedUser
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
