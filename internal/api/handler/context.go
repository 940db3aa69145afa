package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cjalex1313/trex-gym/internal/api/middleware"
	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

// ctxPrincipal extracts the identity injected by the access guard. A missing
// role means the guard did not run for this route; fail closed with 401.
func ctxPrincipal(c echo.Context) (domain.AuthenticatedUser, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return domain.AuthenticatedUser{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get(middleware.CtxUserID).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)

	return domain.AuthenticatedUser{ID: id, Email: email, Role: role}, nil
}
