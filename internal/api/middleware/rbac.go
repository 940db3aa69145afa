package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RoleMap is the explicit route-to-roles configuration consulted by the
// access guard. Keys are "<METHOD> <route pattern>" as Echo registers them,
// e.g. "GET /clients/:id". A route absent from the map admits any
// authenticated principal.
type RoleMap map[string][]string

// RequireRoles enforces the RoleMap. It must run after Auth, which resolves
// the principal's role into the context.
func RequireRoles(routes RoleMap) echo.MiddlewareFunc {
	allowed := make(map[string]map[string]struct{}, len(routes))
	for route, roles := range routes {
		set := make(map[string]struct{}, len(roles))
		for _, r := range roles {
			set[r] = struct{}{}
		}
		allowed[route] = set
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			set, ok := allowed[c.Request().Method+" "+c.Path()]
			if !ok {
				return next(c)
			}

			role, _ := c.Get(CtxRole).(string)
			if _, ok := set[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}
