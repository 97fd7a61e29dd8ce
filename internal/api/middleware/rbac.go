package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces a fixed allowed-role set, declared per route. The check
// is a pure membership test on the principal's role; no storage access.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "you do not have permission to perform this action")
			}
			return next(c)
		}
	}
}
