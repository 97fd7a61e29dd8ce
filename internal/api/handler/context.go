package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/pkg/token"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// A missing principal means the middleware never ran on this route.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get("principal").(domain.Principal)
	if !ok || p.Role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}

// ctxClaims extracts the verified token claims injected by the Auth
// middleware.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, ok := c.Get("claims").(*token.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
