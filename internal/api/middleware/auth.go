package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/caresync/clinic-system/internal/api/metrics"
	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
	"github.com/caresync/clinic-system/internal/pkg/token"
)

// Revoker reports whether a token id has been revoked.
type Revoker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth verifies the bearer token, re-resolves the subject against the
// user store and injects the resulting principal into the context. The
// re-resolution step means a deleted or stale account loses access even
// while its token is still cryptographically valid. Failures never
// retry; each one short-circuits with 401.
func Auth(codec *token.Codec, users ports.UserRepository, revoked Revoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenMissing
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := c.Request().Context()

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(ctx, claims.TokenID)
				if err != nil {
					return err
				}
				if isRevoked {
					metrics.TokenRejectionsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			user, err := users.FindByID(ctx, claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				return err
			}

			c.Set("principal", domain.Principal{
				ID:     user.ID,
				Email:  user.Email,
				Role:   user.Role,
				Status: user.Status,
			})
			c.Set("role", user.Role)
			c.Set("claims", claims)

			return next(c)
		}
	}
}
