package ports

import (
	"context"
	"time"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// AuthService authenticates staff credentials and manages token lifecycle.
type AuthService interface {
	// Login verifies role-aware credentials and returns a signed token
	// plus the matched user. Role and email matching is case-insensitive.
	Login(ctx context.Context, role, email, password string) (string, *domain.User, error)
	// Logout revokes the token identified by tokenID until expiresAt.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// TokenRevoker records revoked token ids for the remaining token lifetime.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}
