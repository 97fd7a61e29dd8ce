package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
	"github.com/caresync/clinic-system/internal/pkg/token"
)

// AuthService implements role-aware login and token revocation.
type AuthService struct {
	users   ports.UserRepository
	codec   *token.Codec
	revoker ports.TokenRevoker
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, revoker ports.TokenRevoker, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, revoker: revoker, logger: logger}
}

// Login resolves the account whose normalized email and role match the
// inputs, verifies the password and enforces the doctor activation gate
// before issuing a token. Whether role or email was wrong is never
// distinguished in the returned error.
func (s *AuthService) Login(ctx context.Context, role, email, password string) (string, *domain.User, error) {
	role = normalize(role)
	email = normalize(email)
	if role == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Only doctors are gated on activation status. Admin and nurse
	// accounts authenticate regardless of status.
	if user.Role == domain.RoleDoctor && user.Status != domain.StatusActive {
		return "", nil, domain.ErrAccountInactive
	}

	signed, err := s.codec.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return signed, user, nil
}

// Logout marks the token id as revoked for its remaining lifetime.
// Already-expired tokens need no entry.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, tokenID, ttl)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
