// Package token signs and verifies the compact claims object carried in
// Authorization headers. Claims are intentionally minimal (subject id,
// role, email) to limit blast radius if a token leaks.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/caresync/clinic-system/internal/core/domain"
)

const defaultTTL = time.Hour

// Claims is the verified content of an issued token.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// Codec issues and verifies HS256-signed tokens with a fixed lifetime.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for user. Repeated calls produce independently
// valid tokens; nothing is recorded server-side.
func (c *Codec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry. Expired tokens fail with
// domain.ErrTokenExpired; every other failure is collapsed to
// domain.ErrTokenInvalid so the boundary leaks no parsing detail.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrTokenInvalid
	}

	out := &Claims{
		UserID:    stringClaim(claims, "sub"),
		Email:     stringClaim(claims, "email"),
		Role:      stringClaim(claims, "role"),
		TokenID:   stringClaim(claims, "jti"),
		ExpiresAt: exp.Time,
	}
	if out.UserID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return out, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
