package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/caresync/clinic-system/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user1",
		Email: "dr@clinic.local",
		Role:  domain.RoleDoctor,
	}
}

func TestCodec_IssueAndVerify(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	signed, err := codec.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != "user1" || claims.Email != "dr@clinic.local" || claims.Role != domain.RoleDoctor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenID == "" {
		t.Fatalf("expected a token id")
	}
	remaining := time.Until(claims.ExpiresAt)
	if remaining <= 55*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry: %v from now", remaining)
	}
}

func TestCodec_UniqueTokenIDs(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	first, err := codec.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	second, err := codec.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	c1, err := codec.Verify(first)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	c2, err := codec.Verify(second)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if c1.TokenID == c2.TokenID {
		t.Fatalf("token ids must differ per issuance")
	}
}

func TestCodec_Verify_Expired(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Verify(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	other := NewCodec("other-secret", time.Hour)

	signed, err := other.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := codec.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestCodec_Verify_RejectsForeignAlgorithm(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	// Same secret, different signing method: must be rejected.
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "user1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestCodec_Verify_MissingSubject(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestCodec_Verify_Garbage(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	if _, err := codec.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
