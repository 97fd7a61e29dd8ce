package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caresync/clinic-system/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"inactive account", domain.ErrAccountInactive, http.StatusForbidden, "your account is currently inactive, kindly reach out to the admin for support"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{"missing token", domain.ErrTokenMissing, http.StatusUnauthorized, "missing authorization token"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
		{"appointment not found", domain.ErrAppointmentNotFound, http.StatusNotFound, "appointment not found"},
		{"patient not found", domain.ErrPatientNotFound, http.StatusNotFound, "patient not found"},
		{"department not found", domain.ErrDepartmentNotFound, http.StatusNotFound, "department not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"duplicate department", domain.ErrDepartmentExists, http.StatusConflict, "department already exists"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := handleError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestErrorHandler_JoinedReferenceErrors(t *testing.T) {
	err := errors.Join(
		fmt.Errorf("%w: p9", domain.ErrInvalidPatientRef),
		fmt.Errorf("%w: doc9", domain.ErrInvalidDoctorRef),
	)

	code, msg := handleError(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	// Both offending references must be reported in a single flat message.
	if !strings.Contains(msg, "invalid patient reference: p9") {
		t.Fatalf("patient failure missing from %q", msg)
	}
	if !strings.Contains(msg, "invalid doctor reference: doc9") {
		t.Fatalf("doctor failure missing from %q", msg)
	}
	if strings.Contains(msg, "\n") {
		t.Fatalf("message contains raw newlines: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", code)
	}
	if msg != "short and stout" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	code, msg := handleError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// Internal details never leak to the client.
	if msg != "internal server error" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
