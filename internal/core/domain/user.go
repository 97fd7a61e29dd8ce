package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountInactive = errors.New("account inactive")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

var ErrTokenMissing = errors.New("missing authorization token")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")

// ValidRole reports whether role belongs to the fixed role enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RoleNurse:
		return true
	}
	return false
}

// User models a staff account: administrators, doctors and nurses.
// Email is stored lowercased so lookups are case-insensitive equality
// comparisons, never pattern matches built from user input.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	Name          string    `json:"name,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Specialty     string    `json:"specialty,omitempty"`
	DepartmentID  string    `json:"department_id,omitempty"`
	Experience    string    `json:"experience,omitempty"`
	Qualification string    `json:"qualification,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Principal is the authenticated identity attached to a request after
// token verification. It is rebuilt per request from the user record
// and never persisted.
type Principal struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
