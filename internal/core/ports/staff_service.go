package ports

import (
	"context"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// CreateStaffInput carries admin-supplied data for a new staff account.
// The role is never part of the input: each operation assigns it
// server-side to prevent privilege escalation through the payload.
type CreateStaffInput struct {
	Email         string
	Password      string
	Name          string
	Phone         string
	Specialty     string
	DepartmentID  string
	Experience    string
	Qualification string
	Status        string
}

// StaffService manages doctor and nurse accounts on behalf of admins.
type StaffService interface {
	CreateDoctor(ctx context.Context, input CreateStaffInput) (*domain.User, error)
	CreateNurse(ctx context.Context, input CreateStaffInput) (*domain.User, error)
	ListDoctors(ctx context.Context) ([]*domain.User, error)
	UpdateDoctor(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	// ChangePassword verifies oldPassword against the stored hash before
	// replacing it with a hash of newPassword.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
