package ports

import (
	"context"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// UserUpdate carries a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Name          *string
	Phone         *string
	Specialty     *string
	DepartmentID  *string
	Experience    *string
	Qualification *string
	Status        *string
}

// UserRepository defines persistence operations for staff accounts.
// Email arguments are expected pre-normalized (lowercased, trimmed) by
// the caller; the repository performs plain equality lookups.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmailAndRole(ctx context.Context, email, role string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
