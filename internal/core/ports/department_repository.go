package ports

import (
	"context"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// DepartmentUpdate carries a partial department update. Nil fields are
// left untouched.
type DepartmentUpdate struct {
	Name        *string
	Description *string
}

// DepartmentRepository defines persistence operations for departments.
// List returns departments ordered by name for predictable rendering.
type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) (*domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	FindByName(ctx context.Context, name string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, id string, update DepartmentUpdate) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}
