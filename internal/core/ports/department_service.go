package ports

import (
	"context"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// DepartmentService defines use-case operations for departments.
type DepartmentService interface {
	// Create persists a new department. Names are unique; a duplicate
	// fails with domain.ErrDepartmentExists.
	Create(ctx context.Context, name, description string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, id string, update DepartmentUpdate) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}
