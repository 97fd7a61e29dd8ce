package ports

import (
	"context"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// PatientUpdate carries a partial patient update. Nil fields are left
// untouched.
type PatientUpdate struct {
	Name       *string
	Email      *string
	Phone      *string
	Gender     *string
	BloodGroup *string
	Address    *string
	Status     *string
}

// PatientRepository defines persistence operations for patient records.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	Update(ctx context.Context, id string, update PatientUpdate) (*domain.Patient, error)
}
