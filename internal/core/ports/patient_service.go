package ports

import (
	"context"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// CreatePatientInput carries data for a new patient record.
type CreatePatientInput struct {
	Name       string
	Email      string
	Phone      string
	Gender     string
	BloodGroup string
	Address    string
}

// PatientService defines use-case operations for patient records.
type PatientService interface {
	Create(ctx context.Context, input CreatePatientInput) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	Update(ctx context.Context, id string, update PatientUpdate) (*domain.Patient, error)
}
