package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

// PatientService is thin orchestration over the patient repository;
// field-level rules live in the request schemas.
type PatientService struct {
	repo   ports.PatientRepository
	logger zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, logger zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, logger: logger}
}

func (s *PatientService) Create(ctx context.Context, input ports.CreatePatientInput) (*domain.Patient, error) {
	patient := &domain.Patient{
		Name:       input.Name,
		Email:      normalize(input.Email),
		Phone:      input.Phone,
		Gender:     input.Gender,
		BloodGroup: input.BloodGroup,
		Address:    input.Address,
		Status:     domain.StatusActive,
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create patient")
		return nil, err
	}

	s.logger.Info().Str("patient_id", created.ID).Msg("patient created")
	return created, nil
}

func (s *PatientService) List(ctx context.Context) ([]*domain.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) Update(ctx context.Context, id string, update ports.PatientUpdate) (*domain.Patient, error) {
	if update.Email != nil {
		email := normalize(*update.Email)
		update.Email = &email
	}
	return s.repo.Update(ctx, id, update)
}
