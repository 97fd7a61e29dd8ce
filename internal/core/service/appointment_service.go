package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

// AppointmentService gates appointment writes behind referential
// validation. Validation and persistence are separate steps with no
// cross-collection transaction: a referenced entity can be deleted in
// the window between check and write.
type AppointmentService struct {
	repo      ports.AppointmentRepository
	validator ports.ReferenceValidator
	logger    zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, validator ports.ReferenceValidator, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, validator: validator, logger: logger}
}

// Create validates all three references, then persists the appointment.
func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	refs := ports.AppointmentRefs{
		PatientID:    input.PatientID,
		DepartmentID: input.DepartmentID,
		DoctorID:     input.DoctorID,
	}
	if err := s.validator.Check(ctx, refs); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusScheduled
	}

	appointment := &domain.Appointment{
		PatientID:     input.PatientID,
		DepartmentID:  input.DepartmentID,
		DoctorID:      input.DoctorID,
		Status:        status,
		Date:          input.Date,
		Time:          input.Time,
		ReservationID: input.ReservationID,
		Notes:         input.Notes,
	}

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", created.ID).
		Str("doctor_id", created.DoctorID).
		Str("patient_id", created.PatientID).
		Msg("appointment created")
	return created, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

// List scopes results by role: doctors see only their own appointments.
func (s *AppointmentService) List(ctx context.Context, principal domain.Principal) ([]*domain.Appointment, error) {
	filter := ports.AppointmentFilter{}
	if principal.Role == domain.RoleDoctor {
		filter.DoctorID = principal.ID
	}
	return s.repo.List(ctx, filter)
}

// Update revalidates only the references present in the partial update;
// absent fields are left untouched and unvalidated.
func (s *AppointmentService) Update(ctx context.Context, id string, update ports.AppointmentUpdate) (*domain.Appointment, error) {
	refs := ports.AppointmentRefs{}
	if update.PatientID != nil {
		refs.PatientID = *update.PatientID
	}
	if update.DepartmentID != nil {
		refs.DepartmentID = *update.DepartmentID
	}
	if update.DoctorID != nil {
		refs.DoctorID = *update.DoctorID
	}
	if !refs.Empty() {
		if err := s.validator.Check(ctx, refs); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("appointment_id", updated.ID).Msg("appointment updated")
	return updated, nil
}
