package ports

import (
	"context"
	"time"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// AppointmentRefs names the entities a candidate appointment points at.
// Empty fields were not supplied and are skipped by validation.
type AppointmentRefs struct {
	PatientID    string
	DepartmentID string
	DoctorID     string
}

// Empty reports whether no reference was supplied at all.
func (r AppointmentRefs) Empty() bool {
	return r.PatientID == "" && r.DepartmentID == "" && r.DoctorID == ""
}

// ReferenceValidator confirms that every supplied reference resolves to
// an existing entity and that the doctor reference carries the doctor
// role. A nil return means all supplied references are valid; otherwise
// the error joins one failure per offending reference.
type ReferenceValidator interface {
	Check(ctx context.Context, refs AppointmentRefs) error
}

// CreateAppointmentInput carries all data needed to book an appointment.
type CreateAppointmentInput struct {
	PatientID     string
	DepartmentID  string
	DoctorID      string
	Status        domain.AppointmentStatus
	Date          time.Time
	Time          string
	ReservationID string
	Notes         string
}

// AppointmentService defines use-case operations for appointments.
type AppointmentService interface {
	Create(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	// List returns appointments visible to the acting principal: doctors
	// see only their own, administrators see all.
	List(ctx context.Context, principal domain.Principal) ([]*domain.Appointment, error)
	Update(ctx context.Context, id string, update AppointmentUpdate) (*domain.Appointment, error)
}
