package ports

import (
	"context"
	"time"

	"github.com/caresync/clinic-system/internal/core/domain"
)

// AppointmentFilter narrows appointment listings. A non-empty DoctorID
// scopes results to appointments assigned to that doctor.
type AppointmentFilter struct {
	DoctorID string
}

// AppointmentUpdate carries a partial appointment update. Nil fields
// are left untouched by the repository.
type AppointmentUpdate struct {
	PatientID     *string
	DepartmentID  *string
	DoctorID      *string
	Status        *domain.AppointmentStatus
	Date          *time.Time
	Time          *string
	ReservationID *string
	Notes         *string
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]*domain.Appointment, error)
	// Update applies the non-nil fields of update and returns the stored
	// record, or domain.ErrAppointmentNotFound when id does not resolve.
	Update(ctx context.Context, id string, update AppointmentUpdate) (*domain.Appointment, error)
}
