package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether s belongs to the controlled status enumeration.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

var ErrAppointmentNotFound = errors.New("appointment not found")

var ErrInvalidPatientRef = errors.New("invalid patient reference")
var ErrInvalidDepartmentRef = errors.New("invalid department reference")
var ErrInvalidDoctorRef = errors.New("invalid doctor reference")

// IsReferenceError reports whether err carries at least one referential
// integrity failure. Joined errors are matched per offending reference.
func IsReferenceError(err error) bool {
	return errors.Is(err, ErrInvalidPatientRef) ||
		errors.Is(err, ErrInvalidDepartmentRef) ||
		errors.Is(err, ErrInvalidDoctorRef)
}

// Appointment links a patient, a department and a doctor at a given
// date and time. All three references must resolve to existing entities
// when the appointment is created, and the doctor reference must point
// to a user whose role is doctor.
type Appointment struct {
	ID            string            `json:"id"`
	PatientID     string            `json:"patient_id"`
	DepartmentID  string            `json:"department_id"`
	DoctorID      string            `json:"doctor_id"`
	Status        AppointmentStatus `json:"status"`
	Date          time.Time         `json:"date"`
	Time          string            `json:"time"`
	ReservationID string            `json:"reservation_id"`
	Notes         string            `json:"notes,omitempty"`
}
