package domain

import (
	"errors"
	"time"
)

var ErrPatientNotFound = errors.New("patient not found")

// Patient holds demographic and contact data for appointment workflows.
type Patient struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Gender     string    `json:"gender,omitempty"`
	BloodGroup string    `json:"blood_group,omitempty"`
	Address    string    `json:"address,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
