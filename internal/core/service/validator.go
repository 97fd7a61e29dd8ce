package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

// ReferenceValidator checks that the entities a candidate appointment
// points at actually exist. The referenced collections are independent,
// so the lookups are fanned out concurrently and joined before any
// verdict is produced. Each check is an independent read; no shared
// state is touched.
type ReferenceValidator struct {
	patients    ports.PatientRepository
	departments ports.DepartmentRepository
	users       ports.UserRepository
}

func NewReferenceValidator(patients ports.PatientRepository, departments ports.DepartmentRepository, users ports.UserRepository) *ReferenceValidator {
	return &ReferenceValidator{patients: patients, departments: departments, users: users}
}

// Check validates every supplied reference. Omitted references are
// skipped, supporting partial updates. Failures are collected, not
// short-circuited: the returned error joins one entry per offending
// reference so the caller can report all problems at once. A storage
// failure on any lookup takes precedence and is returned alone.
func (v *ReferenceValidator) Check(ctx context.Context, refs ports.AppointmentRefs) error {
	if refs.Empty() {
		return nil
	}

	var (
		wg            sync.WaitGroup
		patientErr    error
		departmentErr error
		doctorErr     error
	)

	if refs.PatientID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			patientErr = v.checkPatient(ctx, refs.PatientID)
		}()
	}
	if refs.DepartmentID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			departmentErr = v.checkDepartment(ctx, refs.DepartmentID)
		}()
	}
	if refs.DoctorID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doctorErr = v.checkDoctor(ctx, refs.DoctorID)
		}()
	}
	wg.Wait()

	failures := make([]error, 0, 3)
	for _, err := range []error{patientErr, departmentErr, doctorErr} {
		if err == nil {
			continue
		}
		if !domain.IsReferenceError(err) {
			return err
		}
		failures = append(failures, err)
	}
	if len(failures) == 0 {
		return nil
	}
	return errors.Join(failures...)
}

func (v *ReferenceValidator) checkPatient(ctx context.Context, id string) error {
	_, err := v.patients.FindByID(ctx, id)
	if errors.Is(err, domain.ErrPatientNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidPatientRef, id)
	}
	return err
}

func (v *ReferenceValidator) checkDepartment(ctx context.Context, id string) error {
	_, err := v.departments.FindByID(ctx, id)
	if errors.Is(err, domain.ErrDepartmentNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidDepartmentRef, id)
	}
	return err
}

// checkDoctor requires both existence and the doctor role: a valid user
// id that belongs to a nurse or admin is not a valid doctor reference.
func (v *ReferenceValidator) checkDoctor(ctx context.Context, id string) error {
	user, err := v.users.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidDoctorRef, id)
	}
	if err != nil {
		return err
	}
	if user.Role != domain.RoleDoctor {
		return fmt.Errorf("%w: %s", domain.ErrInvalidDoctorRef, id)
	}
	return nil
}
