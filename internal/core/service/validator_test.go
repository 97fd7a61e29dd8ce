package service

import (
	"context"
	"errors"
	"testing"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

type stubPatientRepo struct {
	patients map[string]*domain.Patient
	calls    int
	findErr  error
}

func newStubPatientRepo(ids ...string) *stubPatientRepo {
	r := &stubPatientRepo{patients: make(map[string]*domain.Patient)}
	for _, id := range ids {
		r.patients[id] = &domain.Patient{ID: id}
	}
	return r
}

func (r *stubPatientRepo) Create(_ context.Context, patient *domain.Patient) (*domain.Patient, error) {
	copy := *patient
	if copy.ID == "" {
		copy.ID = "patient_" + copy.Name
	}
	r.patients[copy.ID] = &copy
	return &copy, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id string) (*domain.Patient, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	if p, ok := r.patients[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, domain.ErrPatientNotFound
}

func (r *stubPatientRepo) List(_ context.Context) ([]*domain.Patient, error) {
	var out []*domain.Patient
	for _, p := range r.patients {
		copy := *p
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, id string, update ports.PatientUpdate) (*domain.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	copy := *p
	return &copy, nil
}

type stubDepartmentRepo struct {
	departments map[string]*domain.Department
	calls       int
}

func newStubDepartmentRepo(ids ...string) *stubDepartmentRepo {
	r := &stubDepartmentRepo{departments: make(map[string]*domain.Department)}
	for _, id := range ids {
		r.departments[id] = &domain.Department{ID: id, Name: "dept " + id}
	}
	return r
}

func (r *stubDepartmentRepo) Create(_ context.Context, department *domain.Department) (*domain.Department, error) {
	copy := *department
	if copy.ID == "" {
		copy.ID = "dept_" + copy.Name
	}
	r.departments[copy.ID] = &copy
	return &copy, nil
}

func (r *stubDepartmentRepo) FindByID(_ context.Context, id string) (*domain.Department, error) {
	r.calls++
	if d, ok := r.departments[id]; ok {
		copy := *d
		return &copy, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (r *stubDepartmentRepo) FindByName(_ context.Context, name string) (*domain.Department, error) {
	for _, d := range r.departments {
		if d.Name == name {
			copy := *d
			return &copy, nil
		}
	}
	return nil, domain.ErrDepartmentNotFound
}

func (r *stubDepartmentRepo) List(_ context.Context) ([]*domain.Department, error) {
	var out []*domain.Department
	for _, d := range r.departments {
		copy := *d
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubDepartmentRepo) Update(_ context.Context, id string, update ports.DepartmentUpdate) (*domain.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, domain.ErrDepartmentNotFound
	}
	if update.Name != nil {
		d.Name = *update.Name
	}
	if update.Description != nil {
		d.Description = *update.Description
	}
	copy := *d
	return &copy, nil
}

func (r *stubDepartmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(r.departments, id)
	return nil
}

func validatorFixture() (*ReferenceValidator, *stubPatientRepo, *stubDepartmentRepo, *stubUserRepo) {
	patients := newStubPatientRepo("p1")
	departments := newStubDepartmentRepo("d1")
	users := newStubUserRepo()
	users.add(&domain.User{ID: "doc1", Role: domain.RoleDoctor, Status: domain.StatusActive})
	users.add(&domain.User{ID: "n1", Role: domain.RoleNurse, Status: domain.StatusActive})
	return NewReferenceValidator(patients, departments, users), patients, departments, users
}

func TestReferenceValidator_AllValid(t *testing.T) {
	v, _, _, _ := validatorFixture()

	refs := ports.AppointmentRefs{PatientID: "p1", DepartmentID: "d1", DoctorID: "doc1"}
	if err := v.Check(context.Background(), refs); err != nil {
		t.Fatalf("expected all references valid, got %v", err)
	}
}

func TestReferenceValidator_EmptyRefsSkipsLookups(t *testing.T) {
	v, patients, departments, users := validatorFixture()

	if err := v.Check(context.Background(), ports.AppointmentRefs{}); err != nil {
		t.Fatalf("expected nil for empty refs, got %v", err)
	}
	if patients.calls != 0 || departments.calls != 0 || users.findByIDCalls != 0 {
		t.Fatalf("expected no lookups, got patients=%d departments=%d users=%d",
			patients.calls, departments.calls, users.findByIDCalls)
	}
}

func TestReferenceValidator_OnlySuppliedRefsChecked(t *testing.T) {
	v, patients, departments, users := validatorFixture()

	refs := ports.AppointmentRefs{DoctorID: "doc1"}
	if err := v.Check(context.Background(), refs); err != nil {
		t.Fatalf("expected valid doctor ref, got %v", err)
	}
	if patients.calls != 0 || departments.calls != 0 {
		t.Fatalf("expected only the doctor lookup, got patients=%d departments=%d", patients.calls, departments.calls)
	}
	if users.findByIDCalls != 1 {
		t.Fatalf("expected one doctor lookup, got %d", users.findByIDCalls)
	}
}

func TestReferenceValidator_NurseIsNotValidDoctorRef(t *testing.T) {
	v, _, _, _ := validatorFixture()

	refs := ports.AppointmentRefs{PatientID: "p1", DepartmentID: "d1", DoctorID: "n1"}
	err := v.Check(context.Background(), refs)
	if !errors.Is(err, domain.ErrInvalidDoctorRef) {
		t.Fatalf("expected ErrInvalidDoctorRef, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidPatientRef) || errors.Is(err, domain.ErrInvalidDepartmentRef) {
		t.Fatalf("valid references reported as invalid: %v", err)
	}
}

func TestReferenceValidator_CollectsAllFailures(t *testing.T) {
	v, _, _, _ := validatorFixture()

	refs := ports.AppointmentRefs{PatientID: "missing-p", DepartmentID: "d1", DoctorID: "missing-doc"}
	err := v.Check(context.Background(), refs)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidPatientRef) {
		t.Fatalf("missing patient ref not reported: %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidDoctorRef) {
		t.Fatalf("missing doctor ref not reported: %v", err)
	}
	if errors.Is(err, domain.ErrInvalidDepartmentRef) {
		t.Fatalf("valid department ref reported as invalid: %v", err)
	}
}

func TestReferenceValidator_StorageErrorTakesPrecedence(t *testing.T) {
	v, patients, _, _ := validatorFixture()
	storageErr := errors.New("connection reset")
	patients.findErr = storageErr

	refs := ports.AppointmentRefs{PatientID: "p1", DepartmentID: "d1", DoctorID: "missing-doc"}
	err := v.Check(context.Background(), refs)
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error to surface, got %v", err)
	}
	// The infrastructure failure must not be dressed up as a bad request.
	if domain.IsReferenceError(err) {
		t.Fatalf("storage error misreported as reference failure: %v", err)
	}
}
