package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	lastFilter   ports.AppointmentFilter
	createCalls  int
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.createCalls++
	copy := *appointment
	if copy.ID == "" {
		copy.ID = "appt1"
	}
	r.appointments[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		copy := *a
		return &copy, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) List(_ context.Context, filter ports.AppointmentFilter) ([]*domain.Appointment, error) {
	r.lastFilter = filter
	var out []*domain.Appointment
	for _, a := range r.appointments {
		if filter.DoctorID != "" && a.DoctorID != filter.DoctorID {
			continue
		}
		copy := *a
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, id string, update ports.AppointmentUpdate) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	if update.PatientID != nil {
		a.PatientID = *update.PatientID
	}
	if update.DoctorID != nil {
		a.DoctorID = *update.DoctorID
	}
	if update.Status != nil {
		a.Status = *update.Status
	}
	if update.Notes != nil {
		a.Notes = *update.Notes
	}
	copy := *a
	return &copy, nil
}

// recordingValidator captures every refs argument passed to Check.
type recordingValidator struct {
	calls []ports.AppointmentRefs
	err   error
}

func (v *recordingValidator) Check(_ context.Context, refs ports.AppointmentRefs) error {
	v.calls = append(v.calls, refs)
	return v.err
}

func TestAppointmentService_Create_ValidatesAllRefs(t *testing.T) {
	repo := newStubAppointmentRepo()
	validator := &recordingValidator{}
	svc := NewAppointmentService(repo, validator, zerolog.Nop())

	input := ports.CreateAppointmentInput{
		PatientID:    "p1",
		DepartmentID: "d1",
		DoctorID:     "doc1",
		Date:         time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Time:         "10:30",
	}
	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(validator.calls) != 1 {
		t.Fatalf("expected one validation call, got %d", len(validator.calls))
	}
	got := validator.calls[0]
	want := ports.AppointmentRefs{PatientID: "p1", DepartmentID: "d1", DoctorID: "doc1"}
	if got != want {
		t.Fatalf("validator received %+v, want %+v", got, want)
	}
	if created.Status != domain.StatusScheduled {
		t.Fatalf("expected default status Scheduled, got %s", created.Status)
	}
}

func TestAppointmentService_Create_InvalidRefBlocksWrite(t *testing.T) {
	repo := newStubAppointmentRepo()
	refErr := errors.New("invalid patient reference: missing-p")
	validator := &recordingValidator{err: refErr}
	svc := NewAppointmentService(repo, validator, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		PatientID:    "missing-p",
		DepartmentID: "d1",
		DoctorID:     "doc1",
	})
	if !errors.Is(err, refErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("appointment persisted despite failed validation")
	}
}

func TestAppointmentService_Create_KeepsExplicitStatus(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, &recordingValidator{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		PatientID:    "p1",
		DepartmentID: "d1",
		DoctorID:     "doc1",
		Status:       domain.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.StatusCompleted {
		t.Fatalf("explicit status overwritten: %s", created.Status)
	}
}

func TestAppointmentService_Update_NoRefsSkipsValidation(t *testing.T) {
	repo := newStubAppointmentRepo()
	repo.appointments["a1"] = &domain.Appointment{ID: "a1", PatientID: "p1", DoctorID: "doc1"}
	validator := &recordingValidator{}
	svc := NewAppointmentService(repo, validator, zerolog.Nop())

	notes := "follow-up in two weeks"
	status := domain.StatusCompleted
	if _, err := svc.Update(context.Background(), "a1", ports.AppointmentUpdate{Notes: &notes, Status: &status}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(validator.calls) != 0 {
		t.Fatalf("validator invoked for a refless update: %+v", validator.calls)
	}
}

func TestAppointmentService_Update_RevalidatesOnlySuppliedRefs(t *testing.T) {
	repo := newStubAppointmentRepo()
	repo.appointments["a1"] = &domain.Appointment{ID: "a1", PatientID: "p1", DepartmentID: "d1", DoctorID: "doc1"}
	validator := &recordingValidator{}
	svc := NewAppointmentService(repo, validator, zerolog.Nop())

	newDoctor := "doc2"
	if _, err := svc.Update(context.Background(), "a1", ports.AppointmentUpdate{DoctorID: &newDoctor}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(validator.calls) != 1 {
		t.Fatalf("expected one validation call, got %d", len(validator.calls))
	}
	got := validator.calls[0]
	if got.DoctorID != "doc2" || got.PatientID != "" || got.DepartmentID != "" {
		t.Fatalf("expected only the doctor ref to be validated, got %+v", got)
	}
}

func TestAppointmentService_Update_NotFound(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, &recordingValidator{}, zerolog.Nop())

	notes := "n"
	if _, err := svc.Update(context.Background(), "ghost", ports.AppointmentUpdate{Notes: &notes}); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestAppointmentService_List_ScopesDoctors(t *testing.T) {
	repo := newStubAppointmentRepo()
	repo.appointments["a1"] = &domain.Appointment{ID: "a1", DoctorID: "doc1"}
	repo.appointments["a2"] = &domain.Appointment{ID: "a2", DoctorID: "doc2"}
	svc := NewAppointmentService(repo, &recordingValidator{}, zerolog.Nop())

	out, err := svc.List(context.Background(), domain.Principal{ID: "doc1", Role: domain.RoleDoctor})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter.DoctorID != "doc1" {
		t.Fatalf("doctor listing not scoped: %+v", repo.lastFilter)
	}
	if len(out) != 1 || out[0].ID != "a1" {
		t.Fatalf("unexpected listing: %+v", out)
	}

	if _, err := svc.List(context.Background(), domain.Principal{ID: "adm1", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter.DoctorID != "" {
		t.Fatalf("admin listing unexpectedly scoped: %+v", repo.lastFilter)
	}
}
