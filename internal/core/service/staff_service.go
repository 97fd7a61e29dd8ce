package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

// Default passwords applied when an admin creates an account without
// one. Always hashed before persistence; staff are expected to change
// them on first login.
const (
	defaultDoctorPassword = "doctor@123"
	defaultNursePassword  = "nurse@123"
)

// StaffService manages doctor and nurse accounts. Roles are assigned
// server-side per operation, never taken from the request payload.
type StaffService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewStaffService(users ports.UserRepository, logger zerolog.Logger) *StaffService {
	return &StaffService{users: users, logger: logger}
}

func (s *StaffService) CreateDoctor(ctx context.Context, input ports.CreateStaffInput) (*domain.User, error) {
	return s.createStaff(ctx, input, domain.RoleDoctor, defaultDoctorPassword)
}

func (s *StaffService) CreateNurse(ctx context.Context, input ports.CreateStaffInput) (*domain.User, error) {
	return s.createStaff(ctx, input, domain.RoleNurse, defaultNursePassword)
}

func (s *StaffService) createStaff(ctx context.Context, input ports.CreateStaffInput, role, defaultPassword string) (*domain.User, error) {
	email := normalize(input.Email)
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	password := input.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}

	user := &domain.User{
		Email:         email,
		PasswordHash:  string(hash),
		Role:          role,
		Status:        status,
		Name:          input.Name,
		Phone:         input.Phone,
		Specialty:     input.Specialty,
		DepartmentID:  input.DepartmentID,
		Experience:    input.Experience,
		Qualification: input.Qualification,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", role).Msg("staff account created")
	return created, nil
}

func (s *StaffService) ListDoctors(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindByRole(ctx, domain.RoleDoctor)
}

// UpdateDoctor applies a partial update to a doctor account. Updating
// the status field is how admins activate or deactivate the login gate.
func (s *StaffService) UpdateDoctor(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	current, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Role != domain.RoleDoctor {
		return nil, domain.ErrUserNotFound
	}

	updated, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Str("status", updated.Status).Msg("doctor account updated")
	return updated, nil
}

// ChangePassword verifies the caller's current password before storing
// a hash of the new one.
func (s *StaffService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}
