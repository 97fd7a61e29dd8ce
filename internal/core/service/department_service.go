package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/ports"
)

// DepartmentService enforces department name uniqueness on top of the
// repository.
type DepartmentService struct {
	repo   ports.DepartmentRepository
	logger zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

func (s *DepartmentService) Create(ctx context.Context, name, description string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, domain.ErrDepartmentExists
	} else if !errors.Is(err, domain.ErrDepartmentNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Department{Name: name, Description: description})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("department_id", created.ID).Str("name", created.Name).Msg("department created")
	return created, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]*domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *DepartmentService) Update(ctx context.Context, id string, update ports.DepartmentUpdate) (*domain.Department, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if update.Description != nil {
		description := strings.TrimSpace(*update.Description)
		update.Description = &description
	}
	return s.repo.Update(ctx, id, update)
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	// Dependency checks (appointments, staff assignments) are the
	// caller's responsibility.
	return s.repo.Delete(ctx, id)
}
