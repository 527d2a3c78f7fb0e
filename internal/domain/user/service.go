package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("validation failed")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validRole(role string) bool {
	switch role {
	case RoleAdmin, RoleNurse, RoleClerk:
		return true
	}
	return false
}

func (s *Service) validate(u *User) error {
	if u.Login == "" {
		return fmt.Errorf("%w: login is required", ErrValidation)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !validRole(u.Role) {
		return fmt.Errorf("%w: invalid role %q", ErrValidation, u.Role)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, u *User) error {
	if err := s.validate(u); err != nil {
		return err
	}
	if existing, err := s.repo.GetByLogin(ctx, u.Login); err == nil && existing != nil {
		return fmt.Errorf("%w: login %q already taken", ErrValidation, u.Login)
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, u *User) error {
	if err := s.validate(u); err != nil {
		return err
	}
	if existing, err := s.repo.GetByLogin(ctx, u.Login); err == nil && existing != nil && existing.ID != u.ID {
		return fmt.Errorf("%w: login %q already taken", ErrValidation, u.Login)
	}
	return s.repo.Update(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.repo.List(ctx, limit, offset)
}
