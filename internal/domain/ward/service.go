package ward

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, w *Ward) error {
	if w.Code == "" {
		return fmt.Errorf("code is required")
	}
	if w.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, w)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Ward, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, w *Ward) error {
	if w.Code == "" {
		return fmt.Errorf("code is required")
	}
	return s.repo.Update(ctx, w)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Ward, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) AddRoom(ctx context.Context, r *Room) error {
	if r.WardID == uuid.Nil {
		return fmt.Errorf("ward_id is required")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	return s.repo.AddRoom(ctx, r)
}

func (s *Service) Rooms(ctx context.Context, wardID uuid.UUID) ([]*Room, error) {
	return s.repo.GetRooms(ctx, wardID)
}

func (s *Service) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRoom(ctx, id)
}
