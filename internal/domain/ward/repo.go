package ward

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, w *Ward) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ward, error)
	Update(ctx context.Context, w *Ward) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Ward, int, error)
	// Rooms
	AddRoom(ctx context.Context, r *Room) error
	GetRooms(ctx context.Context, wardID uuid.UUID) ([]*Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}
