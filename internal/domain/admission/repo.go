package admission

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Admission) error
	GetByID(ctx context.Context, id uuid.UUID) (*Admission, error)
	Update(ctx context.Context, a *Admission) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByPatient returns every stay of one patient, newest first. Stays
	// per patient number in the tens at most, so it is not paginated.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Admission, error)
}
