package assessment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kangocare/kango/pkg/civildate"
)

// ErrNotFound is returned when no record exists for the requested day.
var ErrNotFound = errors.New("assessment not found")

type Repository interface {
	// Upsert writes the whole record for (admission, date), replacing any
	// previous version. Edits never mutate a stored record in place.
	Upsert(ctx context.Context, a *DailyAssessment) error
	GetByDate(ctx context.Context, admissionID uuid.UUID, date civildate.Date) (*DailyAssessment, error)
	Delete(ctx context.Context, admissionID uuid.UUID, date civildate.Date) error
	// ListByMonth returns the records of one admission within the month
	// given as "YYYY-MM", ordered by date.
	ListByMonth(ctx context.Context, admissionID uuid.UUID, yearMonth string) ([]*DailyAssessment, error)
}
