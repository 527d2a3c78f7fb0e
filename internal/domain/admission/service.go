package admission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kangocare/kango/pkg/civildate"
)

// ErrOverlappingStay is returned when a stay being saved shares a calendar
// day with another stay of the same patient. The resolver assumes at most one
// admission per date, so overlap is rejected here rather than left as a
// resolver-time ambiguity.
var ErrOverlappingStay = errors.New("admission overlaps an existing stay")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validate(ctx context.Context, a *Admission) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.AdmissionDate.IsZero() {
		return fmt.Errorf("admission_date is required")
	}
	if a.InitialWard == "" {
		return fmt.Errorf("initial_ward is required")
	}
	if a.DischargeDate != nil && a.DischargeDate.Before(a.AdmissionDate) {
		return fmt.Errorf("discharge_date %s precedes admission_date %s", a.DischargeDate, a.AdmissionDate)
	}
	for i, m := range a.Movements {
		switch m.Type {
		case MovementWardTransfer:
			if m.Ward == "" {
				return fmt.Errorf("movement %d: ward transfer without ward", i)
			}
		case MovementRoomTransfer:
			if m.Room == "" {
				return fmt.Errorf("movement %d: room transfer without room", i)
			}
		case MovementOvernight:
			if m.EndDate != nil && m.EndDate.Before(m.Date) {
				return fmt.Errorf("movement %d: overnight end precedes start", i)
			}
		default:
			return fmt.Errorf("movement %d: unknown type %q", i, m.Type)
		}
		if m.Date.IsZero() {
			return fmt.Errorf("movement %d: date is required", i)
		}
	}

	existing, err := s.repo.ListByPatient(ctx, a.PatientID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == a.ID {
			continue
		}
		if a.Overlaps(other) {
			return fmt.Errorf("%w: %s", ErrOverlappingStay, other.ID)
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, a *Admission) error {
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *Admission) error {
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Admission, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// Locate resolves the patient's ward, room and status for one date across all
// of their stays.
func (s *Service) Locate(ctx context.Context, patientID uuid.UUID, date civildate.Date) (Location, error) {
	admissions, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return Location{}, err
	}
	return ResolveLocation(admissions, date)
}
