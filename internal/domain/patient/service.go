package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kangocare/kango/internal/platform/zipcloud"
)

var ErrValidation = errors.New("validation failed")

// AddressLookup resolves a postal code to candidate addresses.
type AddressLookup interface {
	Search(ctx context.Context, zipcode string) ([]zipcloud.Address, error)
}

type Service struct {
	repo   Repository
	lookup AddressLookup
	log    zerolog.Logger
}

func NewService(repo Repository, lookup AddressLookup, log zerolog.Logger) *Service {
	return &Service{repo: repo, lookup: lookup, log: log}
}

func (s *Service) validate(p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth_date is required", ErrValidation)
	}
	switch p.Sex {
	case "", SexMale, SexFemale, SexOther:
	default:
		return fmt.Errorf("%w: invalid sex %q", ErrValidation, p.Sex)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.log.Info().Str("patient_id", p.ID.String()).Msg("patient created")
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, p.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// LookupAddress resolves a 7-digit postal code through the upstream
// zipcode service. An unknown code yields an empty slice, not an error.
func (s *Service) LookupAddress(ctx context.Context, zipcode string) ([]zipcloud.Address, error) {
	return s.lookup.Search(ctx, zipcode)
}
