package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kangocare/kango/internal/domain/admission"
	"github.com/kangocare/kango/internal/rubric"
	"github.com/kangocare/kango/pkg/civildate"
)

// IncompleteError is returned by Save when items are still unset and the
// caller did not force the save. It carries the unset labels so the UI can
// list them in its confirmation prompt.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("assessment incomplete: %s", strings.Join(e.Missing, ", "))
}

// AdmissionDirectory is the slice of the admission service the assessment
// domain needs: the stay a record belongs to, and all stays of a patient for
// timeline resolution. *admission.Service satisfies it.
type AdmissionDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*admission.Admission, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*admission.Admission, error)
}

type Service struct {
	repo       Repository
	admissions AdmissionDirectory
	catalog    *rubric.Catalog
	logger     zerolog.Logger
}

func NewService(repo Repository, admissions AdmissionDirectory, catalog *rubric.Catalog, logger zerolog.Logger) *Service {
	return &Service{repo: repo, admissions: admissions, catalog: catalog, logger: logger}
}

// Catalog exposes the injected item definition table for form rendering.
func (s *Service) Catalog() *rubric.Catalog {
	return s.catalog
}

// Save persists one day's record. Scores and the severity verdict are always
// recomputed from the raw items here; whatever the client sent in those
// fields is discarded. Unless force is set, a record with unset items fails
// with *IncompleteError so the caller can ask for confirmation. An unknown
// rubric id is logged and stored as not severe.
func (s *Service) Save(ctx context.Context, a *DailyAssessment, force bool) error {
	if a.AdmissionID == uuid.Nil {
		return fmt.Errorf("admission_id is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if a.RubricID == "" {
		a.RubricID = rubric.RubricAcuteGeneral1
	}
	if a.Items == nil {
		a.Items = rubric.ItemValues{}
	}

	if !force {
		if missing := rubric.MissingItems(s.catalog, a.Items); len(missing) > 0 {
			labels := make([]string, len(missing))
			for i, it := range missing {
				labels[i] = it.Label
			}
			return &IncompleteError{Missing: labels}
		}
	}

	s.refreshDerived(a)

	return s.repo.Upsert(ctx, a)
}

// refreshDerived recomputes the subtotals and the severity verdict from the
// raw items. An unknown rubric id is logged and evaluated as not severe.
func (s *Service) refreshDerived(a *DailyAssessment) {
	a.Scores = rubric.ComputeScores(s.catalog, a.Items)
	severe, err := rubric.EvaluateSeverity(a.RubricID, a.Scores)
	if err != nil {
		s.logger.Error().Err(err).
			Str("admission_id", a.AdmissionID.String()).
			Str("date", a.Date.String()).
			Msg("severity evaluation failed; treating record as not severe")
	}
	a.Severe = severe
}

func (s *Service) Get(ctx context.Context, admissionID uuid.UUID, date civildate.Date) (*DailyAssessment, error) {
	a, err := s.repo.GetByDate(ctx, admissionID, date)
	if err != nil {
		return nil, err
	}
	// Derived fields are recomputed on read as well, so a record written by
	// an older catalog never presents stale subtotals or a verdict that
	// disagrees with them.
	s.refreshDerived(a)
	return a, nil
}

func (s *Service) Delete(ctx context.Context, admissionID uuid.UUID, date civildate.Date) error {
	return s.repo.Delete(ctx, admissionID, date)
}

// CopyPrevious builds an unsaved record for date seeded from the previous
// day's items, or an empty one when there is no previous record. The caller
// saves it explicitly.
func (s *Service) CopyPrevious(ctx context.Context, admissionID uuid.UUID, date civildate.Date) (*DailyAssessment, error) {
	draft := &DailyAssessment{
		AdmissionID: admissionID,
		Date:        date,
		RubricID:    rubric.RubricAcuteGeneral1,
		Items:       rubric.ItemValues{},
	}
	prev, err := s.repo.GetByDate(ctx, admissionID, date.AddDays(-1))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return draft, nil
		}
		return nil, err
	}
	draft.RubricID = prev.RubricID
	for id, v := range prev.Items {
		draft.Items[id] = v
	}
	draft.Scores = rubric.ComputeScores(s.catalog, draft.Items)
	return draft, nil
}

// Monthly returns the stored records of one admission for the "YYYY-MM"
// month, keyed by date.
func (s *Service) Monthly(ctx context.Context, admissionID uuid.UUID, yearMonth string) (map[string]*DailyAssessment, error) {
	records, err := s.repo.ListByMonth(ctx, admissionID, yearMonth)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*DailyAssessment, len(records))
	for _, r := range records {
		s.refreshDerived(r)
		out[r.Date.String()] = r
	}
	return out, nil
}

// MonthlySheet assembles the review matrix for one admission and month: per
// calendar day, the resolved ward/room/status and that day's scores. Days the
// timeline resolver cannot place the patient on are included unresolved so
// the matrix always has a full month of rows.
func (s *Service) MonthlySheet(ctx context.Context, admissionID uuid.UUID, yearMonth string) ([]DaySummary, error) {
	stay, err := s.admissions.Get(ctx, admissionID)
	if err != nil {
		return nil, fmt.Errorf("admission %s: %w", admissionID, err)
	}
	stays, err := s.admissions.ListByPatient(ctx, stay.PatientID)
	if err != nil {
		return nil, err
	}
	records, err := s.Monthly(ctx, admissionID, yearMonth)
	if err != nil {
		return nil, err
	}
	days, err := civildate.MonthDays(yearMonth)
	if err != nil {
		return nil, err
	}

	sheet := make([]DaySummary, 0, len(days))
	for _, day := range days {
		loc, err := admission.ResolveLocation(stays, day)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", day, err)
		}
		row := DaySummary{Date: day, Location: loc, Editable: loc.Editable()}
		if rec, ok := records[day.String()]; ok {
			row.HasRecord = true
			row.Scores = rec.Scores
			row.Severe = rec.Severe
		}
		sheet = append(sheet, row)
	}
	return sheet, nil
}
