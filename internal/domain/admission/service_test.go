package admission

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	records map[uuid.UUID]*Admission
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*Admission)}
}

func (m *mockRepo) Create(_ context.Context, a *Admission) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	m.records[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Admission, error) {
	a, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return a, nil
}

func (m *mockRepo) Update(_ context.Context, a *Admission) error {
	m.records[a.ID] = a
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Admission, error) {
	var result []*Admission
	for _, a := range m.records {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result, nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	if err := svc.Create(ctx, &Admission{AdmissionDate: d("2025-04-01"), InitialWard: "3F-east"}); err == nil {
		t.Error("expected error for missing patient_id")
	}
	if err := svc.Create(ctx, &Admission{PatientID: uuid.New(), InitialWard: "3F-east"}); err == nil {
		t.Error("expected error for missing admission_date")
	}
	if err := svc.Create(ctx, &Admission{PatientID: uuid.New(), AdmissionDate: d("2025-04-01")}); err == nil {
		t.Error("expected error for missing initial_ward")
	}

	backwards := &Admission{
		PatientID:     uuid.New(),
		AdmissionDate: d("2025-04-10"),
		DischargeDate: dp("2025-04-01"),
		InitialWard:   "3F-east",
	}
	if err := svc.Create(ctx, backwards); err == nil {
		t.Error("expected error for discharge before admission")
	}
}

func TestCreateRejectsMalformedMovements(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()
	base := func(m Movement) *Admission {
		return &Admission{
			PatientID:     uuid.New(),
			AdmissionDate: d("2025-04-01"),
			InitialWard:   "3F-east",
			Movements:     []Movement{m},
		}
	}

	cases := []Movement{
		{Type: MovementWardTransfer, Date: d("2025-04-02")},              // no ward
		{Type: MovementRoomTransfer, Date: d("2025-04-02")},              // no room
		{Type: "teleport", Date: d("2025-04-02")},                        // unknown type
		{Type: MovementOvernight, Date: d("2025-04-05"), EndDate: dp("2025-04-02")}, // end before start
		{Type: MovementWardTransfer, Ward: "4F-west"},                    // no date
	}
	for i, m := range cases {
		if err := svc.Create(ctx, base(m)); err == nil {
			t.Errorf("case %d: expected error for movement %+v", i, m)
		}
	}
}

func TestCreateRejectsOverlap(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()
	pid := uuid.New()

	first := &Admission{PatientID: pid, AdmissionDate: d("2025-04-01"), DischargeDate: dp("2025-04-10"), InitialWard: "3F-east"}
	if err := svc.Create(ctx, first); err != nil {
		t.Fatal(err)
	}

	overlapping := &Admission{PatientID: pid, AdmissionDate: d("2025-04-10"), InitialWard: "4F-west"}
	if err := svc.Create(ctx, overlapping); !errors.Is(err, ErrOverlappingStay) {
		t.Fatalf("err = %v, want ErrOverlappingStay", err)
	}

	// Touching ranges that do not share a day are fine.
	adjacent := &Admission{PatientID: pid, AdmissionDate: d("2025-04-11"), InitialWard: "4F-west"}
	if err := svc.Create(ctx, adjacent); err != nil {
		t.Fatalf("adjacent stay rejected: %v", err)
	}

	// A different patient may overlap freely.
	other := &Admission{PatientID: uuid.New(), AdmissionDate: d("2025-04-05"), InitialWard: "3F-east"}
	if err := svc.Create(ctx, other); err != nil {
		t.Fatalf("other patient rejected: %v", err)
	}
}

func TestUpdateExcludesSelfFromOverlapCheck(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()
	pid := uuid.New()

	a := &Admission{PatientID: pid, AdmissionDate: d("2025-04-01"), InitialWard: "3F-east"}
	if err := svc.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	a.DischargeDate = dp("2025-04-20")
	if err := svc.Update(ctx, a); err != nil {
		t.Fatalf("update against itself rejected: %v", err)
	}
}

func TestLocate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()
	pid := uuid.New()

	a := &Admission{
		PatientID:     pid,
		AdmissionDate: d("2025-04-01"),
		DischargeDate: dp("2025-04-15"),
		InitialWard:   "3F-east",
		InitialRoom:   "301",
		Movements: []Movement{
			{Type: MovementWardTransfer, Date: d("2025-04-05"), Ward: "4F-west", Room: "412"},
		},
	}
	if err := svc.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	loc, err := svc.Locate(ctx, pid, d("2025-04-06"))
	if err != nil {
		t.Fatal(err)
	}
	if !loc.Resolved || loc.Ward != "4F-west" || loc.Room != "412" {
		t.Errorf("loc = %+v", loc)
	}

	loc, err = svc.Locate(ctx, pid, d("2025-05-01"))
	if err != nil {
		t.Fatal(err)
	}
	if loc.Resolved {
		t.Errorf("resolved after discharge: %+v", loc)
	}
}
