package admission

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const admissionCols = `id, patient_id, admission_date, discharge_date, initial_ward, initial_room, movements, created_at, updated_at`

func scanAdmission(row pgx.Row) (*Admission, error) {
	var a Admission
	var movements []byte
	err := row.Scan(&a.ID, &a.PatientID, &a.AdmissionDate, &a.DischargeDate,
		&a.InitialWard, &a.InitialRoom, &movements, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(movements) > 0 {
		if err := json.Unmarshal(movements, &a.Movements); err != nil {
			return nil, fmt.Errorf("decode movements for %s: %w", a.ID, err)
		}
	}
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Admission) error {
	a.ID = uuid.New()
	movements, err := json.Marshal(a.Movements)
	if err != nil {
		return fmt.Errorf("encode movements: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO admission (id, patient_id, admission_date, discharge_date, initial_ward, initial_room, movements)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.PatientID, a.AdmissionDate, a.DischargeDate, a.InitialWard, a.InitialRoom, movements)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return scanAdmission(r.pool.QueryRow(ctx, `SELECT `+admissionCols+` FROM admission WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Admission) error {
	movements, err := json.Marshal(a.Movements)
	if err != nil {
		return fmt.Errorf("encode movements: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE admission SET admission_date=$2, discharge_date=$3, initial_ward=$4, initial_room=$5, movements=$6, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.AdmissionDate, a.DischargeDate, a.InitialWard, a.InitialRoom, movements)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM admission WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Admission, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+admissionCols+` FROM admission WHERE patient_id = $1 ORDER BY admission_date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Admission
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
