package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kangocare/kango/pkg/civildate"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const assessmentCols = `id, admission_id, date, rubric_id, items, score_a, score_b, score_c, severe, created_at, updated_at`

func scanAssessment(row pgx.Row) (*DailyAssessment, error) {
	var a DailyAssessment
	var items []byte
	err := row.Scan(&a.ID, &a.AdmissionID, &a.Date, &a.RubricID, &items,
		&a.Scores.A, &a.Scores.B, &a.Scores.C, &a.Severe, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &a.Items); err != nil {
			return nil, fmt.Errorf("decode items for %s: %w", a.ID, err)
		}
	}
	return &a, nil
}

func (r *repoPG) Upsert(ctx context.Context, a *DailyAssessment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	items, err := json.Marshal(a.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO daily_assessment (id, admission_id, date, rubric_id, items, score_a, score_b, score_c, severe)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (admission_id, date) DO UPDATE SET
			rubric_id=EXCLUDED.rubric_id, items=EXCLUDED.items,
			score_a=EXCLUDED.score_a, score_b=EXCLUDED.score_b, score_c=EXCLUDED.score_c,
			severe=EXCLUDED.severe, updated_at=NOW()`,
		a.ID, a.AdmissionID, a.Date, a.RubricID, items,
		a.Scores.A, a.Scores.B, a.Scores.C, a.Severe)
	return err
}

func (r *repoPG) GetByDate(ctx context.Context, admissionID uuid.UUID, date civildate.Date) (*DailyAssessment, error) {
	a, err := scanAssessment(r.pool.QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM daily_assessment WHERE admission_id = $1 AND date = $2`,
		admissionID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *repoPG) Delete(ctx context.Context, admissionID uuid.UUID, date civildate.Date) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM daily_assessment WHERE admission_id = $1 AND date = $2`, admissionID, date)
	return err
}

func (r *repoPG) ListByMonth(ctx context.Context, admissionID uuid.UUID, yearMonth string) ([]*DailyAssessment, error) {
	days, err := civildate.MonthDays(yearMonth)
	if err != nil {
		return nil, err
	}
	first, last := days[0], days[len(days)-1]
	rows, err := r.pool.Query(ctx,
		`SELECT `+assessmentCols+` FROM daily_assessment
		 WHERE admission_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date`,
		admissionID, first, last)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*DailyAssessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
