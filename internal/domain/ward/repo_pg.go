package ward

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const wardCols = `id, code, name, is_active, created_at, updated_at`

func scanWard(row pgx.Row) (*Ward, error) {
	var w Ward
	err := row.Scan(&w.ID, &w.Code, &w.Name, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	return &w, err
}

func (r *repoPG) Create(ctx context.Context, w *Ward) error {
	w.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ward (id, code, name, is_active)
		VALUES ($1,$2,$3,$4)`,
		w.ID, w.Code, w.Name, w.IsActive)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Ward, error) {
	return scanWard(r.pool.QueryRow(ctx, `SELECT `+wardCols+` FROM ward WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, w *Ward) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE ward SET code=$2, name=$3, is_active=$4, updated_at=NOW()
		WHERE id = $1`,
		w.ID, w.Code, w.Name, w.IsActive)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ward WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Ward, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ward`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+wardCols+` FROM ward ORDER BY code LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Ward
	for rows.Next() {
		w, err := scanWard(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, w)
	}
	return items, total, rows.Err()
}

func (r *repoPG) AddRoom(ctx context.Context, rm *Room) error {
	rm.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO room (id, ward_id, code, capacity)
		VALUES ($1,$2,$3,$4)`,
		rm.ID, rm.WardID, rm.Code, rm.Capacity)
	return err
}

func (r *repoPG) GetRooms(ctx context.Context, wardID uuid.UUID) ([]*Room, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, ward_id, code, capacity, created_at
		FROM room WHERE ward_id = $1 ORDER BY code`, wardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Room
	for rows.Next() {
		var rm Room
		if err := rows.Scan(&rm.ID, &rm.WardID, &rm.Code, &rm.Capacity, &rm.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &rm)
	}
	return items, rows.Err()
}

func (r *repoPG) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM room WHERE id = $1`, id)
	return err
}
