package size

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type sqlRepo struct{ db *db.DB }

func NewSQLRepository(d *db.DB) Repository { return &sqlRepo{db: d} }

func (r *sqlRepo) Create(ctx context.Context, v *Size) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sizes (id, store_id, name, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		v.ID, v.StoreID, v.Name, v.Value, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert size: %w", db.Classify(err))
	}
	return nil
}

func (r *sqlRepo) Get(ctx context.Context, storeID, id uuid.UUID) (*Size, error) {
	v := &Size{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes WHERE id = ? AND store_id = ?`, id, storeID).
		Scan(&v.ID, &v.StoreID, &v.Name, &v.Value, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return v, nil
}

func (r *sqlRepo) List(ctx context.Context, storeID uuid.UUID) ([]*Size, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes WHERE store_id = ? ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []*Size{}
	for rows.Next() {
		v := &Size{}
		if err := rows.Scan(&v.ID, &v.StoreID, &v.Name, &v.Value, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *sqlRepo) Update(ctx context.Context, v *Size) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sizes SET name = ?, value = ?, updated_at = ?
		WHERE id = ? AND store_id = ?`,
		v.Name, v.Value, v.UpdatedAt, v.ID, v.StoreID)
	if err != nil {
		return fmt.Errorf("update size: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}

func (r *sqlRepo) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sizes WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete size: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}
