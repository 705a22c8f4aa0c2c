package billboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type sqlRepo struct{ db *db.DB }

func NewSQLRepository(d *db.DB) Repository { return &sqlRepo{db: d} }

func (r *sqlRepo) Create(ctx context.Context, b *Billboard) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO billboards (id, store_id, label, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.StoreID, b.Label, b.ImageURL, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert billboard: %w", db.Classify(err))
	}
	return nil
}

func (r *sqlRepo) Get(ctx context.Context, storeID, id uuid.UUID) (*Billboard, error) {
	b := &Billboard{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards WHERE id = ? AND store_id = ?`, id, storeID).
		Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return b, nil
}

func (r *sqlRepo) List(ctx context.Context, storeID uuid.UUID) ([]*Billboard, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards WHERE store_id = ? ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []*Billboard{}
	for rows.Next() {
		b := &Billboard{}
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *sqlRepo) Update(ctx context.Context, b *Billboard) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE billboards SET label = ?, image_url = ?, updated_at = ?
		WHERE id = ? AND store_id = ?`,
		b.Label, b.ImageURL, b.UpdatedAt, b.ID, b.StoreID)
	if err != nil {
		return fmt.Errorf("update billboard: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}

func (r *sqlRepo) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM billboards WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete billboard: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}
