package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type storeSQL struct{ db *db.DB }

func NewSQLRepository(d *db.DB) Repository { return &storeSQL{db: d} }

func (r *storeSQL) CreateStore(ctx context.Context, s *Store) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stores (id, user_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Name, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert store: %w", db.Classify(err))
	}
	return nil
}

func (r *storeSQL) GetStoreByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	s := &Store{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores WHERE id = ?`, id).
		Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	return s, nil
}

func (r *storeSQL) ListStoresByUser(ctx context.Context, userID uuid.UUID) ([]*Store, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores WHERE user_id = ? ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stores := []*Store{}
	for rows.Next() {
		s := &Store{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *storeSQL) UpdateStore(ctx context.Context, s *Store) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE stores SET name = ?, updated_at = ? WHERE id = ?`,
		s.Name, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("update store: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}

func (r *storeSQL) DeleteStore(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}
