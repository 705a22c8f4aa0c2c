package category

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type sqlRepo struct{ db *db.DB }

func NewSQLRepository(d *db.DB) Repository { return &sqlRepo{db: d} }

const selectCategory = `
	SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
	       b.id, b.label, b.image_url
	FROM categories c
	JOIN billboards b ON b.id = c.billboard_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (*Category, error) {
	c := &Category{}
	err := row.Scan(&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		&c.Billboard.ID, &c.Billboard.Label, &c.Billboard.ImageURL)
	return c, err
}

func (r *sqlRepo) Create(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, store_id, billboard_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.StoreID, c.BillboardID, c.Name, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", db.Classify(err))
	}
	return nil
}

func (r *sqlRepo) Get(ctx context.Context, storeID, id uuid.UUID) (*Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx, selectCategory+`
		WHERE c.id = ? AND c.store_id = ?`, id, storeID))
	if err != nil {
		return nil, db.Classify(err)
	}
	return c, nil
}

func (r *sqlRepo) List(ctx context.Context, storeID uuid.UUID) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategory+`
		WHERE c.store_id = ? ORDER BY c.created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows *sql.Rows) ([]*Category, error) {
	defer rows.Close()
	out := []*Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *sqlRepo) Update(ctx context.Context, c *Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, billboard_id = ?, updated_at = ?
		WHERE id = ? AND store_id = ?`,
		c.Name, c.BillboardID, c.UpdatedAt, c.ID, c.StoreID)
	if err != nil {
		return fmt.Errorf("update category: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}

func (r *sqlRepo) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete category: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}
