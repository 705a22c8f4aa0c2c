package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type sqlRepo struct{ db *db.DB }

func NewSQLRepository(d *db.DB) Repository { return &sqlRepo{db: d} }

const selectProduct = `
	SELECT p.id, p.store_id, p.category_id, p.size_id, p.color_id, p.name, p.price,
	       p.is_featured, p.is_archived, p.created_at, p.updated_at,
	       c.name, s.name, s.value, co.name, co.value
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN sizes s ON s.id = p.size_id
	JOIN colors co ON co.id = p.color_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*Product, error) {
	p := &Product{Images: []Image{}}
	err := row.Scan(&p.ID, &p.StoreID, &p.CategoryID, &p.SizeID, &p.ColorID, &p.Name, &p.Price,
		&p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		&p.Category.Name, &p.Size.Name, &p.Size.Value, &p.Color.Name, &p.Color.Value)
	p.Category.ID, p.Size.ID, p.Color.ID = p.CategoryID, p.SizeID, p.ColorID
	return p, err
}

// Create inserts the product and its images inside a single transaction.
func (r *sqlRepo) Create(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products
		  (id, store_id, category_id, size_id, color_id, name, price, is_featured, is_archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.StoreID, p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Price,
		p.IsFeatured, p.IsArchived, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", db.Classify(err))
	}
	if err := insertImages(ctx, tx, p.ID, p.Images, p.CreatedAt); err != nil {
		return err
	}
	return tx.Commit()
}

func insertImages(ctx context.Context, tx *db.Tx, productID uuid.UUID, images []Image, at time.Time) error {
	for i, img := range images {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO images (id, product_id, url, position, created_at) VALUES (?, ?, ?, ?, ?)`,
			img.ID, productID, img.URL, i, at)
		if err != nil {
			return fmt.Errorf("insert image: %w", db.Classify(err))
		}
	}
	return nil
}

func (r *sqlRepo) Get(ctx context.Context, storeID, id uuid.UUID) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, selectProduct+`
		WHERE p.id = ? AND p.store_id = ?`, id, storeID))
	if err != nil {
		return nil, db.Classify(err)
	}
	if err := r.attachImages(ctx, []*Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *sqlRepo) List(ctx context.Context, storeID uuid.UUID, f Filter) ([]*Product, error) {
	where := []string{"p.store_id = ?"}
	args := []any{storeID}
	if f.CategoryID != nil {
		where = append(where, "p.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.ColorID != nil {
		where = append(where, "p.color_id = ?")
		args = append(args, *f.ColorID)
	}
	if f.SizeID != nil {
		where = append(where, "p.size_id = ?")
		args = append(args, *f.SizeID)
	}
	if f.IsFeatured != nil {
		where = append(where, "p.is_featured = ?")
		args = append(args, *f.IsFeatured)
	}
	if !f.IncludeArchived {
		where = append(where, "p.is_archived = ?")
		args = append(args, false)
	}

	query := selectProduct + ` WHERE ` + strings.Join(where, " AND ") + ` ORDER BY p.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// attachImages loads images for all products with one query.
func (r *sqlRepo) attachImages(ctx context.Context, products []*Product) error {
	if len(products) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*Product, len(products))
	args := make([]any, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		args = append(args, p.ID)
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, url FROM images
		WHERE product_id IN (`+db.Placeholders(len(args))+`)
		ORDER BY position ASC`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var img Image
		var productID uuid.UUID
		if err := rows.Scan(&img.ID, &productID, &img.URL); err != nil {
			return err
		}
		if p, ok := byID[productID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}

// Update rewrites the product row and replaces its images.
func (r *sqlRepo) Update(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET category_id = ?, size_id = ?, color_id = ?, name = ?, price = ?,
		    is_featured = ?, is_archived = ?, updated_at = ?
		WHERE id = ? AND store_id = ?`,
		p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Price,
		p.IsFeatured, p.IsArchived, p.UpdatedAt, p.ID, p.StoreID)
	if err != nil {
		return fmt.Errorf("update product: %w", db.Classify(err))
	}
	if err := db.ExpectOne(res); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM images WHERE product_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clear images: %w", err)
	}
	if err := insertImages(ctx, tx, p.ID, p.Images, p.UpdatedAt); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *sqlRepo) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete product: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}
