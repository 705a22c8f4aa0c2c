package overview

import (
	"context"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type sqlRepo struct{ db *db.DB }

func NewSQLRepository(d *db.DB) Repository { return &sqlRepo{db: d} }

// PaidSales returns every line of every paid order at the product's current
// price.
func (r *sqlRepo) PaidSales(ctx context.Context, storeID uuid.UUID) ([]Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.created_at, oi.quantity, p.price
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.store_id = ? AND o.is_paid = ?`, storeID, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Sale
	for rows.Next() {
		var s Sale
		if err := rows.Scan(&s.OrderID, &s.PaidAt, &s.Quantity, &s.Price); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sqlRepo) CountPaidOrders(ctx context.Context, storeID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE store_id = ? AND is_paid = ?`, storeID, true).Scan(&n)
	return n, err
}

func (r *sqlRepo) CountInStock(ctx context.Context, storeID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE store_id = ? AND is_archived = ?`, storeID, false).Scan(&n)
	return n, err
}
