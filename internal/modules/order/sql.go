package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type sqlRepo struct{ db *db.DB }

func NewSQLRepository(d *db.DB) Repository { return &sqlRepo{db: d} }

// CreateOrder inserts the order and all its items inside a single transaction.
func (r *sqlRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, store_id, is_paid, phone, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.StoreID, o.IsPaid, o.Phone, o.Address, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", db.Classify(err))
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity)
			VALUES (?, ?, ?, ?)`,
			item.ID, o.ID, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", db.Classify(err))
		}
	}

	return tx.Commit()
}

func (r *sqlRepo) GetOrder(ctx context.Context, storeID, id uuid.UUID) (*Order, error) {
	o := &Order{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, store_id, is_paid, phone, address, created_at, updated_at
		FROM orders WHERE id = ? AND store_id = ?`, id, storeID).
		Scan(&o.ID, &o.StoreID, &o.IsPaid, &o.Phone, &o.Address, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, db.Classify(err)
	}
	if err := r.attachItems(ctx, []*Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *sqlRepo) ListOrdersByStore(ctx context.Context, storeID uuid.UUID) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, store_id, is_paid, phone, address, created_at, updated_at
		FROM orders WHERE store_id = ? ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []*Order{}
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.StoreID, &o.IsPaid, &o.Phone, &o.Address, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *sqlRepo) UpdateOrder(ctx context.Context, o *Order, archiveProducts bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET is_paid = ?, phone = ?, address = ?, updated_at = ?
		WHERE id = ? AND store_id = ?`,
		o.IsPaid, o.Phone, o.Address, o.UpdatedAt, o.ID, o.StoreID)
	if err != nil {
		return fmt.Errorf("update order: %w", db.Classify(err))
	}
	if err := db.ExpectOne(res); err != nil {
		return err
	}

	if archiveProducts {
		_, err = tx.ExecContext(ctx, `
			UPDATE products SET is_archived = ?, updated_at = ?
			WHERE id IN (SELECT product_id FROM order_items WHERE order_id = ?)`,
			true, o.UpdatedAt, o.ID)
		if err != nil {
			return fmt.Errorf("archive ordered products: %w", err)
		}
	}

	return tx.Commit()
}

func (r *sqlRepo) DeleteOrder(ctx context.Context, storeID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ? AND store_id = ?`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete order: %w", db.Classify(err))
	}
	return db.ExpectOne(res)
}

// ── helpers ──────────────────────────────────────────────────────────────────

// attachItems loads the items of every order with one query and computes
// each order's total.
func (r *sqlRepo) attachItems(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*Order, len(orders))
	args := make([]any, 0, len(orders))
	for _, o := range orders {
		o.Items = []*OrderItem{}
		byID[o.ID] = o
		args = append(args, o.ID)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, p.name, p.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN (`+db.Placeholders(len(args))+`)
		ORDER BY p.name ASC`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		item := &OrderItem{}
		var orderID uuid.UUID
		if err := rows.Scan(&item.ID, &orderID, &item.ProductID, &item.Quantity,
			&item.Product.Name, &item.Product.Price); err != nil {
			return err
		}
		item.Product.ID = item.ProductID
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, o := range orders {
		o.computeTotal()
	}
	return nil
}
