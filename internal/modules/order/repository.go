package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrder retrieves an order with its items, scoped to a store.
	GetOrder(ctx context.Context, storeID, id uuid.UUID) (*Order, error)

	// ListOrdersByStore returns all orders for a store, newest first.
	ListOrdersByStore(ctx context.Context, storeID uuid.UUID) ([]*Order, error)

	// UpdateOrder writes phone, address and paid flag. When archiveProducts is
	// set, every product on the order is archived in the same transaction.
	UpdateOrder(ctx context.Context, o *Order, archiveProducts bool) error

	// DeleteOrder removes an order and its items.
	DeleteOrder(ctx context.Context, storeID, id uuid.UUID) error
}
