package product

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines product data storage. Products are stored together
// with their images.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Get(ctx context.Context, storeID, id uuid.UUID) (*Product, error)
	List(ctx context.Context, storeID uuid.UUID, f Filter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}
