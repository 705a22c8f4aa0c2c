package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines category data storage. Reads join the billboard.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	Get(ctx context.Context, storeID, id uuid.UUID) (*Category, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}
