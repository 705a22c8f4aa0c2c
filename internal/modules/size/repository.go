package size

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines size data storage. Every lookup is scoped to a store.
type Repository interface {
	Create(ctx context.Context, v *Size) error
	Get(ctx context.Context, storeID, id uuid.UUID) (*Size, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*Size, error)
	Update(ctx context.Context, v *Size) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}
