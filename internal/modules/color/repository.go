package color

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines color data storage. Every lookup is scoped to a store.
type Repository interface {
	Create(ctx context.Context, v *Color) error
	Get(ctx context.Context, storeID, id uuid.UUID) (*Color, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*Color, error)
	Update(ctx context.Context, v *Color) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}
