package store

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines store data storage.
type Repository interface {
	CreateStore(ctx context.Context, s *Store) error
	GetStoreByID(ctx context.Context, id uuid.UUID) (*Store, error)
	ListStoresByUser(ctx context.Context, userID uuid.UUID) ([]*Store, error)
	UpdateStore(ctx context.Context, s *Store) error
	DeleteStore(ctx context.Context, id uuid.UUID) error
}
