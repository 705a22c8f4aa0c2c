package size

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/validation"
)

// Service defines size business logic.
type Service interface {
	CreateSize(ctx context.Context, storeID uuid.UUID, in Input) (*Size, error)
	GetSize(ctx context.Context, storeID, id uuid.UUID) (*Size, error)
	ListSizes(ctx context.Context, storeID uuid.UUID) ([]*Size, error)
	UpdateSize(ctx context.Context, storeID, id uuid.UUID, in Input) (*Size, error)
	DeleteSize(ctx context.Context, storeID, id uuid.UUID) error
}

type service struct{ repo Repository }

// NewService creates a new size service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func clean(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Value = strings.TrimSpace(in.Value)
	return in, validation.Struct(in)
}

func (s *service) CreateSize(ctx context.Context, storeID uuid.UUID, in Input) (*Size, error) {
	in, err := clean(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	v := &Size{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      in.Name,
		Value:     in.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetSize(ctx context.Context, storeID, id uuid.UUID) (*Size, error) {
	return s.repo.Get(ctx, storeID, id)
}

func (s *service) ListSizes(ctx context.Context, storeID uuid.UUID) ([]*Size, error) {
	return s.repo.List(ctx, storeID)
}

func (s *service) UpdateSize(ctx context.Context, storeID, id uuid.UUID, in Input) (*Size, error) {
	in, err := clean(in)
	if err != nil {
		return nil, err
	}
	v, err := s.repo.Get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	v.Name = in.Name
	v.Value = in.Value
	v.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) DeleteSize(ctx context.Context, storeID, id uuid.UUID) error {
	return s.repo.Delete(ctx, storeID, id)
}
