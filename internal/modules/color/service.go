package color

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/validation"
)

// Service defines color business logic.
type Service interface {
	CreateColor(ctx context.Context, storeID uuid.UUID, in Input) (*Color, error)
	GetColor(ctx context.Context, storeID, id uuid.UUID) (*Color, error)
	ListColors(ctx context.Context, storeID uuid.UUID) ([]*Color, error)
	UpdateColor(ctx context.Context, storeID, id uuid.UUID, in Input) (*Color, error)
	DeleteColor(ctx context.Context, storeID, id uuid.UUID) error
}

type service struct{ repo Repository }

// NewService creates a new color service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func clean(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Value = strings.TrimSpace(in.Value)
	return in, validation.Struct(in)
}

func (s *service) CreateColor(ctx context.Context, storeID uuid.UUID, in Input) (*Color, error) {
	in, err := clean(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	v := &Color{
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

func (s *service) GetColor(ctx context.Context, storeID, id uuid.UUID) (*Color, error) {
	return s.repo.Get(ctx, storeID, id)
}

func (s *service) ListColors(ctx context.Context, storeID uuid.UUID) ([]*Color, error) {
	return s.repo.List(ctx, storeID)
}

func (s *service) UpdateColor(ctx context.Context, storeID, id uuid.UUID, in Input) (*Color, error) {
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

func (s *service) DeleteColor(ctx context.Context, storeID, id uuid.UUID) error {
	return s.repo.Delete(ctx, storeID, id)
}
