package billboard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/validation"
)

// Service defines billboard business logic.
type Service interface {
	CreateBillboard(ctx context.Context, storeID uuid.UUID, in Input) (*Billboard, error)
	GetBillboard(ctx context.Context, storeID, id uuid.UUID) (*Billboard, error)
	ListBillboards(ctx context.Context, storeID uuid.UUID) ([]*Billboard, error)
	UpdateBillboard(ctx context.Context, storeID, id uuid.UUID, in Input) (*Billboard, error)
	DeleteBillboard(ctx context.Context, storeID, id uuid.UUID) error
}

type service struct{ repo Repository }

// NewService creates a new billboard service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func clean(in Input) (Input, error) {
	in.Label = strings.TrimSpace(in.Label)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	return in, validation.Struct(in)
}

func (s *service) CreateBillboard(ctx context.Context, storeID uuid.UUID, in Input) (*Billboard, error) {
	in, err := clean(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	b := &Billboard{
		ID:        uuid.New(),
		StoreID:   storeID,
		Label:     in.Label,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBillboard(ctx context.Context, storeID, id uuid.UUID) (*Billboard, error) {
	return s.repo.Get(ctx, storeID, id)
}

func (s *service) ListBillboards(ctx context.Context, storeID uuid.UUID) ([]*Billboard, error) {
	return s.repo.List(ctx, storeID)
}

func (s *service) UpdateBillboard(ctx context.Context, storeID, id uuid.UUID, in Input) (*Billboard, error) {
	in, err := clean(in)
	if err != nil {
		return nil, err
	}
	b, err := s.repo.Get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	b.Label = in.Label
	b.ImageURL = in.ImageURL
	b.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) DeleteBillboard(ctx context.Context, storeID, id uuid.UUID) error {
	return s.repo.Delete(ctx, storeID, id)
}
