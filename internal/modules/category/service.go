package category

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/modules/billboard"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

// Service defines category business logic.
type Service interface {
	CreateCategory(ctx context.Context, storeID uuid.UUID, in Input) (*Category, error)
	GetCategory(ctx context.Context, storeID, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context, storeID uuid.UUID) ([]*Category, error)
	UpdateCategory(ctx context.Context, storeID, id uuid.UUID, in Input) (*Category, error)
	DeleteCategory(ctx context.Context, storeID, id uuid.UUID) error
}

type service struct {
	repo       Repository
	billboards billboard.Repository
}

// NewService creates a new category service. billboards is used to check
// that a category only points at a billboard of its own store.
func NewService(repo Repository, billboards billboard.Repository) Service {
	return &service{repo: repo, billboards: billboards}
}

func (s *service) resolve(ctx context.Context, storeID uuid.UUID, in Input) (string, *billboard.Billboard, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return "", nil, err
	}
	b, err := s.billboards.Get(ctx, storeID, uuid.MustParse(in.BillboardID))
	if errors.Is(err, db.ErrNotFound) {
		return "", nil, validation.Errors{"billboardId": "Billboard not found in this store"}
	}
	if err != nil {
		return "", nil, err
	}
	return in.Name, b, nil
}

func (s *service) CreateCategory(ctx context.Context, storeID uuid.UUID, in Input) (*Category, error) {
	name, b, err := s.resolve(ctx, storeID, in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &Category{
		ID:          uuid.New(),
		StoreID:     storeID,
		BillboardID: b.ID,
		Name:        name,
		Billboard:   BillboardInfo{ID: b.ID, Label: b.Label, ImageURL: b.ImageURL},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCategory(ctx context.Context, storeID, id uuid.UUID) (*Category, error) {
	return s.repo.Get(ctx, storeID, id)
}

func (s *service) ListCategories(ctx context.Context, storeID uuid.UUID) ([]*Category, error) {
	return s.repo.List(ctx, storeID)
}

func (s *service) UpdateCategory(ctx context.Context, storeID, id uuid.UUID, in Input) (*Category, error) {
	name, b, err := s.resolve(ctx, storeID, in)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.Get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.BillboardID = b.ID
	c.Billboard = BillboardInfo{ID: b.ID, Label: b.Label, ImageURL: b.ImageURL}
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCategory(ctx context.Context, storeID, id uuid.UUID) error {
	return s.repo.Delete(ctx, storeID, id)
}
