package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/modules/category"
	"github.com/georgemunganga/storeadmin/internal/modules/color"
	"github.com/georgemunganga/storeadmin/internal/modules/size"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

// Service defines product business logic.
type Service interface {
	CreateProduct(ctx context.Context, storeID uuid.UUID, in Input) (*Product, error)
	GetProduct(ctx context.Context, storeID, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context, storeID uuid.UUID, f Filter) ([]*Product, error)
	UpdateProduct(ctx context.Context, storeID, id uuid.UUID, in Input) (*Product, error)
	DeleteProduct(ctx context.Context, storeID, id uuid.UUID) error
}

type service struct {
	repo       Repository
	categories category.Repository
	sizes      size.Repository
	colors     color.Repository
}

// NewService creates a new product service. The category, size and color
// repositories confirm that referenced rows belong to the product's store.
func NewService(repo Repository, categories category.Repository, sizes size.Repository, colors color.Repository) Service {
	return &service{repo: repo, categories: categories, sizes: sizes, colors: colors}
}

// build validates in and returns a product carrying its joined references.
func (s *service) build(ctx context.Context, storeID uuid.UUID, in Input) (*Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	p := &Product{
		StoreID:    storeID,
		Name:       in.Name,
		Price:      in.Price.Round(2),
		IsFeatured: in.IsFeatured,
		IsArchived: in.IsArchived,
		CategoryID: uuid.MustParse(in.CategoryID),
		SizeID:     uuid.MustParse(in.SizeID),
		ColorID:    uuid.MustParse(in.ColorID),
	}
	for _, img := range in.Images {
		p.Images = append(p.Images, Image{ID: uuid.New(), URL: strings.TrimSpace(img.URL)})
	}

	verrs := validation.Errors{}
	c, err := s.categories.Get(ctx, storeID, p.CategoryID)
	if err := missing(err, verrs, "categoryId", "Category not found in this store"); err != nil {
		return nil, err
	}
	sz, err := s.sizes.Get(ctx, storeID, p.SizeID)
	if err := missing(err, verrs, "sizeId", "Size not found in this store"); err != nil {
		return nil, err
	}
	co, err := s.colors.Get(ctx, storeID, p.ColorID)
	if err := missing(err, verrs, "colorId", "Color not found in this store"); err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	p.Category = Named{ID: c.ID, Name: c.Name}
	p.Size = Valued{ID: sz.ID, Name: sz.Name, Value: sz.Value}
	p.Color = Valued{ID: co.ID, Name: co.Name, Value: co.Value}
	return p, nil
}

// missing records a not-found lookup in verrs and returns any other error.
func missing(err error, verrs validation.Errors, field, msg string) error {
	if errors.Is(err, db.ErrNotFound) {
		verrs[field] = msg
		return nil
	}
	return err
}

func (s *service) CreateProduct(ctx context.Context, storeID uuid.UUID, in Input) (*Product, error) {
	p, err := s.build(ctx, storeID, in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, storeID, id uuid.UUID) (*Product, error) {
	return s.repo.Get(ctx, storeID, id)
}

func (s *service) ListProducts(ctx context.Context, storeID uuid.UUID, f Filter) ([]*Product, error) {
	return s.repo.List(ctx, storeID, f)
}

func (s *service) UpdateProduct(ctx context.Context, storeID, id uuid.UUID, in Input) (*Product, error) {
	p, err := s.build(ctx, storeID, in)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, storeID, id uuid.UUID) error {
	return s.repo.Delete(ctx, storeID, id)
}
