package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/modules/product"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

// Service defines the order management business logic.
type Service interface {
	// PlaceOrder validates the cart against the store's live products and
	// persists an unpaid order atomically.
	PlaceOrder(ctx context.Context, storeID uuid.UUID, req PlaceOrderRequest) (*Order, error)

	// GetOrder retrieves a full order with its items.
	GetOrder(ctx context.Context, storeID, id uuid.UUID) (*Order, error)

	// ListStoreOrders returns all orders for a store.
	ListStoreOrders(ctx context.Context, storeID uuid.UUID) ([]*Order, error)

	// UpdateOrder changes phone, address or the paid flag. Marking an order
	// paid archives its products.
	UpdateOrder(ctx context.Context, storeID, id uuid.UUID, req UpdateOrderRequest) (*Order, error)

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, storeID, id uuid.UUID) error
}

type service struct {
	repo     Repository
	products product.Repository
}

// NewService creates a new order service.
func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

func (s *service) PlaceOrder(ctx context.Context, storeID uuid.UUID, req PlaceOrderRequest) (*Order, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	// ── Build order items, validate availability ──────────────────────────────
	var items []*OrderItem
	verrs := validation.Errors{}
	for i, ci := range req.Items {
		field := fmt.Sprintf("items[%d].productId", i)
		p, err := s.products.Get(ctx, storeID, uuid.MustParse(ci.ProductID))
		if errors.Is(err, db.ErrNotFound) {
			verrs[field] = "Product not found in this store"
			continue
		}
		if err != nil {
			return nil, err
		}
		if p.IsArchived {
			verrs[field] = "Product is no longer available"
			continue
		}

		qty := ci.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, &OrderItem{
			ID:        uuid.New(),
			ProductID: p.ID,
			Quantity:  qty,
			Product:   ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price},
		})
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	now := time.Now().UTC()
	o := &Order{
		ID:        uuid.New(),
		StoreID:   storeID,
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.computeTotal()

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, storeID, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrder(ctx, storeID, id)
}

func (s *service) ListStoreOrders(ctx context.Context, storeID uuid.UUID) ([]*Order, error) {
	return s.repo.ListOrdersByStore(ctx, storeID)
}

func (s *service) UpdateOrder(ctx context.Context, storeID, id uuid.UUID, req UpdateOrderRequest) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	becamePaid := false
	if req.Phone != nil {
		o.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		o.Address = strings.TrimSpace(*req.Address)
	}
	if req.IsPaid != nil {
		becamePaid = *req.IsPaid && !o.IsPaid
		o.IsPaid = *req.IsPaid
	}
	o.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateOrder(ctx, o, becamePaid); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) DeleteOrder(ctx context.Context, storeID, id uuid.UUID) error {
	return s.repo.DeleteOrder(ctx, storeID, id)
}
