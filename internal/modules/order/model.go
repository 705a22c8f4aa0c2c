package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a storefront purchase of one or more products.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	StoreID    uuid.UUID       `json:"storeId"`
	IsPaid     bool            `json:"isPaid"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	Items      []*OrderItem    `json:"orderItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// OrderItem is a single line item within an order.
type OrderItem struct {
	ID        uuid.UUID      `json:"id"`
	ProductID uuid.UUID      `json:"productId"`
	Quantity  int            `json:"quantity"`
	Product   ProductSummary `json:"product"`
}

// ProductSummary is the joined product of an order item at its current price.
type ProductSummary struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// computeTotal sets TotalPrice to the sum of price × quantity over all items.
func (o *Order) computeTotal() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	o.TotalPrice = total
}

// CartItem describes one product a customer wants.
type CartItem struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// PlaceOrderRequest is the payload for creating a new order. A zero
// quantity means one.
type PlaceOrderRequest struct {
	Items   []CartItem `json:"items" validate:"min=1,dive"`
	Phone   string     `json:"phone"`
	Address string     `json:"address"`
}

// UpdateOrderRequest changes the fulfilment fields of an order. Nil fields
// are left as they are.
type UpdateOrderRequest struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	IsPaid  *bool   `json:"isPaid"`
}
