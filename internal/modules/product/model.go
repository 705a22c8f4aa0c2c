package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item in a store's catalog.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	StoreID    uuid.UUID       `json:"storeId"`
	CategoryID uuid.UUID       `json:"categoryId"`
	SizeID     uuid.UUID       `json:"sizeId"`
	ColorID    uuid.UUID       `json:"colorId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
	Images     []Image         `json:"images"`
	Category   Named           `json:"category"`
	Size       Valued          `json:"size"`
	Color      Valued          `json:"color"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Image is a hosted picture of a product.
type Image struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// Named is a joined row shown by name.
type Named struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Valued is a joined size or color.
type Valued struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Value string    `json:"value"`
}

// Input holds the editable product fields.
type Input struct {
	Name       string          `json:"name" schema:"name" validate:"required"`
	Images     []ImageInput    `json:"images" schema:"images" validate:"min=1,dive"`
	Price      decimal.Decimal `json:"price" schema:"price" validate:"gte=1"`
	CategoryID string          `json:"categoryId" schema:"categoryId" validate:"required,uuid"`
	ColorID    string          `json:"colorId" schema:"colorId" validate:"required,uuid"`
	SizeID     string          `json:"sizeId" schema:"sizeId" validate:"required,uuid"`
	IsFeatured bool            `json:"isFeatured" schema:"isFeatured"`
	IsArchived bool            `json:"isArchived" schema:"isArchived"`
}

// ImageInput is one image URL on a product form.
type ImageInput struct {
	URL string `json:"url" schema:"url" validate:"required"`
}

// Filter narrows a product listing. Nil fields do not filter.
type Filter struct {
	CategoryID      *uuid.UUID
	ColorID         *uuid.UUID
	SizeID          *uuid.UUID
	IsFeatured      *bool
	IncludeArchived bool
}
