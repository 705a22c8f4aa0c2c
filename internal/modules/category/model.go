package category

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products and is shown with a billboard.
type Category struct {
	ID          uuid.UUID     `json:"id"`
	StoreID     uuid.UUID     `json:"storeId"`
	BillboardID uuid.UUID     `json:"billboardId"`
	Name        string        `json:"name"`
	Billboard   BillboardInfo `json:"billboard"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// BillboardInfo is the joined billboard a category displays.
type BillboardInfo struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	ImageURL string    `json:"imageUrl"`
}

// Input holds the editable category fields.
type Input struct {
	Name        string `json:"name" schema:"name" validate:"required"`
	BillboardID string `json:"billboardId" schema:"billboardId" validate:"required,uuid"`
}
