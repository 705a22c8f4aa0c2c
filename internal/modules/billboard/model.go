package billboard

import (
	"time"

	"github.com/google/uuid"
)

// Billboard is a labelled hero image that categories display.
type Billboard struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input holds the editable billboard fields.
type Input struct {
	Label    string `json:"label" schema:"label" validate:"required"`
	ImageURL string `json:"imageUrl" schema:"imageUrl" validate:"required"`
}
