package size

import (
	"time"

	"github.com/google/uuid"
)

// Size is a product dimension such as "Large" with a short value such as "L".
type Size struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input holds the editable size fields.
type Input struct {
	Name  string `json:"name" schema:"name" validate:"required"`
	Value string `json:"value" schema:"value" validate:"required"`
}
