package color

import (
	"time"

	"github.com/google/uuid"
)

// Color is a named product color whose value is a hex code like "#000000".
type Color struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input holds the editable color fields.
type Input struct {
	Name  string `json:"name" schema:"name" validate:"required"`
	Value string `json:"value" schema:"value" validate:"required,min=4,startswith=#"`
}
