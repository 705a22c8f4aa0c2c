package store

import (
	"time"

	"github.com/google/uuid"
)

// Store is the tenant that scopes every catalog entity and order.
type Store struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input holds the editable store fields.
type Input struct {
	Name string `json:"name" schema:"name" validate:"required"`
}
