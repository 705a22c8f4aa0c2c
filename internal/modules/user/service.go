package user

import (
	"context"

	"github.com/google/uuid"
)

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
}

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, in RegisterInput) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
}
