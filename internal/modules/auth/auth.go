package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/modules/user"
)

// SessionCookie is the cookie that carries the session token for browsers.
const SessionCookie = "__session"

// ErrInvalidCredentials is returned when the email or password does not match.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", httpapi.ErrUnauthorized)

// SignInInput is the payload for starting a session.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is an issued token together with the account it belongs to.
type Session struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      *user.User `json:"user"`
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	SignUp(ctx context.Context, in user.RegisterInput) (*Session, error)
	SignIn(ctx context.Context, in SignInInput) (*Session, error)
	// ParseToken returns the user id a valid, unexpired token was issued to.
	ParseToken(token string) (uuid.UUID, error)
}
