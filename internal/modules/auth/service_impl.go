package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/modules/user"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

type service struct {
	users    user.Service
	userRepo user.Repository
	jwtKey   []byte
	ttl      time.Duration
}

// NewService creates a new auth service signing tokens with secret.
func NewService(users user.Service, userRepo user.Repository, secret string, ttl time.Duration) Service {
	return &service{users: users, userRepo: userRepo, jwtKey: []byte(secret), ttl: ttl}
}

func (s *service) SignUp(ctx context.Context, in user.RegisterInput) (*Session, error) {
	u, err := s.users.RegisterUser(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *service) SignIn(ctx context.Context, in SignInInput) (*Session, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetUserByEmail(ctx, user.NormalizeEmail(in.Email))
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *service) issue(u *user.User) (*Session, error) {
	expirationTime := time.Now().Add(s.ttl)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{Token: tokenString, ExpiresAt: expirationTime, User: u}, nil
}

func (s *service) ParseToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, httpapi.ErrUnauthorized
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, httpapi.ErrUnauthorized
	}
	return id, nil
}
