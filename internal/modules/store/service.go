package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

// Service defines store business logic. Every operation is scoped to the
// owning user.
type Service interface {
	CreateStore(ctx context.Context, userID uuid.UUID, in Input) (*Store, error)
	// GetOwnedStore returns db.ErrNotFound for unknown ids and
	// httpapi.ErrForbidden when another user owns the store.
	GetOwnedStore(ctx context.Context, userID, id uuid.UUID) (*Store, error)
	ListStores(ctx context.Context, userID uuid.UUID) ([]*Store, error)
	UpdateStore(ctx context.Context, userID, id uuid.UUID, in Input) (*Store, error)
	DeleteStore(ctx context.Context, userID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new store service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateStore(ctx context.Context, userID uuid.UUID, in Input) (*Store, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	st := &Store{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateStore(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) GetOwnedStore(ctx context.Context, userID, id uuid.UUID) (*Store, error) {
	st, err := s.repo.GetStoreByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.UserID != userID {
		return nil, httpapi.ErrForbidden
	}
	return st, nil
}

func (s *service) ListStores(ctx context.Context, userID uuid.UUID) ([]*Store, error) {
	return s.repo.ListStoresByUser(ctx, userID)
}

func (s *service) UpdateStore(ctx context.Context, userID, id uuid.UUID, in Input) (*Store, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	st, err := s.GetOwnedStore(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	st.Name = in.Name
	st.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateStore(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) DeleteStore(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetOwnedStore(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.DeleteStore(ctx, id)
}
