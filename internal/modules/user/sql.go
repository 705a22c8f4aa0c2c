package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type sqlRepository struct {
	db *db.DB
}

// NewSQLRepository creates a user repository backed by d.
func NewSQLRepository(d *db.DB) Repository {
	return &sqlRepository{db: d}
}

func (r *sqlRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", db.Classify(err))
	}
	return nil
}

func (r *sqlRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	return r.scanOne(ctx, query, email)
}

func (r *sqlRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	return r.scanOne(ctx, query, id)
}

func (r *sqlRepository) scanOne(ctx context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, db.Classify(err)
	}
	return user, nil
}
