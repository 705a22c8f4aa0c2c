package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/db/dbtest"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewSQLRepository(dbtest.Open(t)))
}

func TestRegisterUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, RegisterInput{Email: "  Ada@Example.com ", Password: "correct horse", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")))

	got, err := svc.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Ada", got.Name)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, RegisterInput{Email: "ada@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, RegisterInput{Email: "ADA@example.com", Password: "password2"})
	assert.ErrorIs(t, err, db.ErrDuplicate)
}

func TestRegisterUserValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), RegisterInput{Email: "not-an-email", Password: "short"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("email"))
	assert.True(t, verrs.Has("password"))
}

func TestGetUserNotFound(t *testing.T) {
	d := dbtest.Open(t)
	repo := NewSQLRepository(d)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, db.ErrNotFound)
}
