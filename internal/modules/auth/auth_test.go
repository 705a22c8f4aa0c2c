package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/db/dbtest"
	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/modules/user"
)

func newTestService(t *testing.T, ttl time.Duration) Service {
	t.Helper()
	repo := user.NewSQLRepository(dbtest.Open(t))
	return NewService(user.NewService(repo), repo, "test-secret", ttl)
}

func TestSignUpAndSignIn(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	up, err := svc.SignUp(ctx, user.RegisterInput{Email: "ada@example.com", Password: "password1"})
	require.NoError(t, err)
	require.NotEmpty(t, up.Token)

	in, err := svc.SignIn(ctx, SignInInput{Email: "ADA@example.com", Password: "password1"})
	require.NoError(t, err)

	id, err := svc.ParseToken(in.Token)
	require.NoError(t, err)
	assert.Equal(t, up.User.ID, id)
}

func TestSignInInvalidCredentials(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, user.RegisterInput{Email: "ada@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, SignInInput{Email: "ada@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, httpapi.ErrUnauthorized)

	_, err = svc.SignIn(ctx, SignInInput{Email: "nobody@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsExpiredAndForeign(t *testing.T) {
	expired := newTestService(t, -time.Minute)
	sess, err := expired.SignUp(context.Background(), user.RegisterInput{Email: "old@example.com", Password: "password1"})
	require.NoError(t, err)
	_, err = expired.ParseToken(sess.Token)
	assert.ErrorIs(t, err, httpapi.ErrUnauthorized)

	other := NewService(nil, nil, "other-secret", time.Hour)
	_, err = other.ParseToken(sess.Token)
	assert.ErrorIs(t, err, httpapi.ErrUnauthorized)

	_, err = other.ParseToken("garbage")
	assert.ErrorIs(t, err, httpapi.ErrUnauthorized)
}

func TestRequireUser(t *testing.T) {
	svc := newTestService(t, time.Hour)
	sess, err := svc.SignUp(context.Background(), user.RegisterInput{Email: "ada@example.com", Password: "password1"})
	require.NoError(t, err)

	var seen uuid.UUID
	h := RequireUser(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = httpapi.UserID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess.User.ID, seen)

	seen = uuid.Nil
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sess.Token})
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, sess.User.ID, seen)
}

func TestRequirePageUserRedirects(t *testing.T) {
	h := RequirePageUser(newTestService(t, time.Hour))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/s1", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/sign-in", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/s1", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "/sign-in", rec.Header().Get("HX-Redirect"))
}

func TestHandlerSignInSetsCookie(t *testing.T) {
	svc := newTestService(t, time.Hour)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/sign-up",
		strings.NewReader(`{"email":"ada@example.com","password":"password1","name":"Ada"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/sign-in",
		strings.NewReader(`{"email":"ada@example.com","password":"password1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var sess Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, sess.Token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/sign-in",
		strings.NewReader(`{"email":"ada@example.com","password":"nope-nope"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}
