package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

func TestGetMe(t *testing.T) {
	svc := newTestService(t)
	u, err := svc.RegisterUser(context.Background(), RegisterInput{Email: "me@example.com", Password: "password1"})
	require.NoError(t, err)

	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(httpapi.WithUserID(req.Context(), u.ID))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "me@example.com", body["email"])
	assert.NotContains(t, body, "passwordHash")
}

func TestGetMeUnauthenticated(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(newTestService(t)).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
