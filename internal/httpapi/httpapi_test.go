package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validation.Errors{"name": "Required"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", fmt.Errorf("store: %w", ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{"not found", fmt.Errorf("get billboard: %w", db.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"referenced", fmt.Errorf("delete: %w", db.ErrReferenced), http.StatusConflict, "REFERENCED"},
		{"duplicate", db.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, decodeBody(t, rec).Code)
		})
	}
}

func TestWriteServiceErrorIncludesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteServiceError(rec, httptest.NewRequest(http.MethodPost, "/", nil), validation.Errors{"label": "Required"})
	assert.Equal(t, validation.Errors{"label": "Required"}, decodeBody(t, rec).Fields)
}

func TestWriteServiceErrorLogsOnlyInternal(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := WithLogger(httptest.NewRequest(http.MethodGet, "/", nil).Context(), zap.New(core))

	WriteServiceError(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx), db.ErrNotFound)
	assert.Equal(t, 0, logs.Len())

	WriteServiceError(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx), errors.New("boom"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "internal error", logs.All()[0].Message)
}

func TestParseUUID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/items/{itemId}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseUUID(w, r, "itemId")
		if !ok {
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"id": id.String()})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeBody(t, rec).Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/6f1c1f9e-3c55-4a9a-8f3e-0d8f0f0e2a11", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDecodeOrReject(t *testing.T) {
	var v struct{ Name string }
	rec := httptest.NewRecorder()
	ok := DecodeOrReject(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")), &v)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	ok = DecodeOrReject(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Name":"x"}`)), &v)
	assert.True(t, ok)
	assert.Equal(t, "x", v.Name)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := middleware.RequestID(RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Logger(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	require.Equal(t, 2, logs.Len())
	inside, line := logs.All()[0], logs.All()[1]
	assert.Equal(t, "inside", inside.Message)
	assert.NotEmpty(t, inside.ContextMap()["request_id"])
	assert.Equal(t, "request", line.Message)
	assert.Equal(t, int64(http.StatusTeapot), line.ContextMap()["status"])
	assert.Equal(t, "/brew", line.ContextMap()["path"])
}
