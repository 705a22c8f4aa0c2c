package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/db/dbtest"
	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

func setup(t *testing.T) (*db.DB, Service, uuid.UUID) {
	t.Helper()
	d := dbtest.Open(t)
	return d, NewService(NewSQLRepository(d)), dbtest.User(t, d, "owner@example.com")
}

func TestCreateAndListStores(t *testing.T) {
	_, svc, owner := setup(t)
	ctx := context.Background()

	first, err := svc.CreateStore(ctx, owner, Input{Name: " Main "})
	require.NoError(t, err)
	assert.Equal(t, "Main", first.Name)
	_, err = svc.CreateStore(ctx, owner, Input{Name: "Outlet"})
	require.NoError(t, err)

	stores, err := svc.ListStores(ctx, owner)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, first.ID, stores[0].ID)
}

func TestCreateStoreRequiresName(t *testing.T) {
	_, svc, owner := setup(t)
	_, err := svc.CreateStore(context.Background(), owner, Input{Name: "   "})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("name"))
}

func TestOwnershipGating(t *testing.T) {
	d, svc, owner := setup(t)
	ctx := context.Background()
	intruder := dbtest.User(t, d, "intruder@example.com")

	st, err := svc.CreateStore(ctx, owner, Input{Name: "Main"})
	require.NoError(t, err)

	_, err = svc.GetOwnedStore(ctx, intruder, st.ID)
	assert.ErrorIs(t, err, httpapi.ErrForbidden)
	_, err = svc.UpdateStore(ctx, intruder, st.ID, Input{Name: "Mine"})
	assert.ErrorIs(t, err, httpapi.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteStore(ctx, intruder, st.ID), httpapi.ErrForbidden)

	_, err = svc.GetOwnedStore(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestUpdateAndDeleteStore(t *testing.T) {
	_, svc, owner := setup(t)
	ctx := context.Background()
	st, err := svc.CreateStore(ctx, owner, Input{Name: "Main"})
	require.NoError(t, err)

	updated, err := svc.UpdateStore(ctx, owner, st.ID, Input{Name: "Flagship"})
	require.NoError(t, err)
	assert.Equal(t, "Flagship", updated.Name)

	require.NoError(t, svc.DeleteStore(ctx, owner, st.ID))
	_, err = svc.GetOwnedStore(ctx, owner, st.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestDeleteStoreWithEntitiesIsReferenced(t *testing.T) {
	d, svc, owner := setup(t)
	ctx := context.Background()
	st, err := svc.CreateStore(ctx, owner, Input{Name: "Main"})
	require.NoError(t, err)
	dbtest.Billboard(t, d, st.ID, "Hero")

	assert.ErrorIs(t, svc.DeleteStore(ctx, owner, st.ID), db.ErrReferenced)
}

func newRouter(svc Service, userID uuid.UUID) chi.Router {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(httpapi.WithUserID(r.Context(), userID)))
		})
	})
	NewHandler(svc).RegisterRoutes(r)
	r.With(RequireOwner(svc)).Get("/{storeId}/guarded", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestHandlerCreateStore(t *testing.T) {
	_, svc, owner := setup(t)
	r := newRouter(svc, owner)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stores", strings.NewReader(`{"name":"Main"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var st Store
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.NotEqual(t, uuid.Nil, st.ID)
	assert.Equal(t, owner, st.UserID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stores", strings.NewReader(`{"name":""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireOwner(t *testing.T) {
	d, svc, owner := setup(t)
	st, err := svc.CreateStore(context.Background(), owner, Input{Name: "Main"})
	require.NoError(t, err)
	intruder := dbtest.User(t, d, "intruder@example.com")

	cases := []struct {
		name   string
		user   uuid.UUID
		path   string
		status int
	}{
		{"owner", owner, "/" + st.ID.String() + "/guarded", http.StatusOK},
		{"intruder", intruder, "/" + st.ID.String() + "/guarded", http.StatusForbidden},
		{"missing store", owner, "/" + uuid.NewString() + "/guarded", http.StatusNotFound},
		{"malformed id", owner, "/not-a-uuid/guarded", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(svc, tc.user).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
