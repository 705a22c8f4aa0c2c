package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/db/dbtest"
	"github.com/georgemunganga/storeadmin/internal/modules/product"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

type fixture struct {
	db       *db.DB
	svc      Service
	products product.Repository
	cat      dbtest.Catalog
}

func setup(t *testing.T) fixture {
	t.Helper()
	d := dbtest.Open(t)
	storeID := dbtest.Store(t, d, dbtest.User(t, d, "owner@example.com"), "Main")
	products := product.NewSQLRepository(d)
	return fixture{
		db:       d,
		svc:      NewService(NewSQLRepository(d), products),
		products: products,
		cat:      dbtest.SeedCatalog(t, d, storeID),
	}
}

func TestPlaceOrderComputesTotal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	tee := dbtest.Product(t, f.db, f.cat, "Tee")
	hat := dbtest.Product(t, f.db, f.cat, "Cap")

	o, err := f.svc.PlaceOrder(ctx, f.cat.StoreID, PlaceOrderRequest{
		Items:   []CartItem{{ProductID: tee.String(), Quantity: 2}, {ProductID: hat.String()}},
		Phone:   " 555-0199 ",
		Address: "2 Side St",
	})
	require.NoError(t, err)
	assert.False(t, o.IsPaid)
	assert.Equal(t, "555-0199", o.Phone)
	assert.True(t, decimal.RequireFromString("30").Equal(o.TotalPrice), o.TotalPrice.String())

	got, err := f.svc.GetOrder(ctx, f.cat.StoreID, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	// items come back ordered by product name
	assert.Equal(t, "Cap", got.Items[0].Product.Name)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, "Tee", got.Items[1].Product.Name)
	assert.True(t, decimal.RequireFromString("30").Equal(got.TotalPrice))
}

func TestPlaceOrderRejectsUnavailableProducts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	other := dbtest.Store(t, f.db, dbtest.User(t, f.db, "other@example.com"), "Other")
	foreign := dbtest.Product(t, f.db, dbtest.SeedCatalog(t, f.db, other), "Foreign")

	archived := dbtest.Product(t, f.db, f.cat, "Old")
	_, err := f.db.ExecContext(ctx, `UPDATE products SET is_archived = ? WHERE id = ?`, true, archived)
	require.NoError(t, err)

	_, err = f.svc.PlaceOrder(ctx, f.cat.StoreID, PlaceOrderRequest{
		Items: []CartItem{{ProductID: foreign.String()}, {ProductID: archived.String()}},
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.Errors{
		"items[0].productId": "Product not found in this store",
		"items[1].productId": "Product is no longer available",
	}, verrs)

	_, err = f.svc.PlaceOrder(ctx, f.cat.StoreID, PlaceOrderRequest{})
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("items"))
}

func TestMarkPaidArchivesProducts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	tee := dbtest.Product(t, f.db, f.cat, "Tee")
	id := dbtest.Order(t, f.db, f.cat.StoreID, false, tee)

	addr := "3 New Rd"
	o, err := f.svc.UpdateOrder(ctx, f.cat.StoreID, id, UpdateOrderRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "3 New Rd", o.Address)
	assert.Equal(t, "555-0100", o.Phone)
	p, err := f.products.Get(ctx, f.cat.StoreID, tee)
	require.NoError(t, err)
	assert.False(t, p.IsArchived)

	paid := true
	o, err = f.svc.UpdateOrder(ctx, f.cat.StoreID, id, UpdateOrderRequest{IsPaid: &paid})
	require.NoError(t, err)
	assert.True(t, o.IsPaid)
	p, err = f.products.Get(ctx, f.cat.StoreID, tee)
	require.NoError(t, err)
	assert.True(t, p.IsArchived)
}

func TestOrdersAreStoreScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	other := dbtest.Store(t, f.db, dbtest.User(t, f.db, "other@example.com"), "Other")
	id := dbtest.Order(t, f.db, f.cat.StoreID, false, dbtest.Product(t, f.db, f.cat, "Tee"))

	_, err := f.svc.GetOrder(ctx, other, id)
	assert.ErrorIs(t, err, db.ErrNotFound)
	assert.ErrorIs(t, f.svc.DeleteOrder(ctx, other, id), db.ErrNotFound)

	list, err := f.svc.ListStoreOrders(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, f.svc.DeleteOrder(ctx, f.cat.StoreID, id))
	list, err = f.svc.ListStoreOrders(ctx, f.cat.StoreID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOrderRoutes(t *testing.T) {
	f := setup(t)
	tee := dbtest.Product(t, f.db, f.cat, "Tee")

	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	r := chi.NewRouter()
	r.Route("/api/{storeId}", func(r chi.Router) {
		NewHandler(f.svc).RegisterRoutes(r, deny)
	})
	base := "/api/" + f.cat.StoreID.String() + "/orders"

	rec := httptest.NewRecorder()
	body := `{"items":[{"productId":"` + tee.String() + `","quantity":3}],"phone":"555","address":"here"}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, base, strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "30", created["totalPrice"])
	assert.Equal(t, false, created["isPaid"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, base+"/"+created["id"].(string), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, base+"/"+created["id"].(string), strings.NewReader(`{"isPaid":true}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, base+"/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
