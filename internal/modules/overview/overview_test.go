package overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/db/dbtest"
)

func TestOverviewFromDatabase(t *testing.T) {
	d := dbtest.Open(t)
	ctx := context.Background()
	storeID := dbtest.Store(t, d, dbtest.User(t, d, "owner@example.com"), "Main")
	cat := dbtest.SeedCatalog(t, d, storeID)
	tee := dbtest.Product(t, d, cat, "Tee")
	hat := dbtest.Product(t, d, cat, "Hat")
	dbtest.Product(t, d, cat, "Sock")
	_, err := d.ExecContext(ctx, `UPDATE products SET is_archived = ? WHERE id = ?`, true, hat)
	require.NoError(t, err)

	dbtest.Order(t, d, storeID, true, tee, hat)
	dbtest.Order(t, d, storeID, true, tee)
	dbtest.Order(t, d, storeID, false, tee)

	now := time.Now().UTC()
	o, err := NewService(NewSQLRepository(d), func() time.Time { return now }).Overview(ctx, storeID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(o.TotalRevenue), o.TotalRevenue.String())
	assert.Equal(t, 2, o.SalesCount)
	assert.Equal(t, 2, o.StockCount)
	require.Len(t, o.Graph, 12)
	assert.Equal(t, "Jan", o.Graph[0].Name)
	assert.Equal(t, "Dec", o.Graph[11].Name)
	assert.True(t, decimal.NewFromInt(30).Equal(o.Graph[now.Month()-1].Total))
}

type stubRepo struct {
	sales []Sale
	err   error
}

func (s stubRepo) PaidSales(context.Context, uuid.UUID) ([]Sale, error) { return s.sales, s.err }
func (s stubRepo) CountPaidOrders(context.Context, uuid.UUID) (int, error) {
	return len(s.sales), nil
}
func (s stubRepo) CountInStock(context.Context, uuid.UUID) (int, error) { return 0, nil }

func TestGraphOnlyCoversCurrentYear(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	repo := stubRepo{sales: []Sale{
		{PaidAt: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), Quantity: 2, Price: decimal.RequireFromString("12.50")},
		{PaidAt: time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC), Quantity: 1, Price: decimal.RequireFromString("5")},
	}}

	o, err := NewService(repo, func() time.Time { return now }).Overview(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "30", o.TotalRevenue.String())
	assert.Equal(t, "25", o.Graph[2].Total.String())
	for i, m := range o.Graph {
		if i != 2 {
			assert.True(t, m.Total.IsZero(), m.Name)
		}
	}
}

func TestOverviewPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewService(stubRepo{err: boom}, nil).Overview(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
}
