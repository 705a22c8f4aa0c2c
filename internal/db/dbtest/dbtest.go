// Package dbtest provides migrated in-memory databases and fixture rows for
// repository and service tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/db"
)

// Open returns a fresh migrated SQLite database closed at test cleanup.
func Open(t testing.TB) *db.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// User inserts a user row and returns its id.
func User(t testing.TB, d *db.DB, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	_, err := d.ExecContext(context.Background(), `
		INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`, id, email, "x", "", now, now)
	require.NoError(t, err)
	return id
}

// Store inserts a store owned by userID and returns its id.
func Store(t testing.TB, d *db.DB, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	_, err := d.ExecContext(context.Background(), `
		INSERT INTO stores (id, user_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`, id, userID, name, now, now)
	require.NoError(t, err)
	return id
}

// Billboard inserts a billboard and returns its id.
func Billboard(t testing.TB, d *db.DB, storeID uuid.UUID, label string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	_, err := d.ExecContext(context.Background(), `
		INSERT INTO billboards (id, store_id, label, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`, id, storeID, label, "https://img.example/"+label+".png", now, now)
	require.NoError(t, err)
	return id
}

// Category inserts a category under billboardID and returns its id.
func Category(t testing.TB, d *db.DB, storeID, billboardID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	_, err := d.ExecContext(context.Background(), `
		INSERT INTO categories (id, store_id, billboard_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`, id, storeID, billboardID, name, now, now)
	require.NoError(t, err)
	return id
}

// Size inserts a size and returns its id.
func Size(t testing.TB, d *db.DB, storeID uuid.UUID, name, value string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	_, err := d.ExecContext(context.Background(), `
		INSERT INTO sizes (id, store_id, name, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`, id, storeID, name, value, now, now)
	require.NoError(t, err)
	return id
}

// Color inserts a color and returns its id.
func Color(t testing.TB, d *db.DB, storeID uuid.UUID, name, value string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	_, err := d.ExecContext(context.Background(), `
		INSERT INTO colors (id, store_id, name, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`, id, storeID, name, value, now, now)
	require.NoError(t, err)
	return id
}

// Catalog is a set of rows a product can reference.
type Catalog struct {
	StoreID     uuid.UUID
	BillboardID uuid.UUID
	CategoryID  uuid.UUID
	SizeID      uuid.UUID
	ColorID     uuid.UUID
}

// SeedCatalog creates a billboard, category, size and color in storeID.
func SeedCatalog(t testing.TB, d *db.DB, storeID uuid.UUID) Catalog {
	t.Helper()
	bb := Billboard(t, d, storeID, "Summer")
	return Catalog{
		StoreID:     storeID,
		BillboardID: bb,
		CategoryID:  Category(t, d, storeID, bb, "Shirts"),
		SizeID:      Size(t, d, storeID, "Large", "L"),
		ColorID:     Color(t, d, storeID, "Black", "#000000"),
	}
}

// Product inserts a non-archived product priced 10.00 with one image and
// returns its id.
func Product(t testing.TB, d *db.DB, c Catalog, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	ctx := context.Background()
	_, err := d.ExecContext(ctx, `
		INSERT INTO products (id, store_id, category_id, size_id, color_id, name, price, is_featured, is_archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, c.StoreID, c.CategoryID, c.SizeID, c.ColorID, name, "10.00", false, false, now, now)
	require.NoError(t, err)
	_, err = d.ExecContext(ctx, `
		INSERT INTO images (id, product_id, url, created_at) VALUES (?, ?, ?, ?)`,
		uuid.New(), id, "https://img.example/"+name+".png", now)
	require.NoError(t, err)
	return id
}

// Order inserts an order holding one of each product and returns its id.
func Order(t testing.TB, d *db.DB, storeID uuid.UUID, paid bool, productIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	ctx := context.Background()
	_, err := d.ExecContext(ctx, `
		INSERT INTO orders (id, store_id, is_paid, phone, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, id, storeID, paid, "555-0100", "1 Main St", now, now)
	require.NoError(t, err)
	for _, pid := range productIDs {
		_, err = d.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity) VALUES (?, ?, ?, ?)`,
			uuid.New(), id, pid, 1)
		require.NoError(t, err)
	}
	return id
}
