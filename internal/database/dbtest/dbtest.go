// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fekuna/omnipos-tracker/internal/database"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/jmoiron/sqlx"
)

// Open returns an empty, migrated database in t.TempDir().
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.NewSQLite(ctx, &sqlite.Config{
		Path:        filepath.Join(t.TempDir(), "tracker.db"),
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// OpenSeeded is Open plus the starter catalogue.
func OpenSeeded(t testing.TB) *sqlx.DB {
	t.Helper()
	db := Open(t)
	if _, err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

// Stock reads qty_on_hand for productID, failing the test when absent.
func Stock(t testing.TB, db *sqlx.DB, productID int64) int64 {
	t.Helper()
	var qty int64
	if err := db.Get(&qty, `SELECT qty_on_hand FROM inventory WHERE product_id = ?`, productID); err != nil {
		t.Fatalf("read stock for %d: %v", productID, err)
	}
	return qty
}

// ProductID looks a seeded product up by name.
func ProductID(t testing.TB, db *sqlx.DB, name string) int64 {
	t.Helper()
	var id int64
	if err := db.Get(&id, `SELECT id FROM products WHERE name = ?`, name); err != nil {
		t.Fatalf("lookup product %q: %v", name, err)
	}
	return id
}
