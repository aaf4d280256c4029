package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Config {
	t.Helper()
	return &Config{Path: filepath.Join(t.TempDir(), "test.db"), BusyTimeout: time.Second}
}

func TestDSNCarriesPragmas(t *testing.T) {
	cfg := &Config{Path: "tracker.db", BusyTimeout: 5 * time.Second}
	dsn := cfg.DSN()
	require.Contains(t, dsn, "tracker.db?")
	require.Contains(t, dsn, "foreign_keys%281%29")
	require.Contains(t, dsn, "busy_timeout%285000%29")
}

func TestNewSQLiteEnablesForeignKeys(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLite(ctx, openTemp(t))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var enabled int
	require.NoError(t, db.GetContext(ctx, &enabled, "PRAGMA foreign_keys"))
	require.Equal(t, 1, enabled)
}

func TestTranslateConstraint(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLite(ctx, openTemp(t))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.MustExecContext(ctx, `CREATE TABLE parent (id INTEGER PRIMARY KEY)`)
	db.MustExecContext(ctx, `CREATE TABLE child (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL REFERENCES parent(id))`)

	_, err = db.ExecContext(ctx, `INSERT INTO child (parent_id) VALUES (?)`, 42)
	require.Error(t, err)
	require.True(t, IsConstraint(err))
	require.False(t, IsUnavailable(err))
	require.ErrorIs(t, Translate(err), ErrConstraint)
}

func TestTranslatePassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	require.Same(t, plain, Translate(plain))
	require.NoError(t, Translate(nil))
}

func TestNewSQLiteRequiresPath(t *testing.T) {
	_, err := NewSQLite(context.Background(), &Config{})
	require.ErrorIs(t, err, ErrUnavailable)
}
