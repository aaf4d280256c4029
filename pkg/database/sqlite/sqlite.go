package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const DriverName = "sqlite"

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know as a
	// '?' placeholder driver out of the box.
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

type Config struct {
	Path            string
	MaxOpenConns    int
	BusyTimeout     time.Duration
	ConnMaxLifetime time.Duration
}

// DSN builds the modernc connection string. Pragmas in the DSN are applied
// to every pooled connection, which matters for foreign_keys.
func (c *Config) DSN() string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", c.BusyTimeout.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Set("_txlock", "immediate")
	return c.Path + "?" + q.Encode()
}

// NewSQLite opens and pings the embedded database.
func NewSQLite(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("%w: sqlite path is required", ErrUnavailable)
	}

	db, err := sqlx.ConnectContext(ctx, DriverName, cfg.DSN())
	if err != nil {
		return nil, Translate(fmt.Errorf("open %s: %w", cfg.Path, err))
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}
