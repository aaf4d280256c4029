package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

// DefaultStock is the opening qty_on_hand of every seeded product.
const DefaultStock = 10

type seedProduct struct {
	Name           string  `db:"name"`
	Type           string  `db:"type"`
	Color          *string `db:"color"`
	Size           *string `db:"size"`
	UnitCost       float64 `db:"unit_cost"`
	PriceSuggested float64 `db:"price_suggested"`
}

func strPtr(s string) *string { return &s }

var defaultProducts = []seedProduct{
	{Name: "Oversized Tee - Black", Type: "clothing", Color: strPtr("Black"), Size: strPtr("L"), UnitCost: 180, PriceSuggested: 280},
	{Name: "Oversized Tee - White", Type: "clothing", Color: strPtr("White"), Size: strPtr("L"), UnitCost: 170, PriceSuggested: 270},
	{Name: "Logo Cap - Navy", Type: "cap", Color: strPtr("Navy"), Size: nil, UnitCost: 90, PriceSuggested: 180},
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return sqlite.Translate(fmt.Errorf("migrate: %w", err))
		}
	}
	return nil
}

// Seed inserts the starter catalogue, each product with DefaultStock units,
// when the products table is empty. It reports how many products it added.
func Seed(ctx context.Context, db *sqlx.DB) (int, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, sqlite.Translate(err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, sqlite.Translate(err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, p := range defaultProducts {
		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO products (name, type, color, size, unit_cost, price_suggested, active)
			VALUES (:name, :type, :color, :size, :unit_cost, :price_suggested, 1)`, p)
		if err != nil {
			return 0, sqlite.Translate(fmt.Errorf("seed product %q: %w", p.Name, err))
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO inventory (product_id, qty_on_hand) VALUES (?, ?)`, id, DefaultStock); err != nil {
			return 0, sqlite.Translate(fmt.Errorf("seed inventory %q: %w", p.Name, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, sqlite.Translate(err)
	}
	return len(defaultProducts), nil
}
