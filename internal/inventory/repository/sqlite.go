package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-tracker/internal/inventory"
	"github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) GetByProduct(ctx context.Context, productID int64) (*model.Inventory, error) {
	return GetByProduct(ctx, r.DB, productID)
}

func (r *SQLiteRepository) FindLowStock(ctx context.Context, f *dto.InventoryFilters) ([]model.StockLevel, error) {
	items := []model.StockLevel{}
	query := `
        SELECT p.id AS product_id, p.name, p.unit_cost, p.price_suggested,
               COALESCE(i.qty_on_hand, 0) AS qty_on_hand
        FROM products p
        LEFT JOIN inventory i ON i.product_id = p.id
        WHERE p.active = 1 AND COALESCE(i.qty_on_hand, 0) <= ?
        ORDER BY qty_on_hand ASC, p.name ASC
    `
	if err := r.DB.SelectContext(ctx, &items, query, f.Threshold); err != nil {
		return nil, sqlite.Translate(err)
	}
	return items, nil
}

func (r *SQLiteRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx inventory.TxRepository) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return sqlite.Translate(err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &txRepository{tx: tx}); err != nil {
		return err
	}
	return sqlite.Translate(tx.Commit())
}

type txRepository struct {
	tx *sqlx.Tx
}

func (r *txRepository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	return ProductExists(ctx, r.tx, productID)
}

func (r *txRepository) GetQuantity(ctx context.Context, productID int64) (int64, error) {
	return GetQuantity(ctx, r.tx, productID)
}

func (r *txRepository) AdjustQuantity(ctx context.Context, productID, delta int64) error {
	return AdjustQuantity(ctx, r.tx, productID, delta)
}

func (r *txRepository) GetByProduct(ctx context.Context, productID int64) (*model.Inventory, error) {
	return GetByProduct(ctx, r.tx, productID)
}

// The helpers below take any sqlx.ExtContext so product and sale
// repositories can move stock inside their own transactions.

func GetByProduct(ctx context.Context, q sqlx.QueryerContext, productID int64) (*model.Inventory, error) {
	var inv model.Inventory
	err := sqlx.GetContext(ctx, q, &inv, `SELECT id, product_id, qty_on_hand FROM inventory WHERE product_id = ?`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // caller decides on defaults
		}
		return nil, sqlite.Translate(err)
	}
	return &inv, nil
}

// GetQuantity returns qty_on_hand, or 0 when the product has no row yet.
func GetQuantity(ctx context.Context, q sqlx.QueryerContext, productID int64) (int64, error) {
	inv, err := GetByProduct(ctx, q, productID)
	if err != nil || inv == nil {
		return 0, err
	}
	return inv.QtyOnHand, nil
}

// AdjustQuantity adds delta to qty_on_hand, creating the row from a zero
// baseline when it does not exist. No floor or ceiling is applied here.
func AdjustQuantity(ctx context.Context, e sqlx.ExecerContext, productID, delta int64) error {
	_, err := e.ExecContext(ctx, `
        INSERT INTO inventory (product_id, qty_on_hand)
        VALUES (?, ?)
        ON CONFLICT(product_id) DO UPDATE SET qty_on_hand = qty_on_hand + excluded.qty_on_hand
    `, productID, delta)
	return sqlite.Translate(err)
}

// SetQuantity overwrites qty_on_hand with an absolute value.
func SetQuantity(ctx context.Context, e sqlx.ExecerContext, productID, qty int64) error {
	_, err := e.ExecContext(ctx, `
        INSERT INTO inventory (product_id, qty_on_hand)
        VALUES (?, ?)
        ON CONFLICT(product_id) DO UPDATE SET qty_on_hand = excluded.qty_on_hand
    `, productID, qty)
	return sqlite.Translate(err)
}

func ProductExists(ctx context.Context, q sqlx.QueryerContext, productID int64) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, q, &count, `SELECT COUNT(*) FROM products WHERE id = ?`, productID); err != nil {
		return false, sqlite.Translate(err)
	}
	return count > 0, nil
}
