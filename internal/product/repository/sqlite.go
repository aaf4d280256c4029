package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	invrepo "github.com/fekuna/omnipos-tracker/internal/inventory/repository"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/product"
	"github.com/fekuna/omnipos-tracker/internal/product/dto"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/jmoiron/sqlx"
)

const selectWithInventory = `
    SELECT p.id, p.name, p.type, p.color, p.size, p.unit_cost, p.price_suggested, p.active,
           COALESCE(i.qty_on_hand, 0) AS qty_on_hand
    FROM products p
    LEFT JOIN inventory i ON i.product_id = p.id
`

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.ProductWithInventory, error) {
	return findByID(ctx, r.DB, id)
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.ProductWithInventory, error) {
	products := []model.ProductWithInventory{}
	query := selectWithInventory
	if f == nil || !f.IncludeInactive {
		query += " WHERE p.active = 1"
	}
	query += " ORDER BY p.name ASC"

	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, sqlite.Translate(err)
	}
	return products, nil
}

func (r *SQLiteRepository) FindMarginWarnings(ctx context.Context) ([]model.MarginWarning, error) {
	warnings := []model.MarginWarning{}
	query := `
        SELECT id, name, unit_cost, price_suggested
        FROM products
        WHERE active = 1 AND price_suggested <= unit_cost
        ORDER BY name ASC
    `
	if err := r.DB.SelectContext(ctx, &warnings, query); err != nil {
		return nil, sqlite.Translate(err)
	}
	return warnings, nil
}

func (r *SQLiteRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx product.TxRepository) error) error {
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

func (r *txRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	query, args, err := squirrel.Insert("products").
		SetMap(productColumns(p)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building insert: %w", err)
	}
	res, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.Translate(err)
	}
	return res.LastInsertId()
}

func (r *txRepository) Update(ctx context.Context, p *model.Product) (bool, error) {
	query, args, err := squirrel.Update("products").
		SetMap(productColumns(p)).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building update: %w", err)
	}
	res, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, sqlite.Translate(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting affected rows: %w", err)
	}
	return rows == 1, nil
}

func (r *txRepository) SetQuantity(ctx context.Context, productID, qty int64) error {
	return invrepo.SetQuantity(ctx, r.tx, productID, qty)
}

func (r *txRepository) FindByID(ctx context.Context, id int64) (*model.ProductWithInventory, error) {
	return findByID(ctx, r.tx, id)
}

func productColumns(p *model.Product) map[string]interface{} {
	return map[string]interface{}{
		"name":            p.Name,
		"type":            string(p.Type),
		"color":           p.Color,
		"size":            p.Size,
		"unit_cost":       p.UnitCost,
		"price_suggested": p.PriceSuggested,
		"active":          p.Active,
	}
}

func findByID(ctx context.Context, q sqlx.QueryerContext, id int64) (*model.ProductWithInventory, error) {
	var p model.ProductWithInventory
	err := sqlx.GetContext(ctx, q, &p, selectWithInventory+" WHERE p.id = ? LIMIT 1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, sqlite.Translate(err)
	}
	return &p, nil
}
