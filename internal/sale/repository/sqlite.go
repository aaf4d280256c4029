package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	invrepo "github.com/fekuna/omnipos-tracker/internal/inventory/repository"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/sale"
	"github.com/fekuna/omnipos-tracker/internal/sale/dto"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Sale, error) {
	return findByID(ctx, r.DB, id)
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.SaleFilters) ([]model.SaleWithProduct, error) {
	limit := dto.DefaultLimit
	if f != nil && f.Limit > 0 {
		limit = f.Limit
	}

	sales := []model.SaleWithProduct{}
	query := `
        SELECT s.id, s.product_id, s.qty, s.sale_price, s.channel, s.payment_method, s.fee, s.date, s.note,
               COALESCE(p.name, '') AS name, COALESCE(p.type, '') AS type, p.color, p.size
        FROM sales s
        LEFT JOIN products p ON p.id = s.product_id
        ORDER BY s.date DESC, s.id DESC
        LIMIT ?
    `
	if err := r.DB.SelectContext(ctx, &sales, query, limit); err != nil {
		return nil, sqlite.Translate(err)
	}
	return sales, nil
}

func (r *SQLiteRepository) FindUnitCost(ctx context.Context, productID int64) (*float64, error) {
	var cost float64
	err := r.DB.GetContext(ctx, &cost, `SELECT unit_cost FROM products WHERE id = ?`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, sqlite.Translate(err)
	}
	return &cost, nil
}

func (r *SQLiteRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx sale.TxRepository) error) error {
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

func (r *txRepository) FindByID(ctx context.Context, id int64) (*model.Sale, error) {
	return findByID(ctx, r.tx, id)
}

func (r *txRepository) Insert(ctx context.Context, s *model.Sale) (int64, error) {
	query := `
        INSERT INTO sales (product_id, qty, sale_price, channel, payment_method, fee, date, note)
        VALUES (:product_id, :qty, :sale_price, :channel, :payment_method, :fee, :date, :note)
    `
	res, err := r.tx.NamedExecContext(ctx, query, s)
	if err != nil {
		return 0, sqlite.Translate(err)
	}
	return res.LastInsertId()
}

func (r *txRepository) Update(ctx context.Context, id int64, patch *dto.SalePatch) error {
	query, args, err := squirrel.Update("sales").
		SetMap(patchColumns(patch)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update: %w", err)
	}
	if _, err := r.tx.ExecContext(ctx, query, args...); err != nil {
		return sqlite.Translate(err)
	}
	return nil
}

func (r *txRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.tx.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id)
	return sqlite.Translate(err)
}

func (r *txRepository) GetQuantity(ctx context.Context, productID int64) (int64, error) {
	return invrepo.GetQuantity(ctx, r.tx, productID)
}

func (r *txRepository) AdjustQuantity(ctx context.Context, productID, delta int64) error {
	return invrepo.AdjustQuantity(ctx, r.tx, productID, delta)
}

// patchColumns keeps only the fields the caller set.
func patchColumns(p *dto.SalePatch) map[string]interface{} {
	m := map[string]interface{}{}
	if p.Qty != nil {
		m["qty"] = *p.Qty
	}
	if p.SalePrice != nil {
		m["sale_price"] = *p.SalePrice
	}
	if p.Fee != nil {
		m["fee"] = *p.Fee
	}
	if p.Note != nil {
		m["note"] = *p.Note
	}
	return m
}

func findByID(ctx context.Context, q sqlx.QueryerContext, id int64) (*model.Sale, error) {
	var s model.Sale
	err := sqlx.GetContext(ctx, q, &s, `
        SELECT id, product_id, qty, sale_price, channel, payment_method, fee, date, note
        FROM sales WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, sqlite.Translate(err)
	}
	return &s, nil
}
