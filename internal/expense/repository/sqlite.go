package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fekuna/omnipos-tracker/internal/expense/dto"
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

func (r *SQLiteRepository) Create(ctx context.Context, e *model.Expense) (int64, error) {
	query := `
        INSERT INTO expenses (category, amount, payment_method, fee, date, supplier, note)
        VALUES (:category, :amount, :payment_method, :fee, :date, :supplier, :note)
    `
	res, err := r.DB.NamedExecContext(ctx, query, e)
	if err != nil {
		return 0, sqlite.Translate(err)
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Expense, error) {
	var e model.Expense
	query := `
        SELECT id, category, amount, payment_method, fee, date, supplier, note
        FROM expenses WHERE id = ? LIMIT 1
    `
	err := r.DB.GetContext(ctx, &e, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, sqlite.Translate(err)
	}
	return &e, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ExpenseFilters) ([]model.Expense, error) {
	limit := dto.DefaultLimit
	if f != nil && f.Limit > 0 {
		limit = f.Limit
	}

	expenses := []model.Expense{}
	query := `
        SELECT id, category, amount, payment_method, fee, date, supplier, note
        FROM expenses
        ORDER BY date DESC, id DESC
        LIMIT ?
    `
	if err := r.DB.SelectContext(ctx, &expenses, query, limit); err != nil {
		return nil, sqlite.Translate(err)
	}
	return expenses, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, patch *dto.ExpensePatch) (bool, error) {
	query, args, err := squirrel.Update("expenses").
		SetMap(patchColumns(patch)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building update: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, sqlite.Translate(err)
	}
	return affected(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, sqlite.Translate(err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting affected rows: %w", err)
	}
	return rows > 0, nil
}

func patchColumns(p *dto.ExpensePatch) map[string]interface{} {
	m := map[string]interface{}{}
	if p.Category != nil {
		m["category"] = *p.Category
	}
	if p.Amount != nil {
		m["amount"] = *p.Amount
	}
	if p.PaymentMethod != nil {
		m["payment_method"] = *p.PaymentMethod
	}
	if p.Fee != nil {
		m["fee"] = *p.Fee
	}
	if p.Date != nil {
		m["date"] = *p.Date
	}
	if p.Supplier != nil {
		m["supplier"] = *p.Supplier
	}
	if p.Note != nil {
		m["note"] = *p.Note
	}
	return m
}
