package repository

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/dashboard"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) FindSalesSince(ctx context.Context, since string) ([]dashboard.SaleLine, error) {
	lines := []dashboard.SaleLine{}
	query := `
        SELECT s.product_id, p.name, s.qty, s.sale_price, s.fee, s.date
        FROM sales s
        LEFT JOIN products p ON p.id = s.product_id
        WHERE s.date >= ?
        ORDER BY s.date DESC, s.id DESC
    `
	if err := r.DB.SelectContext(ctx, &lines, query, since); err != nil {
		return nil, sqlite.Translate(err)
	}
	return lines, nil
}

func (r *SQLiteRepository) FindExpensesSince(ctx context.Context, since string) ([]dashboard.ExpenseLine, error) {
	lines := []dashboard.ExpenseLine{}
	query := `
        SELECT category, amount, fee, date
        FROM expenses
        WHERE date >= ?
        ORDER BY date DESC, id DESC
    `
	if err := r.DB.SelectContext(ctx, &lines, query, since); err != nil {
		return nil, sqlite.Translate(err)
	}
	return lines, nil
}
