package dashboard

import (
	"context"
)

// SaleLine is the slice of a sale row the aggregations read.
type SaleLine struct {
	ProductID int64   `db:"product_id"`
	Name      *string `db:"name"`
	Qty       int64   `db:"qty"`
	SalePrice float64 `db:"sale_price"`
	Fee       float64 `db:"fee"`
	Date      string  `db:"date"`
}

type ExpenseLine struct {
	Category string  `db:"category"`
	Amount   float64 `db:"amount"`
	Fee      float64 `db:"fee"`
	Date     string  `db:"date"`
}

// Repository is read only. Both finders return rows with date >= since,
// newest first; an empty since means everything.
type Repository interface {
	FindSalesSince(ctx context.Context, since string) ([]SaleLine, error)
	FindExpensesSince(ctx context.Context, since string) ([]ExpenseLine, error)
}
