package dashboard

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
)

const (
	DefaultTopN       = 5
	DefaultTrendDays  = 14
	SummaryWindowDays = 7
)

type UseCase interface {
	GetSummarySince(ctx context.Context, since string) (*model.Summary, error)
	BestSellers(ctx context.Context, since string, limit int) ([]model.BestSeller, error)
	ExpenseBreakdown(ctx context.Context, since string, limit int) ([]model.ExpenseCategoryTotal, error)
	Trend(ctx context.Context, days int, now time.Time) ([]model.TrendPoint, error)
	GetDashboard(ctx context.Context, now time.Time) (*model.Dashboard, error)
}

// MarginLister and StockLister are the product and inventory reads the
// dashboard shows next to its own aggregates.
type MarginLister interface {
	ListMarginWarnings(ctx context.Context) ([]model.MarginWarning, error)
}

type StockLister interface {
	ListLowStock(ctx context.Context, filters *dto.InventoryFilters) ([]model.StockLevel, error)
}
