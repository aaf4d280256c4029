package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fekuna/omnipos-tracker/internal/dashboard"
	"github.com/fekuna/omnipos-tracker/internal/expense"
	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/shopspring/decimal"
)

type dashboardUseCase struct {
	repo    dashboard.Repository
	margins dashboard.MarginLister
	stock   dashboard.StockLister
	logger  logger.ZapLogger
}

func NewDashboardUseCase(repo dashboard.Repository, margins dashboard.MarginLister, stock dashboard.StockLister, log logger.ZapLogger) dashboard.UseCase {
	return &dashboardUseCase{
		repo:    repo,
		margins: margins,
		stock:   stock,
		logger:  log,
	}
}

func (uc *dashboardUseCase) GetSummarySince(ctx context.Context, since string) (*model.Summary, error) {
	sales, err := uc.repo.FindSalesSince(ctx, since)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.repo.FindExpensesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	sum := &model.Summary{Since: since}
	for _, s := range sales {
		sum.SalesTotal = sum.SalesTotal.Add(revenue(s))
		sum.SalesFee = sum.SalesFee.Add(decimal.NewFromFloat(s.Fee))
	}
	for _, e := range expenses {
		sum.ExpensesTotal = sum.ExpensesTotal.Add(decimal.NewFromFloat(e.Amount))
		sum.ExpensesFee = sum.ExpensesFee.Add(decimal.NewFromFloat(e.Fee))
	}
	sum.Profit = sum.SalesTotal.Sub(sum.ExpensesTotal).Sub(sum.SalesFee).Sub(sum.ExpensesFee)
	return sum, nil
}

func (uc *dashboardUseCase) BestSellers(ctx context.Context, since string, limit int) ([]model.BestSeller, error) {
	sales, err := uc.repo.FindSalesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	index := map[int64]int{}
	out := []model.BestSeller{}
	for _, s := range sales {
		i, ok := index[s.ProductID]
		if !ok {
			name := fmt.Sprintf("SKU %d", s.ProductID)
			if s.Name != nil {
				name = *s.Name
			}
			i = len(out)
			index[s.ProductID] = i
			out = append(out, model.BestSeller{ProductID: s.ProductID, Name: name})
		}
		out[i].Qty += s.Qty
		out[i].Revenue = out[i].Revenue.Add(revenue(s))
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Qty > out[b].Qty })
	return top(out, limit), nil
}

func (uc *dashboardUseCase) ExpenseBreakdown(ctx context.Context, since string, limit int) ([]model.ExpenseCategoryTotal, error) {
	expenses, err := uc.repo.FindExpensesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	out := []model.ExpenseCategoryTotal{}
	for _, e := range expenses {
		key := e.Category
		if key == "" {
			key = expense.OtherCategory
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, model.ExpenseCategoryTotal{Category: key})
		}
		out[i].Total = out[i].Total.Add(outflow(e))
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Total.GreaterThan(out[b].Total) })
	return top(out, limit), nil
}

func (uc *dashboardUseCase) Trend(ctx context.Context, days int, now time.Time) ([]model.TrendPoint, error) {
	if days <= 0 {
		days = dashboard.DefaultTrendDays
	}

	points := make([]model.TrendPoint, days)
	byDay := make(map[string]int, days)
	for i := range points {
		day := now.AddDate(0, 0, i-days+1).Format(ledger.DayLayout)
		points[i] = model.TrendPoint{Day: day, Label: day[5:]}
		byDay[day] = i
	}

	since := points[0].Day
	sales, err := uc.repo.FindSalesSince(ctx, since)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.repo.FindExpensesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	for _, s := range sales {
		if i, ok := byDay[ledger.Day(s.Date)]; ok {
			points[i].Sales = points[i].Sales.Add(revenue(s).Sub(decimal.NewFromFloat(s.Fee)))
			points[i].SaleCount++
		}
	}
	for _, e := range expenses {
		if i, ok := byDay[ledger.Day(e.Date)]; ok {
			points[i].Expenses = points[i].Expenses.Add(outflow(e))
			points[i].ExpenseCount++
		}
	}
	for i := range points {
		points[i].Profit = points[i].Sales.Sub(points[i].Expenses)
	}
	return points, nil
}

func (uc *dashboardUseCase) GetDashboard(ctx context.Context, now time.Time) (*model.Dashboard, error) {
	trend, err := uc.Trend(ctx, dashboard.DefaultTrendDays, now)
	if err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}
	summary, err := uc.GetSummarySince(ctx, ledger.Format(now.AddDate(0, 0, -dashboard.SummaryWindowDays)))
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	best, err := uc.BestSellers(ctx, "", dashboard.DefaultTopN)
	if err != nil {
		return nil, fmt.Errorf("best sellers: %w", err)
	}
	breakdown, err := uc.ExpenseBreakdown(ctx, "", dashboard.DefaultTopN)
	if err != nil {
		return nil, fmt.Errorf("expense breakdown: %w", err)
	}

	d := &model.Dashboard{
		Today:            trend[len(trend)-1],
		Summary7d:        *summary,
		Trend:            trend,
		BestSellers:      best,
		ExpenseBreakdown: breakdown,
		MarginWarnings:   []model.MarginWarning{},
		LowStock:         []model.StockLevel{},
	}
	if uc.margins != nil {
		if d.MarginWarnings, err = uc.margins.ListMarginWarnings(ctx); err != nil {
			return nil, fmt.Errorf("margin warnings: %w", err)
		}
	}
	if uc.stock != nil {
		if d.LowStock, err = uc.stock.ListLowStock(ctx, nil); err != nil {
			return nil, fmt.Errorf("low stock: %w", err)
		}
	}
	return d, nil
}

// revenue is sale_price·qty, negative for returns.
func revenue(s dashboard.SaleLine) decimal.Decimal {
	return decimal.NewFromFloat(s.SalePrice).Mul(decimal.NewFromInt(s.Qty))
}

func outflow(e dashboard.ExpenseLine) decimal.Decimal {
	return decimal.NewFromFloat(e.Amount).Add(decimal.NewFromFloat(e.Fee))
}

func top[T any](items []T, limit int) []T {
	if limit <= 0 {
		limit = dashboard.DefaultTopN
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
