// Package viewmodel keeps the in-memory picture a presentation layer renders
// and re-derives it from the database after every mutation.
package viewmodel

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-tracker/internal/dashboard"
	"github.com/fekuna/omnipos-tracker/internal/expense"
	expDto "github.com/fekuna/omnipos-tracker/internal/expense/dto"
	"github.com/fekuna/omnipos-tracker/internal/inventory"
	invDto "github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/product"
	prodDto "github.com/fekuna/omnipos-tracker/internal/product/dto"
	"github.com/fekuna/omnipos-tracker/internal/sale"
	saleDto "github.com/fekuna/omnipos-tracker/internal/sale/dto"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Deps struct {
	Products  product.UseCase
	Inventory inventory.UseCase
	Sales     sale.UseCase
	Expenses  expense.UseCase
	Dashboard dashboard.UseCase
	Clock     ledger.Clock
}

// Snapshot is a copy of the store state. Slices are owned by the caller.
type Snapshot struct {
	Products  []model.ProductWithInventory
	Sales     []model.SaleWithProduct
	Expenses  []model.Expense
	Summary7d *model.Summary
	Loading   bool
}

type Store struct {
	deps   Deps
	logger logger.ZapLogger

	mu    sync.RWMutex
	state Snapshot
}

func New(deps Deps, log logger.ZapLogger) *Store {
	return &Store{deps: deps, logger: log}
}

// Refresh reloads products, sales and expenses concurrently, then the
// seven-day summary.
func (s *Store) Refresh(ctx context.Context) error {
	s.setLoading(true)

	var (
		products []model.ProductWithInventory
		sales    []model.SaleWithProduct
		expenses []model.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.deps.Products.ListProducts(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.deps.Sales.ListSales(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.deps.Expenses.ListExpenses(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		s.setLoading(false)
		s.logger.Error("refresh failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.state.Products = products
	s.state.Sales = sales
	s.state.Expenses = expenses
	s.state.Loading = false
	s.mu.Unlock()

	return s.RefreshSummary(ctx)
}

func (s *Store) RefreshSummary(ctx context.Context) error {
	summary, err := s.deps.Dashboard.GetSummarySince(ctx, s.deps.Clock.Since(dashboard.SummaryWindowDays))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Summary7d = summary
	s.mu.Unlock()
	return nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Snapshot{
		Products: append([]model.ProductWithInventory(nil), s.state.Products...),
		Sales:    append([]model.SaleWithProduct(nil), s.state.Sales...),
		Expenses: append([]model.Expense(nil), s.state.Expenses...),
		Loading:  s.state.Loading,
	}
	if s.state.Summary7d != nil {
		sum := *s.state.Summary7d
		out.Summary7d = &sum
	}
	return out
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.state.Loading = v
	s.mu.Unlock()
}

// after refreshes when the mutation succeeded and passes its error through.
func (s *Store) after(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Store) AddSale(ctx context.Context, input *saleDto.AddSaleInput) (*model.Sale, error) {
	out, err := s.deps.Sales.AddSale(ctx, input)
	return out, s.after(ctx, err)
}

func (s *Store) AddExpense(ctx context.Context, input *expDto.AddExpenseInput) (*model.Expense, error) {
	out, err := s.deps.Expenses.AddExpense(ctx, input)
	return out, s.after(ctx, err)
}

func (s *Store) SaveProduct(ctx context.Context, input *prodDto.UpsertProductInput) (*model.ProductWithInventory, error) {
	out, err := s.deps.Products.UpsertProduct(ctx, input)
	return out, s.after(ctx, err)
}

func (s *Store) AdjustStock(ctx context.Context, productID, delta int64) (*model.Inventory, error) {
	out, err := s.deps.Inventory.AdjustInventory(ctx, &invDto.AdjustInventoryInput{ProductID: productID, Delta: delta})
	return out, s.after(ctx, err)
}

func (s *Store) RemoveSale(ctx context.Context, id int64) error {
	_, err := s.deps.Sales.DeleteSale(ctx, id)
	return s.after(ctx, err)
}

func (s *Store) RemoveExpense(ctx context.Context, id int64) error {
	_, err := s.deps.Expenses.DeleteExpense(ctx, id)
	return s.after(ctx, err)
}

func (s *Store) ReturnSale(ctx context.Context, id int64) (*model.Sale, error) {
	out, err := s.deps.Sales.ReturnSale(ctx, id)
	return out, s.after(ctx, err)
}

func (s *Store) EditSale(ctx context.Context, id int64, patch *saleDto.SalePatch) (*model.Sale, error) {
	out, err := s.deps.Sales.UpdateSale(ctx, id, patch)
	return out, s.after(ctx, err)
}

func (s *Store) EditExpense(ctx context.Context, id int64, patch *expDto.ExpensePatch) (*model.Expense, error) {
	out, err := s.deps.Expenses.UpdateExpense(ctx, id, patch)
	return out, s.after(ctx, err)
}
