package viewmodel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-tracker/config"
	"github.com/fekuna/omnipos-tracker/internal/app"
	"github.com/fekuna/omnipos-tracker/internal/database/dbtest"
	expDto "github.com/fekuna/omnipos-tracker/internal/expense/dto"
	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/product/dto"
	saleDto "github.com/fekuna/omnipos-tracker/internal/sale/dto"
	"github.com/fekuna/omnipos-tracker/internal/viewmodel"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *viewmodel.Store {
	t.Helper()
	db := dbtest.OpenSeeded(t)
	a := app.New(db, app.Options{
		Inventory: config.InventoryConfig{AllowNegative: true, LowStockThreshold: 3, RestockThreshold: 5},
		Clock:     ledger.FixedClock(now),
	}, logger.NewNop())
	return viewmodel.New(viewmodel.Deps{
		Products:  a.Products,
		Inventory: a.Inventory,
		Sales:     a.Sales,
		Expenses:  a.Expenses,
		Dashboard: a.Dashboard,
		Clock:     a.Clock,
	}, logger.NewNop())
}

func stockOf(snap viewmodel.Snapshot, name string) int64 {
	for _, p := range snap.Products {
		if p.Name == name {
			return p.QtyOnHand
		}
	}
	return -1
}

func TestRefreshLoadsEverything(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	require.False(t, snap.Loading)
	require.Len(t, snap.Products, 3)
	require.Empty(t, snap.Sales)
	require.NotNil(t, snap.Summary7d)
	require.True(t, snap.Summary7d.Profit.IsZero())
}

func TestMutationsRefreshState(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Refresh(ctx))
	tee := s.Snapshot().Products[1]

	sold, err := s.AddSale(ctx, &saleDto.AddSaleInput{ProductID: tee.ID, Qty: 2, SalePrice: 280})
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Sales, 1)
	require.Equal(t, int64(8), stockOf(snap, tee.Name))
	require.True(t, snap.Summary7d.SalesTotal.Equal(decimal.NewFromInt(560)))

	_, err = s.ReturnSale(ctx, sold.ID)
	require.NoError(t, err)
	snap = s.Snapshot()
	require.Len(t, snap.Sales, 2)
	require.Equal(t, int64(10), stockOf(snap, tee.Name))

	_, err = s.EditSale(ctx, sold.ID, &saleDto.SalePatch{Qty: ptr(int64(3))})
	require.NoError(t, err)
	require.Equal(t, int64(9), stockOf(s.Snapshot(), tee.Name))

	require.NoError(t, s.RemoveSale(ctx, sold.ID))
	require.Equal(t, int64(12), stockOf(s.Snapshot(), tee.Name))

	_, err = s.AdjustStock(ctx, tee.ID, -2)
	require.NoError(t, err)
	require.Equal(t, int64(10), stockOf(s.Snapshot(), tee.Name))

	e, err := s.AddExpense(ctx, &expDto.AddExpenseInput{Category: "Fabric", Amount: 500})
	require.NoError(t, err)
	require.Len(t, s.Snapshot().Expenses, 1)

	_, err = s.EditExpense(ctx, e.ID, &expDto.ExpensePatch{Amount: ptr(450.0)})
	require.NoError(t, err)
	require.Equal(t, 450.0, s.Snapshot().Expenses[0].Amount)

	require.NoError(t, s.RemoveExpense(ctx, e.ID))
	require.Empty(t, s.Snapshot().Expenses)

	_, err = s.SaveProduct(ctx, &dto.UpsertProductInput{Name: "Bucket Hat", Type: "cap", UnitCost: 120, PriceSuggested: 250})
	require.NoError(t, err)
	require.Len(t, s.Snapshot().Products, 4)
}

func TestFailedMutationSkipsRefresh(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.AddSale(ctx, &saleDto.AddSaleInput{ProductID: 1, Qty: 0})
	require.True(t, errors.Is(err, model.ErrInvalidInput))
	require.Empty(t, s.Snapshot().Products)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	snap.Products[0].Name = "changed"
	require.NotEqual(t, "changed", s.Snapshot().Products[0].Name)
}

func ptr[T any](v T) *T { return &v }
