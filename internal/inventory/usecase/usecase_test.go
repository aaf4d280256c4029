package usecase_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-tracker/internal/database/dbtest"
	"github.com/fekuna/omnipos-tracker/internal/inventory"
	"github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/inventory/repository"
	"github.com/fekuna/omnipos-tracker/internal/inventory/usecase"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T, allowNegative bool) (inventory.UseCase, *sqlx.DB) {
	t.Helper()
	db := dbtest.OpenSeeded(t)
	uc := usecase.NewInventoryUseCase(
		repository.NewSQLiteRepository(db),
		inventory.Policy{AllowNegative: allowNegative},
		usecase.Thresholds{LowStock: 3, Restock: 5},
		logger.NewNop(),
	)
	return uc, db
}

func TestAdjustInventory(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t, true)
	id := dbtest.ProductID(t, db, "Oversized Tee - White")

	inv, err := uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: id, Delta: 5})
	require.NoError(t, err)
	require.Equal(t, int64(15), inv.QtyOnHand)

	inv, err = uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: id, Delta: -20})
	require.NoError(t, err)
	require.Equal(t, int64(-5), inv.QtyOnHand)
}

func TestAdjustInventoryCreatesMissingRow(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t, true)
	res := db.MustExec(`INSERT INTO products (name, type) VALUES ('Tote', 'clothing')`)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	inv, err := uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: id, Delta: 4})
	require.NoError(t, err)
	require.Equal(t, int64(4), inv.QtyOnHand)
}

func TestAdjustInventoryUnknownProductIsNoop(t *testing.T) {
	uc, _ := newUseCase(t, true)
	inv, err := uc.AdjustInventory(context.Background(), &dto.AdjustInventoryInput{ProductID: 999, Delta: 1})
	require.NoError(t, err)
	require.Nil(t, inv)
}

func TestAdjustInventoryStrictPolicy(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t, false)
	id := dbtest.ProductID(t, db, "Logo Cap - Navy")

	_, err := uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: id, Delta: -11})
	require.ErrorIs(t, err, inventory.ErrNegativeStock)
	require.Equal(t, int64(10), dbtest.Stock(t, db, id))

	inv, err := uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{ProductID: id, Delta: -10})
	require.NoError(t, err)
	require.Zero(t, inv.QtyOnHand)
}

func TestAdjustInventoryValidation(t *testing.T) {
	uc, _ := newUseCase(t, true)
	_, err := uc.AdjustInventory(context.Background(), &dto.AdjustInventoryInput{ProductID: 1, Delta: 0})
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestListLowStockThresholds(t *testing.T) {
	ctx := context.Background()
	uc, db := newUseCase(t, true)
	black := dbtest.ProductID(t, db, "Oversized Tee - Black")
	white := dbtest.ProductID(t, db, "Oversized Tee - White")
	require.NoError(t, repository.SetQuantity(ctx, db, black, 2))
	require.NoError(t, repository.SetQuantity(ctx, db, white, 5))

	low, err := uc.ListLowStock(ctx, nil)
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, black, low[0].ProductID)

	restock, err := uc.ListRestock(ctx)
	require.NoError(t, err)
	require.Len(t, restock, 2)

	all, err := uc.ListLowStock(ctx, &dto.InventoryFilters{Threshold: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestGetProductInventory(t *testing.T) {
	uc, db := newUseCase(t, true)
	id := dbtest.ProductID(t, db, "Logo Cap - Navy")

	inv, err := uc.GetProductInventory(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, int64(10), inv.QtyOnHand)

	inv, err = uc.GetProductInventory(context.Background(), 999)
	require.NoError(t, err)
	require.Nil(t, inv)
}
