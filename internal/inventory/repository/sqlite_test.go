package repository_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-tracker/internal/database/dbtest"
	"github.com/fekuna/omnipos-tracker/internal/inventory"
	"github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/inventory/repository"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/stretchr/testify/require"
)

func TestAdjustQuantityUpserts(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	res := db.MustExec(`INSERT INTO products (name, type) VALUES ('Bucket Hat', 'cap')`)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	// No inventory row yet: delta applies to a zero baseline.
	require.NoError(t, repository.AdjustQuantity(ctx, db, id, -2))
	require.Equal(t, int64(-2), dbtest.Stock(t, db, id))

	require.NoError(t, repository.AdjustQuantity(ctx, db, id, 5))
	require.Equal(t, int64(3), dbtest.Stock(t, db, id))

	require.NoError(t, repository.SetQuantity(ctx, db, id, 12))
	require.Equal(t, int64(12), dbtest.Stock(t, db, id))

	qty, err := repository.GetQuantity(ctx, db, id)
	require.NoError(t, err)
	require.Equal(t, int64(12), qty)
}

func TestAdjustQuantityUnknownProductViolatesForeignKey(t *testing.T) {
	db := dbtest.Open(t)
	err := repository.AdjustQuantity(context.Background(), db, 404, 1)
	require.ErrorIs(t, err, sqlite.ErrConstraint)
}

func TestGetByProductMissing(t *testing.T) {
	db := dbtest.Open(t)
	inv, err := repository.GetByProduct(context.Background(), db, 1)
	require.NoError(t, err)
	require.Nil(t, inv)
}

func TestFindLowStockOrdersByQty(t *testing.T) {
	ctx := context.Background()
	db := dbtest.OpenSeeded(t)
	repo := repository.NewSQLiteRepository(db)

	black := dbtest.ProductID(t, db, "Oversized Tee - Black")
	cap := dbtest.ProductID(t, db, "Logo Cap - Navy")
	require.NoError(t, repository.SetQuantity(ctx, db, black, 3))
	require.NoError(t, repository.SetQuantity(ctx, db, cap, 1))

	items, err := repo.FindLowStock(ctx, &dto.InventoryFilters{Threshold: 3})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Logo Cap - Navy", items[0].Name)
	require.Equal(t, int64(1), items[0].QtyOnHand)
	require.Equal(t, "Oversized Tee - Black", items[1].Name)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := dbtest.OpenSeeded(t)
	repo := repository.NewSQLiteRepository(db)
	id := dbtest.ProductID(t, db, "Logo Cap - Navy")

	err := repo.WithTx(ctx, func(ctx context.Context, tx inventory.TxRepository) error {
		if err := tx.AdjustQuantity(ctx, id, -4); err != nil {
			return err
		}
		return inventory.ErrNegativeStock
	})
	require.ErrorIs(t, err, inventory.ErrNegativeStock)
	require.Equal(t, int64(10), dbtest.Stock(t, db, id))
}
