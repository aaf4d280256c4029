package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-tracker/internal/database/dbtest"
	"github.com/fekuna/omnipos-tracker/internal/inventory"
	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/sale"
	"github.com/fekuna/omnipos-tracker/internal/sale/dto"
	"github.com/fekuna/omnipos-tracker/internal/sale/repository"
	"github.com/fekuna/omnipos-tracker/internal/sale/usecase"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 10, 30, 0, 0, time.FixedZone("PHT", 8*60*60))

type fixture struct {
	uc    sale.UseCase
	db    *sqlx.DB
	black int64
}

func setup(t *testing.T, allowNegative bool) fixture {
	t.Helper()
	db := dbtest.OpenSeeded(t)
	uc := usecase.NewSaleUseCase(repository.NewSQLiteRepository(db), usecase.Options{
		Policy: inventory.Policy{AllowNegative: allowNegative},
		Clock:  ledger.FixedClock(now),
	}, logger.NewNop())
	return fixture{uc: uc, db: db, black: dbtest.ProductID(t, db, "Oversized Tee - Black")}
}

func ptr[T any](v T) *T { return &v }

func (f fixture) add(t *testing.T, qty int64) *model.Sale {
	t.Helper()
	s, err := f.uc.AddSale(context.Background(), &dto.AddSaleInput{
		ProductID: f.black, Qty: qty, SalePrice: 280,
		Channel: ptr("Shopee"), PaymentMethod: ptr("GCash"), Fee: 12.5,
		Note: ptr("bazaar"),
	})
	require.NoError(t, err)
	return s
}

func TestAddSaleDecrementsStock(t *testing.T) {
	f := setup(t, true)

	s := f.add(t, 2)
	require.NotZero(t, s.ID)
	require.Equal(t, ledger.Format(now), s.Date)
	require.Equal(t, int64(8), dbtest.Stock(t, f.db, f.black))

	f.add(t, -2)
	require.Equal(t, int64(10), dbtest.Stock(t, f.db, f.black))
}

func TestAddSaleKeepsCallerDate(t *testing.T) {
	f := setup(t, true)
	s, err := f.uc.AddSale(context.Background(), &dto.AddSaleInput{
		ProductID: f.black, Qty: 1, SalePrice: 280, Date: "2026-01-02T08:00:00.000Z",
	})
	require.NoError(t, err)
	require.Equal(t, "2026-01-02T08:00:00.000Z", s.Date)
}

func TestAddSaleOversellAllowed(t *testing.T) {
	f := setup(t, true)
	f.add(t, 12)
	require.Equal(t, int64(-2), dbtest.Stock(t, f.db, f.black))
}

func TestAddSaleOversellRejectedByStrictPolicy(t *testing.T) {
	f := setup(t, false)
	_, err := f.uc.AddSale(context.Background(), &dto.AddSaleInput{ProductID: f.black, Qty: 11, SalePrice: 280})
	require.ErrorIs(t, err, inventory.ErrNegativeStock)
	require.Equal(t, int64(10), dbtest.Stock(t, f.db, f.black))

	var count int
	require.NoError(t, f.db.Get(&count, `SELECT COUNT(*) FROM sales`))
	require.Zero(t, count)
}

func TestAddSaleUnknownProduct(t *testing.T) {
	f := setup(t, true)
	_, err := f.uc.AddSale(context.Background(), &dto.AddSaleInput{ProductID: 999, Qty: 1, SalePrice: 100})
	require.ErrorIs(t, err, sqlite.ErrConstraint)
}

func TestAddSaleValidation(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()

	_, err := f.uc.AddSale(ctx, &dto.AddSaleInput{ProductID: f.black, Qty: 0, SalePrice: 100})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.uc.AddSale(ctx, &dto.AddSaleInput{ProductID: f.black, Qty: 1, SalePrice: -1})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.uc.AddSale(ctx, &dto.AddSaleInput{ProductID: f.black, Qty: 1, Date: "yesterday"})
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestAddThenDeleteRestoresStock(t *testing.T) {
	f := setup(t, true)
	s := f.add(t, 3)

	deleted, err := f.uc.DeleteSale(context.Background(), s.ID)
	require.NoError(t, err)
	require.Equal(t, s.ID, deleted.ID)
	require.Equal(t, int64(10), dbtest.Stock(t, f.db, f.black))

	deleted, err = f.uc.DeleteSale(context.Background(), s.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
	require.Equal(t, int64(10), dbtest.Stock(t, f.db, f.black))
}

func TestReturnSale(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()
	s := f.add(t, 4)

	ret, err := f.uc.ReturnSale(ctx, s.ID)
	require.NoError(t, err)
	require.NotEqual(t, s.ID, ret.ID)
	require.Equal(t, int64(-4), ret.Qty)
	require.Equal(t, 280.0, ret.SalePrice)
	require.Equal(t, "Shopee", *ret.Channel)
	require.Equal(t, "GCash", *ret.PaymentMethod)
	require.Zero(t, ret.Fee)
	require.Equal(t, "bazaar • RETURN", *ret.Note)
	require.Equal(t, int64(10), dbtest.Stock(t, f.db, f.black))

	sales, err := f.uc.ListSales(ctx, nil)
	require.NoError(t, err)
	require.Len(t, sales, 2)
}

func TestReturnSaleWithoutNote(t *testing.T) {
	f := setup(t, true)
	s, err := f.uc.AddSale(context.Background(), &dto.AddSaleInput{ProductID: f.black, Qty: 1, SalePrice: 280})
	require.NoError(t, err)

	ret, err := f.uc.ReturnSale(context.Background(), s.ID)
	require.NoError(t, err)
	require.Equal(t, "RETURN", *ret.Note)
}

func TestReturnSaleMissingIsNoop(t *testing.T) {
	f := setup(t, true)
	ret, err := f.uc.ReturnSale(context.Background(), 77)
	require.NoError(t, err)
	require.Nil(t, ret)
}

func TestUpdateSaleQtyMovesStockByDifference(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()
	s := f.add(t, 2) // stock 8

	updated, err := f.uc.UpdateSale(ctx, s.ID, &dto.SalePatch{Qty: ptr(int64(5))})
	require.NoError(t, err)
	require.Equal(t, int64(5), updated.Qty)
	require.Equal(t, int64(5), dbtest.Stock(t, f.db, f.black))

	updated, err = f.uc.UpdateSale(ctx, s.ID, &dto.SalePatch{Qty: ptr(int64(1)), Note: ptr("fixed")})
	require.NoError(t, err)
	require.Equal(t, int64(9), dbtest.Stock(t, f.db, f.black))
	require.Equal(t, "fixed", *updated.Note)
	require.Equal(t, 280.0, updated.SalePrice)
}

func TestUpdateSaleQtyAcrossZero(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()
	s := f.add(t, 3) // stock 7

	updated, err := f.uc.UpdateSale(ctx, s.ID, &dto.SalePatch{Qty: ptr(int64(-2))})
	require.NoError(t, err)
	require.Equal(t, int64(-2), updated.Qty)
	require.Equal(t, int64(12), dbtest.Stock(t, f.db, f.black))

	_, err = f.uc.UpdateSale(ctx, s.ID, &dto.SalePatch{Qty: ptr(int64(4))})
	require.NoError(t, err)
	require.Equal(t, int64(6), dbtest.Stock(t, f.db, f.black))
}

func TestDeleteReturnTakesStockBackOut(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()
	s := f.add(t, 2) // stock 8

	ret, err := f.uc.ReturnSale(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, int64(10), dbtest.Stock(t, f.db, f.black))

	deleted, err := f.uc.DeleteSale(ctx, ret.ID)
	require.NoError(t, err)
	require.Equal(t, int64(-2), deleted.Qty)
	require.Equal(t, int64(8), dbtest.Stock(t, f.db, f.black))
}

func TestUpdateSaleFieldsOnlyLeavesStock(t *testing.T) {
	f := setup(t, true)
	s := f.add(t, 2)

	updated, err := f.uc.UpdateSale(context.Background(), s.ID, &dto.SalePatch{SalePrice: ptr(250.0), Fee: ptr(0.0)})
	require.NoError(t, err)
	require.Equal(t, 250.0, updated.SalePrice)
	require.Zero(t, updated.Fee)
	require.Equal(t, int64(2), updated.Qty)
	require.Equal(t, int64(8), dbtest.Stock(t, f.db, f.black))
}

func TestUpdateSaleEmptyPatchAndMissing(t *testing.T) {
	f := setup(t, true)
	s := f.add(t, 2)

	same, err := f.uc.UpdateSale(context.Background(), s.ID, &dto.SalePatch{})
	require.NoError(t, err)
	require.Equal(t, s.ID, same.ID)

	missing, err := f.uc.UpdateSale(context.Background(), 999, &dto.SalePatch{Qty: ptr(int64(1))})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUpdateSaleStrictPolicy(t *testing.T) {
	f := setup(t, false)
	s, err := f.uc.AddSale(context.Background(), &dto.AddSaleInput{ProductID: f.black, Qty: 2, SalePrice: 280})
	require.NoError(t, err)

	_, err = f.uc.UpdateSale(context.Background(), s.ID, &dto.SalePatch{Qty: ptr(int64(11))})
	require.ErrorIs(t, err, inventory.ErrNegativeStock)
	require.Equal(t, int64(8), dbtest.Stock(t, f.db, f.black))
}

func TestListSalesNewestFirst(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()
	for _, date := range []string{"2026-03-01T09:00:00.000+08:00", "2026-03-03T09:00:00.000+08:00", "2026-03-02T09:00:00.000+08:00"} {
		_, err := f.uc.AddSale(ctx, &dto.AddSaleInput{ProductID: f.black, Qty: 1, SalePrice: 280, Date: date})
		require.NoError(t, err)
	}

	sales, err := f.uc.ListSales(ctx, nil)
	require.NoError(t, err)
	require.Len(t, sales, 3)
	require.True(t, strings.HasPrefix(sales[0].Date, "2026-03-03"))
	require.True(t, strings.HasPrefix(sales[2].Date, "2026-03-01"))
	require.Equal(t, "Oversized Tee - Black", sales[0].Name)
	require.Equal(t, model.ProductTypeClothing, sales[0].Type)

	limited, err := f.uc.ListSales(ctx, &dto.SaleFilters{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestQuoteSale(t *testing.T) {
	f := setup(t, true)

	q, err := f.uc.QuoteSale(context.Background(), &dto.QuoteSaleInput{
		ProductID: f.black, Qty: 2, SalePrice: 280, Channel: "Shopee", PaymentMethod: "GCash",
	})
	require.NoError(t, err)
	require.True(t, q.Revenue.Equal(decimal.NewFromInt(560)))
	require.True(t, q.SuggestedFee.Equal(decimal.RequireFromString("75.6")))
	require.True(t, q.Total.Equal(decimal.RequireFromString("484.4")))
	// 560 - 75.6 - 180*2
	require.True(t, q.Margin.Equal(decimal.RequireFromString("124.4")), q.Margin.String())
	require.Empty(t, q.Warning)

	q, err = f.uc.QuoteSale(context.Background(), &dto.QuoteSaleInput{
		ProductID: f.black, Qty: 1, SalePrice: 280, Fee: ptr(10.0),
	})
	require.NoError(t, err)
	require.True(t, q.Margin.Equal(decimal.NewFromInt(90)))
	require.Empty(t, q.Warning)

	q, err = f.uc.QuoteSale(context.Background(), &dto.QuoteSaleInput{ProductID: f.black, Qty: 1, SalePrice: 100})
	require.NoError(t, err)
	require.True(t, q.Margin.Equal(decimal.NewFromInt(-80)))
	require.Equal(t, model.QuoteUnderCost, q.Warning)

	// 10 is under a tenth of the 180 cost
	q, err = f.uc.QuoteSale(context.Background(), &dto.QuoteSaleInput{ProductID: f.black, Qty: 1, SalePrice: 190})
	require.NoError(t, err)
	require.True(t, q.Margin.Equal(decimal.NewFromInt(10)))
	require.Equal(t, model.QuoteThinMargin, q.Warning)

	q, err = f.uc.QuoteSale(context.Background(), &dto.QuoteSaleInput{ProductID: 999, Qty: 1})
	require.NoError(t, err)
	require.Nil(t, q)
}
