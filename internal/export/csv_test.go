package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func fixtures() ([]model.Sale, []model.Expense) {
	sales := []model.Sale{
		{ID: 2, ProductID: 1, Qty: 2, SalePrice: 280, Channel: ptr("Shopee"), PaymentMethod: ptr("GCash"), Fee: 37.8, Date: "2026-03-13T09:00:00.000Z", Note: ptr("bazaar")},
		{ID: 1, ProductID: 3, Qty: 1, SalePrice: 180, Date: "2026-01-02T09:00:00.000Z"},
	}
	expenses := []model.Expense{
		{ID: 5, Category: "Fabric", Amount: 500, Date: "2026-03-10"},
		{ID: 4, Category: "Ads", Amount: 99.5, PaymentMethod: ptr("Card"), Fee: 2.5, Date: "2025-12-31T10:00:00.000Z"},
	}
	return sales, expenses
}

func TestWriteCSVAll(t *testing.T) {
	sales, expenses := fixtures()
	var buf bytes.Buffer

	n, err := WriteCSV(&buf, sales, expenses, Options{Kind: KindBoth, Range: RangeAll, Now: now})
	require.NoError(t, err)
	require.Equal(t, 4, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"type,id,product_id,qty,price,channel,payment_method,fee,date,note",
		"sale,2,1,2,280,Shopee,GCash,37.8,2026-03-13T09:00:00.000Z,bazaar",
		"sale,1,3,1,180,,,0,2026-01-02T09:00:00.000Z,",
		"expense,5,,,,,,0,2026-03-10,Fabric: 500",
		"expense,4,,,,,Card,2.5,2025-12-31T10:00:00.000Z,Ads: 99.5",
	}, lines)
}

func TestWriteCSVFilters(t *testing.T) {
	sales, expenses := fixtures()

	var buf bytes.Buffer
	n, err := WriteCSV(&buf, sales, expenses, Options{Kind: KindSales, Range: Range7d, Now: now})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Contains(t, buf.String(), "sale,2,")

	buf.Reset()
	n, err = WriteCSV(&buf, sales, expenses, Options{Kind: KindExpenses, Range: Range30d, Now: now})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Contains(t, buf.String(), "Fabric: 500")
	require.NotContains(t, buf.String(), "sale,")
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteCSV(&buf, []model.Sale{{ID: 1, ProductID: 1, Qty: 1, Date: "2026-03-14", Note: ptr("gift, wrapped")}}, nil,
		Options{Kind: KindBoth, Range: RangeAll, Now: now})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"gift, wrapped"`)
}

func TestParseOptions(t *testing.T) {
	k, err := ParseKind("")
	require.NoError(t, err)
	require.Equal(t, KindBoth, k)

	_, err = ParseKind("refunds")
	require.Error(t, err)

	r, err := ParseRange("30d")
	require.NoError(t, err)
	require.Equal(t, Range30d, r)

	_, err = ParseRange("90d")
	require.Error(t, err)
}
