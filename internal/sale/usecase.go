package sale

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/sale/dto"
)

type UseCase interface {
	AddSale(ctx context.Context, input *dto.AddSaleInput) (*model.Sale, error)
	ReturnSale(ctx context.Context, id int64) (*model.Sale, error)
	UpdateSale(ctx context.Context, id int64, patch *dto.SalePatch) (*model.Sale, error)
	DeleteSale(ctx context.Context, id int64) (*model.Sale, error)
	ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.SaleWithProduct, error)
	QuoteSale(ctx context.Context, input *dto.QuoteSaleInput) (*model.SaleQuote, error)
}
