package sale

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/sale/dto"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*model.Sale, error)
	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.SaleWithProduct, error)
	// FindUnitCost returns nil when the product does not exist.
	FindUnitCost(ctx context.Context, productID int64) (*float64, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(ctx context.Context, tx TxRepository) error) error
}

// TxRepository pairs sale rows with the stock movements they cause.
type TxRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Sale, error)
	Insert(ctx context.Context, s *model.Sale) (int64, error)
	Update(ctx context.Context, id int64, patch *dto.SalePatch) error
	Delete(ctx context.Context, id int64) error

	GetQuantity(ctx context.Context, productID int64) (int64, error)
	AdjustQuantity(ctx context.Context, productID, delta int64) error
}
