package inventory

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
)

type Repository interface {
	GetByProduct(ctx context.Context, productID int64) (*model.Inventory, error)
	FindLowStock(ctx context.Context, filters *dto.InventoryFilters) ([]model.StockLevel, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(ctx context.Context, tx TxRepository) error) error
}

// TxRepository is the stock surface available inside one transaction.
type TxRepository interface {
	ProductExists(ctx context.Context, productID int64) (bool, error)
	GetQuantity(ctx context.Context, productID int64) (int64, error)
	AdjustQuantity(ctx context.Context, productID, delta int64) error
	GetByProduct(ctx context.Context, productID int64) (*model.Inventory, error)
}
