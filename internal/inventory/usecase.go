package inventory

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
)

type UseCase interface {
	GetProductInventory(ctx context.Context, productID int64) (*model.Inventory, error)
	AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error)
	ListLowStock(ctx context.Context, filters *dto.InventoryFilters) ([]model.StockLevel, error)
	ListRestock(ctx context.Context) ([]model.StockLevel, error)
}
