package product

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/product/dto"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*model.ProductWithInventory, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductWithInventory, error)
	FindMarginWarnings(ctx context.Context) ([]model.MarginWarning, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(ctx context.Context, tx TxRepository) error) error
}

// TxRepository writes a product and its stock in one transaction.
type TxRepository interface {
	Create(ctx context.Context, p *model.Product) (int64, error)
	// Update reports false when no product has p.ID.
	Update(ctx context.Context, p *model.Product) (bool, error)
	SetQuantity(ctx context.Context, productID, qty int64) error
	FindByID(ctx context.Context, id int64) (*model.ProductWithInventory, error)
}
