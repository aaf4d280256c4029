package product

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductWithInventory, error)
	GetProduct(ctx context.Context, id int64) (*model.ProductWithInventory, error)
	UpsertProduct(ctx context.Context, input *dto.UpsertProductInput) (*model.ProductWithInventory, error)
	ListMarginWarnings(ctx context.Context) ([]model.MarginWarning, error)
}
