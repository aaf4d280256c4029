package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/product"
	"github.com/fekuna/omnipos-tracker/internal/product/dto"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/fekuna/omnipos-tracker/pkg/validate"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductWithInventory, error) {
	if filters == nil {
		filters = &dto.ProductFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.ProductWithInventory, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) UpsertProduct(ctx context.Context, input *dto.UpsertProductInput) (*model.ProductWithInventory, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	p := &model.Product{
		ID:             input.ID,
		Name:           input.Name,
		Type:           model.ProductType(input.Type),
		Color:          input.Color,
		Size:           input.Size,
		UnitCost:       input.UnitCost,
		PriceSuggested: input.PriceSuggested,
		Active:         active,
	}

	var saved *model.ProductWithInventory
	err := uc.repo.WithTx(ctx, func(ctx context.Context, tx product.TxRepository) error {
		if p.ID != 0 {
			found, err := tx.Update(ctx, p)
			if err != nil || !found {
				return err
			}
			if input.QtyOnHand != nil {
				if err := tx.SetQuantity(ctx, p.ID, *input.QtyOnHand); err != nil {
					return err
				}
			}
		} else {
			id, err := tx.Create(ctx, p)
			if err != nil {
				return err
			}
			p.ID = id

			var qty int64
			if input.QtyOnHand != nil {
				qty = *input.QtyOnHand
			}
			if err := tx.SetQuantity(ctx, id, qty); err != nil {
				return err
			}
		}

		var err error
		saved, err = tx.FindByID(ctx, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if saved == nil {
		uc.logger.Debug("upsert skipped, product not found", zap.Int64("product_id", input.ID))
		return nil, nil
	}

	uc.logger.Info("product saved",
		zap.Int64("product_id", saved.ID),
		zap.String("name", saved.Name),
		zap.Int64("qty_on_hand", saved.QtyOnHand),
	)
	return saved, nil
}

func (uc *productUseCase) ListMarginWarnings(ctx context.Context) ([]model.MarginWarning, error) {
	return uc.repo.FindMarginWarnings(ctx)
}
