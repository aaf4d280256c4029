package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-tracker/internal/inventory"
	"github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/fekuna/omnipos-tracker/pkg/validate"
	"go.uber.org/zap"
)

// Thresholds are the default cut-offs for the low-stock and restock views.
type Thresholds struct {
	LowStock int64
	Restock  int64
}

type inventoryUseCase struct {
	repo       inventory.Repository
	policy     inventory.Policy
	thresholds Thresholds
	logger     logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, policy inventory.Policy, thresholds Thresholds, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:       repo,
		policy:     policy,
		thresholds: thresholds,
		logger:     log,
	}
}

func (uc *inventoryUseCase) GetProductInventory(ctx context.Context, productID int64) (*model.Inventory, error) {
	return uc.repo.GetByProduct(ctx, productID)
}

func (uc *inventoryUseCase) AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	var inv *model.Inventory
	err := uc.repo.WithTx(ctx, func(ctx context.Context, tx inventory.TxRepository) error {
		exists, err := tx.ProductExists(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}

		current, err := tx.GetQuantity(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if err := uc.policy.Check(input.ProductID, current, input.Delta); err != nil {
			return err
		}
		if err := tx.AdjustQuantity(ctx, input.ProductID, input.Delta); err != nil {
			return err
		}

		inv, err = tx.GetByProduct(ctx, input.ProductID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if inv == nil {
		uc.logger.Debug("adjust skipped, product not found", zap.Int64("product_id", input.ProductID))
		return nil, nil
	}

	uc.logger.Info("inventory adjusted",
		zap.Int64("product_id", input.ProductID),
		zap.Int64("delta", input.Delta),
		zap.Int64("qty_on_hand", inv.QtyOnHand),
	)
	return inv, nil
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, filters *dto.InventoryFilters) ([]model.StockLevel, error) {
	f := dto.InventoryFilters{Threshold: uc.thresholds.LowStock}
	if filters != nil && filters.Threshold > 0 {
		f.Threshold = filters.Threshold
	}
	return uc.repo.FindLowStock(ctx, &f)
}

func (uc *inventoryUseCase) ListRestock(ctx context.Context) ([]model.StockLevel, error) {
	return uc.repo.FindLowStock(ctx, &dto.InventoryFilters{Threshold: uc.thresholds.Restock})
}
