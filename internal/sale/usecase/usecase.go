package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-tracker/internal/inventory"
	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/sale"
	"github.com/fekuna/omnipos-tracker/internal/sale/dto"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/fekuna/omnipos-tracker/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultReturnTag = "RETURN"

type Options struct {
	Policy    inventory.Policy
	Clock     ledger.Clock
	ReturnTag string
}

type saleUseCase struct {
	repo      sale.Repository
	policy    inventory.Policy
	clock     ledger.Clock
	returnTag string
	logger    logger.ZapLogger
}

func NewSaleUseCase(repo sale.Repository, opts Options, log logger.ZapLogger) sale.UseCase {
	if opts.ReturnTag == "" {
		opts.ReturnTag = DefaultReturnTag
	}
	return &saleUseCase{
		repo:      repo,
		policy:    opts.Policy,
		clock:     opts.Clock,
		returnTag: opts.ReturnTag,
		logger:    log,
	}
}

func (uc *saleUseCase) AddSale(ctx context.Context, input *dto.AddSaleInput) (*model.Sale, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	s := &model.Sale{
		ProductID:     input.ProductID,
		Qty:           input.Qty,
		SalePrice:     input.SalePrice,
		Channel:       input.Channel,
		PaymentMethod: input.PaymentMethod,
		Fee:           input.Fee,
		Date:          input.Date,
		Note:          input.Note,
	}
	if s.Date == "" {
		s.Date = uc.clock.Timestamp()
	}

	err := uc.repo.WithTx(ctx, func(ctx context.Context, tx sale.TxRepository) error {
		return uc.record(ctx, tx, s)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.Int64("sale_id", s.ID),
		zap.Int64("product_id", s.ProductID),
		zap.Int64("qty", s.Qty),
	)
	return s, nil
}

func (uc *saleUseCase) ReturnSale(ctx context.Context, id int64) (*model.Sale, error) {
	var ret *model.Sale
	err := uc.repo.WithTx(ctx, func(ctx context.Context, tx sale.TxRepository) error {
		orig, err := tx.FindByID(ctx, id)
		if err != nil || orig == nil {
			return err
		}

		note := uc.returnTag
		if orig.Note != nil && *orig.Note != "" {
			note = *orig.Note + " • " + uc.returnTag
		}
		ret = &model.Sale{
			ProductID:     orig.ProductID,
			Qty:           -orig.Qty,
			SalePrice:     orig.SalePrice,
			Channel:       orig.Channel,
			PaymentMethod: orig.PaymentMethod,
			Fee:           0,
			Date:          uc.clock.Timestamp(),
			Note:          &note,
		}
		return uc.record(ctx, tx, ret)
	})
	if err != nil {
		return nil, err
	}
	if ret == nil {
		uc.logger.Debug("return skipped, sale not found", zap.Int64("sale_id", id))
		return nil, nil
	}

	uc.logger.Info("sale returned",
		zap.Int64("sale_id", id),
		zap.Int64("return_id", ret.ID),
		zap.Int64("qty", ret.Qty),
	)
	return ret, nil
}

func (uc *saleUseCase) UpdateSale(ctx context.Context, id int64, patch *dto.SalePatch) (*model.Sale, error) {
	if patch == nil {
		patch = &dto.SalePatch{}
	}
	if err := validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	var updated *model.Sale
	var diff int64
	err := uc.repo.WithTx(ctx, func(ctx context.Context, tx sale.TxRepository) error {
		existing, err := tx.FindByID(ctx, id)
		if err != nil || existing == nil {
			return err
		}
		if patch.Empty() {
			updated = existing
			return nil
		}

		if patch.Qty != nil {
			diff = existing.Qty - *patch.Qty
			if err := uc.move(ctx, tx, existing.ProductID, diff); err != nil {
				return err
			}
		}
		if err := tx.Update(ctx, id, patch); err != nil {
			return err
		}

		updated, err = tx.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		uc.logger.Debug("update skipped, sale not found", zap.Int64("sale_id", id))
		return nil, nil
	}

	uc.logger.Info("sale updated", zap.Int64("sale_id", id), zap.Int64("stock_delta", diff))
	return updated, nil
}

func (uc *saleUseCase) DeleteSale(ctx context.Context, id int64) (*model.Sale, error) {
	var deleted *model.Sale
	err := uc.repo.WithTx(ctx, func(ctx context.Context, tx sale.TxRepository) error {
		existing, err := tx.FindByID(ctx, id)
		if err != nil || existing == nil {
			return err
		}
		if err := uc.move(ctx, tx, existing.ProductID, existing.Qty); err != nil {
			return err
		}
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		uc.logger.Debug("delete skipped, sale not found", zap.Int64("sale_id", id))
		return nil, nil
	}

	uc.logger.Info("sale deleted",
		zap.Int64("sale_id", id),
		zap.Int64("product_id", deleted.ProductID),
		zap.Int64("restored", deleted.Qty),
	)
	return deleted, nil
}

func (uc *saleUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.SaleWithProduct, error) {
	if filters == nil {
		filters = &dto.SaleFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *saleUseCase) QuoteSale(ctx context.Context, input *dto.QuoteSaleInput) (*model.SaleQuote, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	cost, err := uc.repo.FindUnitCost(ctx, input.ProductID)
	if err != nil || cost == nil {
		return nil, err
	}

	price := decimal.NewFromFloat(input.SalePrice)
	qty := decimal.NewFromInt(input.Qty)
	revenue := price.Mul(qty)

	fee := sale.SuggestedFee(price, input.Qty, input.Channel, input.PaymentMethod)
	if input.Fee != nil {
		fee = decimal.NewFromFloat(*input.Fee)
	}
	unitCost := decimal.NewFromFloat(*cost)
	lineCost := unitCost.Mul(qty)
	margin := revenue.Sub(fee).Sub(lineCost)

	return &model.SaleQuote{
		ProductID:    input.ProductID,
		Qty:          input.Qty,
		Revenue:      revenue,
		SuggestedFee: fee,
		Total:        revenue.Sub(fee),
		UnitCost:     unitCost,
		Margin:       margin,
		Warning:      sale.MarginWarning(margin, lineCost),
	}, nil
}

// record inserts s and takes its qty out of stock. The insert goes first so
// an unknown product fails on the foreign key.
func (uc *saleUseCase) record(ctx context.Context, tx sale.TxRepository, s *model.Sale) error {
	id, err := tx.Insert(ctx, s)
	if err != nil {
		return err
	}
	s.ID = id
	return uc.move(ctx, tx, s.ProductID, -s.Qty)
}

// move applies delta to stock under the negative-stock policy.
func (uc *saleUseCase) move(ctx context.Context, tx sale.TxRepository, productID, delta int64) error {
	if delta == 0 {
		return nil
	}
	if delta < 0 && !uc.policy.AllowNegative {
		current, err := tx.GetQuantity(ctx, productID)
		if err != nil {
			return err
		}
		if err := uc.policy.Check(productID, current, delta); err != nil {
			return err
		}
	}
	return tx.AdjustQuantity(ctx, productID, delta)
}
