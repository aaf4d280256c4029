package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-tracker/internal/expense"
	"github.com/fekuna/omnipos-tracker/internal/expense/dto"
	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/fekuna/omnipos-tracker/pkg/validate"
	"go.uber.org/zap"
)

type expenseUseCase struct {
	repo   expense.Repository
	clock  ledger.Clock
	logger logger.ZapLogger
}

func NewExpenseUseCase(repo expense.Repository, clock ledger.Clock, log logger.ZapLogger) expense.UseCase {
	return &expenseUseCase{
		repo:   repo,
		clock:  clock,
		logger: log,
	}
}

func (uc *expenseUseCase) AddExpense(ctx context.Context, input *dto.AddExpenseInput) (*model.Expense, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	e := &model.Expense{
		Category:      input.Category,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Fee:           input.Fee,
		Date:          input.Date,
		Supplier:      input.Supplier,
		Note:          input.Note,
	}
	if e.Date == "" {
		e.Date = uc.clock.Timestamp()
	}

	id, err := uc.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id

	uc.logger.Info("expense recorded",
		zap.Int64("expense_id", e.ID),
		zap.String("category", e.Category),
		zap.Float64("amount", e.Amount),
	)
	return e, nil
}

func (uc *expenseUseCase) UpdateExpense(ctx context.Context, id int64, patch *dto.ExpensePatch) (*model.Expense, error) {
	if patch == nil {
		patch = &dto.ExpensePatch{}
	}
	if err := validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	if !patch.Empty() {
		found, err := uc.repo.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		if !found {
			uc.logger.Debug("update skipped, expense not found", zap.Int64("expense_id", id))
			return nil, nil
		}
		uc.logger.Info("expense updated", zap.Int64("expense_id", id))
	}

	return uc.repo.FindByID(ctx, id)
}

func (uc *expenseUseCase) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if found {
		uc.logger.Info("expense deleted", zap.Int64("expense_id", id))
	}
	return found, nil
}

func (uc *expenseUseCase) ListExpenses(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, error) {
	if filters == nil {
		filters = &dto.ExpenseFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *expenseUseCase) ListCategories(_ context.Context) []string {
	out := make([]string, len(expense.DefaultCategories))
	copy(out, expense.DefaultCategories)
	return out
}
