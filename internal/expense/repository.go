package expense

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/expense/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
)

type Repository interface {
	Create(ctx context.Context, e *model.Expense) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Expense, error)
	FindAll(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, error)
	// Update and Delete report whether a row matched id.
	Update(ctx context.Context, id int64, patch *dto.ExpensePatch) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
