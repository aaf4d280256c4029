package expense

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/expense/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
)

type UseCase interface {
	AddExpense(ctx context.Context, input *dto.AddExpenseInput) (*model.Expense, error)
	UpdateExpense(ctx context.Context, id int64, patch *dto.ExpensePatch) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id int64) (bool, error)
	ListExpenses(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, error)
	ListCategories(ctx context.Context) []string
}
