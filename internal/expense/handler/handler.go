package handler

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/expense"
	"github.com/fekuna/omnipos-tracker/internal/expense/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/transport"
	"github.com/fekuna/omnipos-tracker/pkg/grpcjson"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "omnipos.tracker.v1.ExpenseService"

type ExpenseIDRequest struct {
	ID int64 `json:"id"`
}

type UpdateExpenseRequest struct {
	ID    int64            `json:"id"`
	Patch dto.ExpensePatch `json:"patch"`
}

type ListExpensesRequest struct {
	Limit int `json:"limit"`
}

type ListExpensesResponse struct {
	Expenses []model.Expense `json:"expenses"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type ExpenseServiceServer interface {
	AddExpense(context.Context, *dto.AddExpenseInput) (*model.Expense, error)
	UpdateExpense(context.Context, *UpdateExpenseRequest) (*model.Expense, error)
	DeleteExpense(context.Context, *ExpenseIDRequest) (*emptypb.Empty, error)
	ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error)
	ListCategories(context.Context, *emptypb.Empty) (*ListCategoriesResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ExpenseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Method(ServiceName, "AddExpense", ExpenseServiceServer.AddExpense),
		grpcjson.Method(ServiceName, "UpdateExpense", ExpenseServiceServer.UpdateExpense),
		grpcjson.Method(ServiceName, "DeleteExpense", ExpenseServiceServer.DeleteExpense),
		grpcjson.Method(ServiceName, "ListExpenses", ExpenseServiceServer.ListExpenses),
		grpcjson.Method(ServiceName, "ListCategories", ExpenseServiceServer.ListCategories),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/tracker/v1/expense.proto",
}

var _ ExpenseServiceServer = (*ExpenseHandler)(nil)

type ExpenseHandler struct {
	uc     expense.UseCase
	logger logger.ZapLogger
}

func NewExpenseHandler(uc expense.UseCase, log logger.ZapLogger) *ExpenseHandler {
	return &ExpenseHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ExpenseHandler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ServiceDesc, h)
}

func (h *ExpenseHandler) AddExpense(ctx context.Context, req *dto.AddExpenseInput) (*model.Expense, error) {
	e, err := h.uc.AddExpense(ctx, req)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to add expense", err)
	}
	return e, nil
}

func (h *ExpenseHandler) UpdateExpense(ctx context.Context, req *UpdateExpenseRequest) (*model.Expense, error) {
	e, err := h.uc.UpdateExpense(ctx, req.ID, &req.Patch)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to update expense", err)
	}
	if e == nil {
		return nil, transport.NotFound("expense")
	}
	return e, nil
}

func (h *ExpenseHandler) DeleteExpense(ctx context.Context, req *ExpenseIDRequest) (*emptypb.Empty, error) {
	found, err := h.uc.DeleteExpense(ctx, req.ID)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to delete expense", err)
	}
	if !found {
		return nil, transport.NotFound("expense")
	}
	return &emptypb.Empty{}, nil
}

func (h *ExpenseHandler) ListExpenses(ctx context.Context, req *ListExpensesRequest) (*ListExpensesResponse, error) {
	expenses, err := h.uc.ListExpenses(ctx, &dto.ExpenseFilters{Limit: req.Limit})
	if err != nil {
		return nil, transport.Error(h.logger, "failed to list expenses", err)
	}
	return &ListExpensesResponse{Expenses: expenses}, nil
}

func (h *ExpenseHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*ListCategoriesResponse, error) {
	return &ListCategoriesResponse{Categories: h.uc.ListCategories(ctx)}, nil
}
