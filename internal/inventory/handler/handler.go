package handler

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/inventory"
	"github.com/fekuna/omnipos-tracker/internal/inventory/dto"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/transport"
	"github.com/fekuna/omnipos-tracker/pkg/grpcjson"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"google.golang.org/grpc"
)

const ServiceName = "omnipos.tracker.v1.InventoryService"

type GetProductInventoryRequest struct {
	ProductID int64 `json:"product_id"`
}

type AdjustInventoryRequest struct {
	ProductID int64 `json:"product_id"`
	Delta     int64 `json:"delta"`
}

type ListLowStockRequest struct {
	// Threshold <= 0 means the configured default.
	Threshold int64 `json:"threshold"`
}

type ListLowStockResponse struct {
	Items []model.StockLevel `json:"items"`
}

type InventoryServiceServer interface {
	GetProductInventory(context.Context, *GetProductInventoryRequest) (*model.Inventory, error)
	AdjustInventory(context.Context, *AdjustInventoryRequest) (*model.Inventory, error)
	ListLowStock(context.Context, *ListLowStockRequest) (*ListLowStockResponse, error)
	ListRestock(context.Context, *ListLowStockRequest) (*ListLowStockResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Method(ServiceName, "GetProductInventory", InventoryServiceServer.GetProductInventory),
		grpcjson.Method(ServiceName, "AdjustInventory", InventoryServiceServer.AdjustInventory),
		grpcjson.Method(ServiceName, "ListLowStock", InventoryServiceServer.ListLowStock),
		grpcjson.Method(ServiceName, "ListRestock", InventoryServiceServer.ListRestock),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/tracker/v1/inventory.proto",
}

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ServiceDesc, h)
}

func (h *InventoryHandler) GetProductInventory(ctx context.Context, req *GetProductInventoryRequest) (*model.Inventory, error) {
	inv, err := h.uc.GetProductInventory(ctx, req.ProductID)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to get inventory", err)
	}
	if inv == nil {
		return nil, transport.NotFound("inventory")
	}
	return inv, nil
}

func (h *InventoryHandler) AdjustInventory(ctx context.Context, req *AdjustInventoryRequest) (*model.Inventory, error) {
	inv, err := h.uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{
		ProductID: req.ProductID,
		Delta:     req.Delta,
	})
	if err != nil {
		return nil, transport.Error(h.logger, "failed to adjust inventory", err)
	}
	if inv == nil {
		return nil, transport.NotFound("product")
	}
	return inv, nil
}

func (h *InventoryHandler) ListLowStock(ctx context.Context, req *ListLowStockRequest) (*ListLowStockResponse, error) {
	items, err := h.uc.ListLowStock(ctx, &dto.InventoryFilters{Threshold: req.Threshold})
	if err != nil {
		return nil, transport.Error(h.logger, "failed to list low stock", err)
	}
	return &ListLowStockResponse{Items: items}, nil
}

func (h *InventoryHandler) ListRestock(ctx context.Context, _ *ListLowStockRequest) (*ListLowStockResponse, error) {
	items, err := h.uc.ListRestock(ctx)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to list restock", err)
	}
	return &ListLowStockResponse{Items: items}, nil
}
