package handler

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/product"
	"github.com/fekuna/omnipos-tracker/internal/product/dto"
	"github.com/fekuna/omnipos-tracker/internal/transport"
	"github.com/fekuna/omnipos-tracker/pkg/grpcjson"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "omnipos.tracker.v1.ProductService"

type ListProductsRequest struct {
	IncludeInactive bool `json:"include_inactive"`
}

type ListProductsResponse struct {
	Products []model.ProductWithInventory `json:"products"`
}

type GetProductRequest struct {
	ID int64 `json:"id"`
}

type ListMarginWarningsResponse struct {
	Warnings []model.MarginWarning `json:"warnings"`
}

type ProductServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*model.ProductWithInventory, error)
	UpsertProduct(context.Context, *dto.UpsertProductInput) (*model.ProductWithInventory, error)
	ListMarginWarnings(context.Context, *emptypb.Empty) (*ListMarginWarningsResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Method(ServiceName, "ListProducts", ProductServiceServer.ListProducts),
		grpcjson.Method(ServiceName, "GetProduct", ProductServiceServer.GetProduct),
		grpcjson.Method(ServiceName, "UpsertProduct", ProductServiceServer.UpsertProduct),
		grpcjson.Method(ServiceName, "ListMarginWarnings", ProductServiceServer.ListMarginWarnings),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/tracker/v1/product.proto",
}

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ServiceDesc, h)
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	products, err := h.uc.ListProducts(ctx, &dto.ProductFilters{IncludeInactive: req.IncludeInactive})
	if err != nil {
		return nil, transport.Error(h.logger, "failed to list products", err)
	}
	return &ListProductsResponse{Products: products}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *GetProductRequest) (*model.ProductWithInventory, error) {
	p, err := h.uc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to get product", err)
	}
	if p == nil {
		return nil, transport.NotFound("product")
	}
	return p, nil
}

func (h *ProductHandler) UpsertProduct(ctx context.Context, req *dto.UpsertProductInput) (*model.ProductWithInventory, error) {
	p, err := h.uc.UpsertProduct(ctx, req)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to save product", err)
	}
	if p == nil {
		return nil, transport.NotFound("product")
	}
	return p, nil
}

func (h *ProductHandler) ListMarginWarnings(ctx context.Context, _ *emptypb.Empty) (*ListMarginWarningsResponse, error) {
	warnings, err := h.uc.ListMarginWarnings(ctx)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to list margin warnings", err)
	}
	return &ListMarginWarningsResponse{Warnings: warnings}, nil
}
