package handler

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/sale"
	"github.com/fekuna/omnipos-tracker/internal/sale/dto"
	"github.com/fekuna/omnipos-tracker/internal/transport"
	"github.com/fekuna/omnipos-tracker/pkg/grpcjson"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"google.golang.org/grpc"
)

const ServiceName = "omnipos.tracker.v1.SaleService"

type SaleIDRequest struct {
	ID int64 `json:"id"`
}

type UpdateSaleRequest struct {
	ID    int64         `json:"id"`
	Patch dto.SalePatch `json:"patch"`
}

type ListSalesRequest struct {
	Limit int `json:"limit"`
}

type ListSalesResponse struct {
	Sales []model.SaleWithProduct `json:"sales"`
}

type SaleServiceServer interface {
	AddSale(context.Context, *dto.AddSaleInput) (*model.Sale, error)
	ReturnSale(context.Context, *SaleIDRequest) (*model.Sale, error)
	UpdateSale(context.Context, *UpdateSaleRequest) (*model.Sale, error)
	DeleteSale(context.Context, *SaleIDRequest) (*model.Sale, error)
	ListSales(context.Context, *ListSalesRequest) (*ListSalesResponse, error)
	QuoteSale(context.Context, *dto.QuoteSaleInput) (*model.SaleQuote, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SaleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Method(ServiceName, "AddSale", SaleServiceServer.AddSale),
		grpcjson.Method(ServiceName, "ReturnSale", SaleServiceServer.ReturnSale),
		grpcjson.Method(ServiceName, "UpdateSale", SaleServiceServer.UpdateSale),
		grpcjson.Method(ServiceName, "DeleteSale", SaleServiceServer.DeleteSale),
		grpcjson.Method(ServiceName, "ListSales", SaleServiceServer.ListSales),
		grpcjson.Method(ServiceName, "QuoteSale", SaleServiceServer.QuoteSale),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/tracker/v1/sale.proto",
}

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SaleHandler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ServiceDesc, h)
}

func (h *SaleHandler) AddSale(ctx context.Context, req *dto.AddSaleInput) (*model.Sale, error) {
	s, err := h.uc.AddSale(ctx, req)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to add sale", err)
	}
	return s, nil
}

func (h *SaleHandler) ReturnSale(ctx context.Context, req *SaleIDRequest) (*model.Sale, error) {
	s, err := h.uc.ReturnSale(ctx, req.ID)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to return sale", err)
	}
	if s == nil {
		return nil, transport.NotFound("sale")
	}
	return s, nil
}

func (h *SaleHandler) UpdateSale(ctx context.Context, req *UpdateSaleRequest) (*model.Sale, error) {
	s, err := h.uc.UpdateSale(ctx, req.ID, &req.Patch)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to update sale", err)
	}
	if s == nil {
		return nil, transport.NotFound("sale")
	}
	return s, nil
}

func (h *SaleHandler) DeleteSale(ctx context.Context, req *SaleIDRequest) (*model.Sale, error) {
	s, err := h.uc.DeleteSale(ctx, req.ID)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to delete sale", err)
	}
	if s == nil {
		return nil, transport.NotFound("sale")
	}
	return s, nil
}

func (h *SaleHandler) ListSales(ctx context.Context, req *ListSalesRequest) (*ListSalesResponse, error) {
	sales, err := h.uc.ListSales(ctx, &dto.SaleFilters{Limit: req.Limit})
	if err != nil {
		return nil, transport.Error(h.logger, "failed to list sales", err)
	}
	return &ListSalesResponse{Sales: sales}, nil
}

func (h *SaleHandler) QuoteSale(ctx context.Context, req *dto.QuoteSaleInput) (*model.SaleQuote, error) {
	q, err := h.uc.QuoteSale(ctx, req)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to quote sale", err)
	}
	if q == nil {
		return nil, transport.NotFound("product")
	}
	return q, nil
}
