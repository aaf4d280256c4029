package handler

import (
	"context"

	"github.com/fekuna/omnipos-tracker/internal/dashboard"
	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/transport"
	"github.com/fekuna/omnipos-tracker/pkg/grpcjson"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "omnipos.tracker.v1.DashboardService"

type SummaryRequest struct {
	// Since is compared as text against stored dates. Empty means the
	// last seven days.
	Since string `json:"since"`
}

type RankingRequest struct {
	Since string `json:"since"`
	Limit int    `json:"limit"`
}

type BestSellersResponse struct {
	Items []model.BestSeller `json:"items"`
}

type ExpenseBreakdownResponse struct {
	Items []model.ExpenseCategoryTotal `json:"items"`
}

type TrendRequest struct {
	Days int `json:"days"`
}

type TrendResponse struct {
	Points []model.TrendPoint `json:"points"`
}

type DashboardServiceServer interface {
	GetSummarySince(context.Context, *SummaryRequest) (*model.Summary, error)
	BestSellers(context.Context, *RankingRequest) (*BestSellersResponse, error)
	ExpenseBreakdown(context.Context, *RankingRequest) (*ExpenseBreakdownResponse, error)
	Trend(context.Context, *TrendRequest) (*TrendResponse, error)
	GetDashboard(context.Context, *emptypb.Empty) (*model.Dashboard, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Method(ServiceName, "GetSummarySince", DashboardServiceServer.GetSummarySince),
		grpcjson.Method(ServiceName, "BestSellers", DashboardServiceServer.BestSellers),
		grpcjson.Method(ServiceName, "ExpenseBreakdown", DashboardServiceServer.ExpenseBreakdown),
		grpcjson.Method(ServiceName, "Trend", DashboardServiceServer.Trend),
		grpcjson.Method(ServiceName, "GetDashboard", DashboardServiceServer.GetDashboard),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/tracker/v1/dashboard.proto",
}

type DashboardHandler struct {
	uc     dashboard.UseCase
	clock  ledger.Clock
	logger logger.ZapLogger
}

func NewDashboardHandler(uc dashboard.UseCase, clock ledger.Clock, log logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		clock:  clock,
		logger: log,
	}
}

func (h *DashboardHandler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ServiceDesc, h)
}

func (h *DashboardHandler) GetSummarySince(ctx context.Context, req *SummaryRequest) (*model.Summary, error) {
	since := req.Since
	if since == "" {
		since = h.clock.Since(dashboard.SummaryWindowDays)
	}
	sum, err := h.uc.GetSummarySince(ctx, since)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to get summary", err)
	}
	return sum, nil
}

func (h *DashboardHandler) BestSellers(ctx context.Context, req *RankingRequest) (*BestSellersResponse, error) {
	items, err := h.uc.BestSellers(ctx, req.Since, req.Limit)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to rank best sellers", err)
	}
	return &BestSellersResponse{Items: items}, nil
}

func (h *DashboardHandler) ExpenseBreakdown(ctx context.Context, req *RankingRequest) (*ExpenseBreakdownResponse, error) {
	items, err := h.uc.ExpenseBreakdown(ctx, req.Since, req.Limit)
	if err != nil {
		return nil, transport.Error(h.logger, "failed to break down expenses", err)
	}
	return &ExpenseBreakdownResponse{Items: items}, nil
}

func (h *DashboardHandler) Trend(ctx context.Context, req *TrendRequest) (*TrendResponse, error) {
	points, err := h.uc.Trend(ctx, req.Days, h.clock.Now())
	if err != nil {
		return nil, transport.Error(h.logger, "failed to build trend", err)
	}
	return &TrendResponse{Points: points}, nil
}

func (h *DashboardHandler) GetDashboard(ctx context.Context, _ *emptypb.Empty) (*model.Dashboard, error) {
	d, err := h.uc.GetDashboard(ctx, h.clock.Now())
	if err != nil {
		return nil, transport.Error(h.logger, "failed to build dashboard", err)
	}
	return d, nil
}
