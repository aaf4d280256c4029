// Package app wires repositories, use cases and handlers over one database.
package app

import (
	"github.com/fekuna/omnipos-tracker/config"
	"github.com/fekuna/omnipos-tracker/internal/dashboard"
	dashH "github.com/fekuna/omnipos-tracker/internal/dashboard/handler"
	dashRepoPkg "github.com/fekuna/omnipos-tracker/internal/dashboard/repository"
	dashUCPkg "github.com/fekuna/omnipos-tracker/internal/dashboard/usecase"
	"github.com/fekuna/omnipos-tracker/internal/expense"
	expH "github.com/fekuna/omnipos-tracker/internal/expense/handler"
	expRepoPkg "github.com/fekuna/omnipos-tracker/internal/expense/repository"
	expUCPkg "github.com/fekuna/omnipos-tracker/internal/expense/usecase"
	"github.com/fekuna/omnipos-tracker/internal/inventory"
	invH "github.com/fekuna/omnipos-tracker/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-tracker/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-tracker/internal/inventory/usecase"
	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/product"
	prodH "github.com/fekuna/omnipos-tracker/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-tracker/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-tracker/internal/product/usecase"
	"github.com/fekuna/omnipos-tracker/internal/sale"
	saleH "github.com/fekuna/omnipos-tracker/internal/sale/handler"
	saleRepoPkg "github.com/fekuna/omnipos-tracker/internal/sale/repository"
	saleUCPkg "github.com/fekuna/omnipos-tracker/internal/sale/usecase"
	"github.com/fekuna/omnipos-tracker/internal/transport"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Options carries the policy knobs from config.
type Options struct {
	Inventory config.InventoryConfig
	ReturnTag string
	Clock     ledger.Clock
}

// OptionsFromConfig resolves the ledger timezone into a clock.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Inventory: cfg.Inventory,
		ReturnTag: cfg.Ledger.ReturnTag,
		Clock:     ledger.NewClock(loc),
	}, nil
}

type App struct {
	Clock     ledger.Clock
	Products  product.UseCase
	Inventory inventory.UseCase
	Sales     sale.UseCase
	Expenses  expense.UseCase
	Dashboard dashboard.UseCase

	log logger.ZapLogger
}

func New(db *sqlx.DB, opts Options, log logger.ZapLogger) *App {
	policy := inventory.Policy{AllowNegative: opts.Inventory.AllowNegative}

	prodUC := prodUCPkg.NewProductUseCase(prodRepoPkg.NewSQLiteRepository(db), module(log, "product"))
	invUC := invUCPkg.NewInventoryUseCase(invRepoPkg.NewSQLiteRepository(db), policy, invUCPkg.Thresholds{
		LowStock: opts.Inventory.LowStockThreshold,
		Restock:  opts.Inventory.RestockThreshold,
	}, module(log, "inventory"))
	saleUC := saleUCPkg.NewSaleUseCase(saleRepoPkg.NewSQLiteRepository(db), saleUCPkg.Options{
		Policy:    policy,
		Clock:     opts.Clock,
		ReturnTag: opts.ReturnTag,
	}, module(log, "sale"))
	expUC := expUCPkg.NewExpenseUseCase(expRepoPkg.NewSQLiteRepository(db), opts.Clock, module(log, "expense"))
	dashUC := dashUCPkg.NewDashboardUseCase(dashRepoPkg.NewSQLiteRepository(db), prodUC, invUC, module(log, "dashboard"))

	return &App{
		Clock:     opts.Clock,
		Products:  prodUC,
		Inventory: invUC,
		Sales:     saleUC,
		Expenses:  expUC,
		Dashboard: dashUC,
		log:       log,
	}
}

func module(log logger.ZapLogger, name string) logger.ZapLogger {
	return log.With(zap.String("module", name))
}

// Handlers returns one gRPC handler per service.
func (a *App) Handlers() []transport.Registrar {
	return []transport.Registrar{
		prodH.NewProductHandler(a.Products, a.log),
		invH.NewInventoryHandler(a.Inventory, a.log),
		saleH.NewSaleHandler(a.Sales, a.log),
		expH.NewExpenseHandler(a.Expenses, a.log),
		dashH.NewDashboardHandler(a.Dashboard, a.Clock, a.log),
	}
}

func (a *App) NewServer() *grpc.Server {
	return transport.NewServer(a.log, a.Handlers()...)
}
