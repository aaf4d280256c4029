// Command export writes the sales and expense history to a CSV file.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/fekuna/omnipos-tracker/config"
	"github.com/fekuna/omnipos-tracker/internal/app"
	"github.com/fekuna/omnipos-tracker/internal/database"
	expDTO "github.com/fekuna/omnipos-tracker/internal/expense/dto"
	"github.com/fekuna/omnipos-tracker/internal/export"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/money"
	saleDTO "github.com/fekuna/omnipos-tracker/internal/sale/dto"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	kindFlag := flag.String("kind", string(export.KindBoth), "rows to export: both, sales or expenses")
	rangeFlag := flag.String("range", string(export.RangeAll), "date range: all, 7d or 30d")
	out := flag.String("out", export.DefaultFileName, "output file, - for stdout")
	limit := flag.Int("limit", 100000, "maximum rows read per table")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	kind, err := export.ParseKind(*kindFlag)
	if err != nil {
		appLogger.Fatal("bad -kind", zap.Error(err))
	}
	rng, err := export.ParseRange(*rangeFlag)
	if err != nil {
		appLogger.Fatal("bad -range", zap.Error(err))
	}

	ctx := context.Background()
	db, err := sqlite.NewSQLite(ctx, &sqlite.Config{
		Path:         cfg.SQLite.Path,
		MaxOpenConns: cfg.SQLite.MaxOpenConns,
		BusyTimeout:  cfg.SQLite.BusyTimeout,
	})
	if err != nil {
		appLogger.Fatal("Could not open database", zap.Error(err))
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		appLogger.Fatal("Could not migrate database", zap.Error(err))
	}

	opts, err := app.OptionsFromConfig(cfg)
	if err != nil {
		appLogger.Fatal("Invalid ledger options", zap.Error(err))
	}
	a := app.New(db, opts, appLogger)

	joined, err := a.Sales.ListSales(ctx, &saleDTO.SaleFilters{Limit: *limit})
	if err != nil {
		appLogger.Fatal("Could not list sales", zap.Error(err))
	}
	sales := make([]model.Sale, 0, len(joined))
	for _, s := range joined {
		sales = append(sales, s.Sale)
	}
	expenses, err := a.Expenses.ListExpenses(ctx, &expDTO.ExpenseFilters{Limit: *limit})
	if err != nil {
		appLogger.Fatal("Could not list expenses", zap.Error(err))
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			appLogger.Fatal("Could not create output", zap.String("path", *out), zap.Error(err))
		}
		defer f.Close()
		w = f
	}

	rows, err := export.WriteCSV(w, sales, expenses, export.Options{Kind: kind, Range: rng, Now: opts.Clock.Now()})
	if err != nil {
		appLogger.Fatal("Could not write CSV", zap.Error(err))
	}

	salesTotal := decimal.Zero
	for _, s := range sales {
		salesTotal = salesTotal.Add(decimal.NewFromFloat(s.SalePrice).Mul(decimal.NewFromInt(s.Qty)))
	}
	appLogger.Info("Exported",
		zap.String("path", *out),
		zap.Int("rows", rows),
		zap.String("gross_sales_read", money.Format(salesTotal)),
	)
}
