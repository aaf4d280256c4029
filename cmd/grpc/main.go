package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fekuna/omnipos-tracker/config"
	"github.com/fekuna/omnipos-tracker/internal/app"
	"github.com/fekuna/omnipos-tracker/internal/database"
	"github.com/fekuna/omnipos-tracker/internal/reminder"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Open Database
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
	if cfg.Ledger.SeedDefaults {
		n, err := database.Seed(ctx, db)
		if err != nil {
			appLogger.Fatal("Could not seed products", zap.Error(err))
		}
		if n > 0 {
			appLogger.Info("Seeded starter products", zap.Int("count", n))
		}
	}
	appLogger.Info("Opened SQLite database", zap.String("path", cfg.SQLite.Path))

	// 4. Wire Application
	opts, err := app.OptionsFromConfig(cfg)
	if err != nil {
		appLogger.Fatal("Invalid ledger options", zap.Error(err))
	}
	a := app.New(db, opts, appLogger)

	// 5. Daily Reminder
	if cfg.Reminder.Enabled {
		remLogger := appLogger.With(zap.String("module", "reminder"))
		rem, err := reminder.New(cfg.Reminder.Spec, opts.Clock, a.Dashboard, reminder.LogNotifier{Logger: remLogger}, remLogger)
		if err != nil {
			appLogger.Fatal("Could not schedule reminder", zap.Error(err))
		}
		rem.Start()
		defer rem.Stop()
	}

	// 6. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := a.NewServer()

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
