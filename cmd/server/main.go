package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/config"
	"github.com/hanwool/folio/internal/db"
	"github.com/hanwool/folio/internal/handlers"
	"github.com/hanwool/folio/internal/logger"
	"github.com/hanwool/folio/internal/repositories"
	"github.com/hanwool/folio/internal/scheduler"
	"github.com/hanwool/folio/internal/services"
	"github.com/hanwool/folio/internal/valuation"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	cfg := config.Load()

	// Database connection
	database, err := db.Connect(db.NewConfig())
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		zapLogger.Fatal("failed to migrate schema", zap.Error(err))
	}
	if err := database.Health(); err != nil {
		zapLogger.Fatal("database health check failed", zap.Error(err))
	}
	zapLogger.Info("database connection established")

	// Repositories
	assetRepo := repositories.NewAssetRepository(database)
	rateRepo := repositories.NewRateRepository(database)
	reportRepo := repositories.NewReportRepository(database)

	// Remote providers
	rateProvider := services.NewHTTPRateProvider(cfg.FXAPIBase, cfg.FXAPIKey)
	priceProvider := services.NewHTTPPriceProvider(cfg.PriceAPIBase)
	reportProvider := services.NewHTTPReportProvider(cfg.ReportAPIBase)

	// Services
	engine := valuation.NewEngine(cfg.FallbackUSDKRW, zapLogger)
	assetService := services.NewAssetService(assetRepo, zapLogger)
	fxService := services.NewFXService(rateProvider, rateRepo, zapLogger)
	priceService := services.NewPriceService(priceProvider, assetRepo, zapLogger)
	analysisService := services.NewAnalysisService(assetRepo, priceProvider, fxService, engine, zapLogger)
	reportService := services.NewReportService(reportProvider, reportRepo, zapLogger)

	// Handlers
	router := handlers.NewRouter(
		handlers.NewAssetHandler(assetService),
		handlers.NewPortfolioHandler(analysisService),
		handlers.NewFXHandler(fxService),
		handlers.NewReportHandler(reportService),
	)

	// Background price refresh
	if cfg.RefreshSchedule != "" {
		sched := scheduler.New(zapLogger)
		if err := sched.AddJob(scheduler.NewPriceRefreshJob(priceService, cfg.RefreshSchedule, zapLogger)); err != nil {
			zapLogger.Fatal("failed to schedule price refresh", zap.Error(err))
		}
		sched.Start()
		defer sched.Stop()
	}

	zapLogger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := http.ListenAndServe(":"+cfg.ServerPort, router); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}
