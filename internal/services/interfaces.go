package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hanwool/folio/internal/models"
)

// AssetService defines the interface for holding operations.
type AssetService interface {
	CreateAsset(ctx context.Context, asset *models.Asset) error
	GetAsset(ctx context.Context, id string) (*models.Asset, error)
	ListAssets(ctx context.Context) ([]*models.Asset, error)
	UpdateAsset(ctx context.Context, asset *models.Asset) error
	DeleteAsset(ctx context.Context, id string) error
	LoadSamples(ctx context.Context) ([]*models.Asset, error)
}

// FXService resolves the USD/KRW exchange rate: local cache first, then the
// remote provider. Callers treat a fetch failure as "no live rate".
type FXService interface {
	LatestRate(ctx context.Context) (*models.ExchangeRate, error)
}

// RateProvider fetches a live USD/KRW rate from a remote source.
type RateProvider interface {
	USDKRW(ctx context.Context) (decimal.Decimal, error)
}

// PriceProvider fetches quotes and daily history for a ticker from the remote
// price service. History is ascending by date.
type PriceProvider interface {
	LatestPrice(ctx context.Context, ticker string) (decimal.Decimal, error)
	DailyHistory(ctx context.Context, ticker string, days int) ([]models.StockHistoryItem, error)
}

// PriceService refreshes stored assets with live market prices.
type PriceService interface {
	RefreshAsset(ctx context.Context, asset *models.Asset) error
	RefreshAll(ctx context.Context) (int, error)
}

// AnalysisService produces the derived portfolio views: totals, per-asset
// analyses with price history, and the historical value series.
type AnalysisService interface {
	Summary(ctx context.Context) (*models.PortfolioSummary, error)
	Analyze(ctx context.Context, historyDays int) ([]*models.PortfolioAnalysis, error)
	ValueHistory(ctx context.Context, historyDays int) ([]models.ValuePoint, error)
}

// ReportProvider fetches analyst reports from the remote report service.
type ReportProvider interface {
	FetchReport(ctx context.Context, ticker string) (*models.Report, error)
}

// ReportService serves analyst reports, preferring the local cache.
type ReportService interface {
	GetReport(ctx context.Context, ticker string) (*models.Report, error)
}
