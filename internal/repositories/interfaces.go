package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hanwool/folio/internal/models"
)

// AssetRepository defines the interface for asset persistence. It is the sole
// source of truth for holdings.
type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	List(ctx context.Context) ([]*models.Asset, error)
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id string) error
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal, at time.Time) error
}

// RateRepository defines the interface for the local exchange-rate cache.
type RateRepository interface {
	Save(ctx context.Context, snapshot *models.RateSnapshot) error
	Latest(ctx context.Context, from, to string) (*models.RateSnapshot, error)
}

// ReportRepository defines the interface for cached analyst reports.
type ReportRepository interface {
	Save(ctx context.Context, report *models.Report) error
	LatestByTicker(ctx context.Context, ticker string) (*models.Report, error)
}
