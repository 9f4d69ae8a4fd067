package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/models"
	"github.com/hanwool/folio/internal/repositories"
)

type priceService struct {
	provider PriceProvider
	repo     repositories.AssetRepository
	logger   *zap.Logger
}

// NewPriceService creates a price refresh service.
func NewPriceService(provider PriceProvider, repo repositories.AssetRepository, logger *zap.Logger) PriceService {
	return &priceService{provider: provider, repo: repo, logger: logger}
}

// RefreshAsset updates one asset's current price from the remote quote.
// Assets without a ticker have no live quote and are left untouched.
func (s *priceService) RefreshAsset(ctx context.Context, asset *models.Asset) error {
	if asset.Ticker == nil || *asset.Ticker == "" {
		return nil
	}
	price, err := s.provider.LatestPrice(ctx, *asset.Ticker)
	if err != nil {
		return fmt.Errorf("failed to refresh %s: %w", *asset.Ticker, err)
	}
	if err := s.repo.UpdatePrice(ctx, asset.ID, price, time.Now().UTC()); err != nil {
		return err
	}
	s.logger.Debug("asset price refreshed",
		zap.String("id", asset.ID),
		zap.String("ticker", *asset.Ticker),
		zap.String("price", price.String()))
	return nil
}

// RefreshAll refreshes every stored asset and returns the number updated.
// Per-asset failures are logged and skipped; the rest of the portfolio still
// refreshes.
func (s *priceService) RefreshAll(ctx context.Context) (int, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, asset := range assets {
		if asset.Ticker == nil || *asset.Ticker == "" {
			continue
		}
		if err := s.RefreshAsset(ctx, asset); err != nil {
			s.logger.Warn("price refresh failed", zap.String("id", asset.ID), zap.Error(err))
			continue
		}
		updated++
	}
	return updated, nil
}
