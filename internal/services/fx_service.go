package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/models"
	"github.com/hanwool/folio/internal/repositories"
)

// rateMaxAge bounds how long a cached snapshot is served before the provider
// is asked again.
const rateMaxAge = time.Hour

const rateSourceName = "exchangerate-api"

type fxService struct {
	provider RateProvider
	repo     repositories.RateRepository
	logger   *zap.Logger
}

// NewFXService creates an FX service backed by a remote provider and the
// local rate cache.
func NewFXService(provider RateProvider, repo repositories.RateRepository, logger *zap.Logger) FXService {
	return &fxService{provider: provider, repo: repo, logger: logger}
}

// LatestRate returns the freshest known USD/KRW rate. A fresh cached snapshot
// short-circuits the provider; on provider failure a stale snapshot is still
// served so valuation keeps a best-effort live rate.
func (s *fxService) LatestRate(ctx context.Context) (*models.ExchangeRate, error) {
	cached, err := s.repo.Latest(ctx, string(models.CurrencyUSD), string(models.CurrencyKRW))
	if err != nil {
		s.logger.Warn("rate cache lookup failed", zap.Error(err))
	}
	if cached != nil && time.Since(cached.FetchedAt) < rateMaxAge {
		return cached.ToExchangeRate()
	}

	rate, err := s.provider.USDKRW(ctx)
	if err != nil {
		if cached != nil {
			s.logger.Warn("rate fetch failed, serving stale snapshot",
				zap.Error(err), zap.Time("fetched_at", cached.FetchedAt))
			return cached.ToExchangeRate()
		}
		return nil, err
	}

	now := time.Now().UTC()
	snapshot := &models.RateSnapshot{
		FromCurrency: string(models.CurrencyUSD),
		ToCurrency:   string(models.CurrencyKRW),
		Rate:         rate,
		Source:       rateSourceName,
		FetchedAt:    now,
	}
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Warn("failed to cache rate snapshot", zap.Error(err))
	}
	return models.NewExchangeRate(rate, now)
}
