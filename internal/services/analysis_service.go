package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/models"
	"github.com/hanwool/folio/internal/repositories"
	"github.com/hanwool/folio/internal/valuation"
)

// defaultHistoryDays is used when a caller does not bound the history window.
const defaultHistoryDays = 30

type analysisService struct {
	assets repositories.AssetRepository
	prices PriceProvider
	fx     FXService
	engine *valuation.Engine
	logger *zap.Logger
}

// NewAnalysisService creates the portfolio analysis service.
func NewAnalysisService(assets repositories.AssetRepository, prices PriceProvider, fx FXService, engine *valuation.Engine, logger *zap.Logger) AnalysisService {
	return &analysisService{assets: assets, prices: prices, fx: fx, engine: engine, logger: logger}
}

// Summary computes portfolio-level totals from stored holdings.
func (s *analysisService) Summary(ctx context.Context) (*models.PortfolioSummary, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Aggregate(assets, s.liveRate(ctx)), nil
}

// Analyze builds the per-asset analysis views. History fetches run
// concurrently and are joined before valuation; an asset whose fetch fails is
// analyzed with an empty history rather than aborting its siblings.
func (s *analysisService) Analyze(ctx context.Context, historyDays int) ([]*models.PortfolioAnalysis, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	rate := s.liveRate(ctx)
	histories := s.fetchHistories(ctx, assets, historyDays)

	analyses := make([]*models.PortfolioAnalysis, 0, len(assets))
	for _, asset := range assets {
		analyses = append(analyses, s.engine.Analyze(asset, histories[asset.ID], rate))
	}
	return analyses, nil
}

// ValueHistory folds per-asset histories into the portfolio value series.
// Assets whose history fetch fails contribute nothing (partial results are
// acceptable and expected).
func (s *analysisService) ValueHistory(ctx context.Context, historyDays int) ([]models.ValuePoint, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	rate := s.liveRate(ctx)
	histories := s.fetchHistories(ctx, assets, historyDays)
	return s.engine.ValueHistory(assets, histories, rate), nil
}

// fetchHistories fetches all assets' price histories concurrently and waits
// for every fetch to settle. Failures are logged and the asset omitted from
// the result map.
func (s *analysisService) fetchHistories(ctx context.Context, assets []*models.Asset, days int) map[string][]models.StockHistoryItem {
	if days <= 0 {
		days = defaultHistoryDays
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		histories = make(map[string][]models.StockHistoryItem)
	)
	for _, asset := range assets {
		if asset.Ticker == nil || *asset.Ticker == "" {
			continue
		}
		wg.Add(1)
		go func(a *models.Asset) {
			defer wg.Done()
			items, err := s.prices.DailyHistory(ctx, *a.Ticker, days)
			if err != nil {
				s.logger.Warn("history fetch failed, omitting asset from series",
					zap.String("id", a.ID),
					zap.String("ticker", *a.Ticker),
					zap.Error(err))
				return
			}
			mu.Lock()
			histories[a.ID] = items
			mu.Unlock()
		}(asset)
	}
	wg.Wait()
	return histories
}

// liveRate resolves the USD/KRW rate, degrading to nil (engine fallback) when
// no rate source answers.
func (s *analysisService) liveRate(ctx context.Context) *models.ExchangeRate {
	rate, err := s.fx.LatestRate(ctx)
	if err != nil {
		s.logger.Warn("exchange rate unavailable, valuation will use fallback", zap.Error(err))
		return nil
	}
	return rate
}
