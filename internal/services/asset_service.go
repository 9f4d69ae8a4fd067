package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/models"
	"github.com/hanwool/folio/internal/repositories"
)

type assetService struct {
	repo   repositories.AssetRepository
	logger *zap.Logger
}

// NewAssetService creates a new asset service.
func NewAssetService(repo repositories.AssetRepository, logger *zap.Logger) AssetService {
	return &assetService{repo: repo, logger: logger}
}

func (s *assetService) CreateAsset(ctx context.Context, asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	if asset.Details == nil {
		asset.Details = models.DetailMap{}
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		return err
	}
	s.logger.Info("asset created",
		zap.String("id", asset.ID),
		zap.String("name", asset.Name),
		zap.String("type", string(asset.Type)))
	return nil
}

func (s *assetService) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *assetService) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	return s.repo.List(ctx)
}

func (s *assetService) UpdateAsset(ctx context.Context, asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, asset)
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("asset deleted", zap.String("id", id))
	return nil
}

// LoadSamples inserts a demo holding set spanning both KRW and USD markets.
func (s *assetService) LoadSamples(ctx context.Context) ([]*models.Asset, error) {
	samples := sampleAssets()
	for _, asset := range samples {
		if err := s.CreateAsset(ctx, asset); err != nil {
			return nil, fmt.Errorf("failed to load sample %q: %w", asset.Name, err)
		}
	}
	s.logger.Info("sample assets loaded", zap.Int("count", len(samples)))
	return samples, nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleAssets() []*models.Asset {
	samsung := "005930"
	apple := "AAPL"
	tiger := "360750"
	return []*models.Asset{
		{
			Name:          "삼성전자",
			Type:          models.AssetTypeStock,
			Ticker:        &samsung,
			PurchasePrice: mustDecimal("7100000"),
			Details: models.DetailMap{
				models.DetailKeyMarket:       "KOSPI",
				models.DetailKeyAveragePrice: "71000",
				models.DetailKeyShares:       "100",
			},
		},
		{
			Name:          "Apple Inc.",
			Type:          models.AssetTypeStock,
			Ticker:        &apple,
			PurchasePrice: mustDecimal("2340000"),
			Details: models.DetailMap{
				models.DetailKeyMarket:       "NASDAQ",
				models.DetailKeyAveragePrice: "180",
				models.DetailKeyShares:       "10",
			},
		},
		{
			Name:          "TIGER 미국S&P500",
			Type:          models.AssetTypeETF,
			Ticker:        &tiger,
			PurchasePrice: mustDecimal("1500000"),
			Details: models.DetailMap{
				models.DetailKeyMarket:       "KOSPI",
				models.DetailKeyAveragePrice: "15000",
				models.DetailKeyShares:       "100",
			},
		},
	}
}
