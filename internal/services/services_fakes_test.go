package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/hanwool/folio/internal/errors"
	"github.com/hanwool/folio/internal/models"
)

// In-memory fakes shared by the service tests.

type fakeAssetRepo struct {
	assets []*models.Asset
	priced map[string]decimal.Decimal
}

func (r *fakeAssetRepo) Create(_ context.Context, asset *models.Asset) error {
	r.assets = append(r.assets, asset)
	return nil
}

func (r *fakeAssetRepo) GetByID(_ context.Context, id string) (*models.Asset, error) {
	for _, a := range r.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, &apperrors.ErrNotFound{Resource: "asset", ID: id}
}

func (r *fakeAssetRepo) List(_ context.Context) ([]*models.Asset, error) {
	return r.assets, nil
}

func (r *fakeAssetRepo) Update(_ context.Context, asset *models.Asset) error {
	for i, a := range r.assets {
		if a.ID == asset.ID {
			r.assets[i] = asset
			return nil
		}
	}
	return &apperrors.ErrNotFound{Resource: "asset", ID: asset.ID}
}

func (r *fakeAssetRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.assets {
		if a.ID == id {
			r.assets = append(r.assets[:i], r.assets[i+1:]...)
			return nil
		}
	}
	return &apperrors.ErrNotFound{Resource: "asset", ID: id}
}

func (r *fakeAssetRepo) UpdatePrice(_ context.Context, id string, price decimal.Decimal, at time.Time) error {
	for _, a := range r.assets {
		if a.ID == id {
			p := price
			a.CurrentPrice = &p
			a.LastUpdated = &at
			if r.priced == nil {
				r.priced = make(map[string]decimal.Decimal)
			}
			r.priced[id] = price
			return nil
		}
	}
	return &apperrors.ErrNotFound{Resource: "asset", ID: id}
}

type fakePriceProvider struct {
	prices    map[string]decimal.Decimal
	histories map[string][]models.StockHistoryItem
	failing   map[string]bool
}

func (p *fakePriceProvider) LatestPrice(_ context.Context, ticker string) (decimal.Decimal, error) {
	if p.failing[ticker] {
		return decimal.Zero, fmt.Errorf("quote unavailable for %s", ticker)
	}
	price, ok := p.prices[ticker]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price for %s", ticker)
	}
	return price, nil
}

func (p *fakePriceProvider) DailyHistory(_ context.Context, ticker string, _ int) ([]models.StockHistoryItem, error) {
	if p.failing[ticker] {
		return nil, fmt.Errorf("history unavailable for %s", ticker)
	}
	return p.histories[ticker], nil
}

type fakeFXService struct {
	rate *models.ExchangeRate
	err  error
}

func (s *fakeFXService) LatestRate(_ context.Context) (*models.ExchangeRate, error) {
	return s.rate, s.err
}

type fakeRateProvider struct {
	rate  decimal.Decimal
	err   error
	calls int
}

func (p *fakeRateProvider) USDKRW(_ context.Context) (decimal.Decimal, error) {
	p.calls++
	return p.rate, p.err
}

type fakeRateRepo struct {
	snapshots []*models.RateSnapshot
}

func (r *fakeRateRepo) Save(_ context.Context, snapshot *models.RateSnapshot) error {
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *fakeRateRepo) Latest(_ context.Context, from, to string) (*models.RateSnapshot, error) {
	var latest *models.RateSnapshot
	for _, s := range r.snapshots {
		if s.FromCurrency != from || s.ToCurrency != to {
			continue
		}
		if latest == nil || s.FetchedAt.After(latest.FetchedAt) {
			latest = s
		}
	}
	return latest, nil
}
