package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/models"
)

func TestLatestRateFetchesAndCaches(t *testing.T) {
	provider := &fakeRateProvider{rate: decimal.NewFromFloat(1337.5)}
	repo := &fakeRateRepo{}
	svc := NewFXService(provider, repo, zap.NewNop())

	rate, err := svc.LatestRate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rate.Rate.Equal(decimal.NewFromFloat(1337.5)) {
		t.Errorf("expected 1337.5, got %s", rate.Rate)
	}
	if len(repo.snapshots) != 1 {
		t.Fatalf("expected 1 cached snapshot, got %d", len(repo.snapshots))
	}
	if repo.snapshots[0].FromCurrency != "USD" || repo.snapshots[0].ToCurrency != "KRW" {
		t.Errorf("unexpected snapshot pair: %s/%s",
			repo.snapshots[0].FromCurrency, repo.snapshots[0].ToCurrency)
	}
}

func TestLatestRateServesFreshCacheWithoutFetching(t *testing.T) {
	provider := &fakeRateProvider{rate: decimal.NewFromInt(9999)}
	repo := &fakeRateRepo{snapshots: []*models.RateSnapshot{{
		FromCurrency: "USD",
		ToCurrency:   "KRW",
		Rate:         decimal.NewFromInt(1300),
		Source:       "exchangerate-api",
		FetchedAt:    time.Now().UTC(),
	}}}
	svc := NewFXService(provider, repo, zap.NewNop())

	rate, err := svc.LatestRate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rate.Rate.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("expected cached 1300, got %s", rate.Rate)
	}
	if provider.calls != 0 {
		t.Errorf("expected no provider calls, got %d", provider.calls)
	}
}

func TestLatestRateServesStaleCacheOnFetchFailure(t *testing.T) {
	provider := &fakeRateProvider{err: fmt.Errorf("upstream down")}
	repo := &fakeRateRepo{snapshots: []*models.RateSnapshot{{
		FromCurrency: "USD",
		ToCurrency:   "KRW",
		Rate:         decimal.NewFromInt(1305),
		Source:       "exchangerate-api",
		FetchedAt:    time.Now().UTC().Add(-48 * time.Hour),
	}}}
	svc := NewFXService(provider, repo, zap.NewNop())

	rate, err := svc.LatestRate(context.Background())
	if err != nil {
		t.Fatalf("expected stale rate, got error: %v", err)
	}
	if !rate.Rate.Equal(decimal.NewFromInt(1305)) {
		t.Errorf("expected stale 1305, got %s", rate.Rate)
	}
}

func TestLatestRateErrorsWithNoSourceAtAll(t *testing.T) {
	provider := &fakeRateProvider{err: fmt.Errorf("upstream down")}
	svc := NewFXService(provider, &fakeRateRepo{}, zap.NewNop())

	if _, err := svc.LatestRate(context.Background()); err == nil {
		t.Error("expected error with empty cache and failing provider")
	}
}
