package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/hanwool/folio/internal/errors"
	"github.com/hanwool/folio/internal/models"
)

type fakeAssetService struct {
	assets []*models.Asset
}

func (s *fakeAssetService) CreateAsset(_ context.Context, asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	if asset.ID == "" {
		asset.ID = "generated"
	}
	s.assets = append(s.assets, asset)
	return nil
}

func (s *fakeAssetService) GetAsset(_ context.Context, id string) (*models.Asset, error) {
	for _, a := range s.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, &apperrors.ErrNotFound{Resource: "asset", ID: id}
}

func (s *fakeAssetService) ListAssets(_ context.Context) ([]*models.Asset, error) {
	return s.assets, nil
}

func (s *fakeAssetService) UpdateAsset(_ context.Context, asset *models.Asset) error {
	for i, a := range s.assets {
		if a.ID == asset.ID {
			s.assets[i] = asset
			return nil
		}
	}
	return &apperrors.ErrNotFound{Resource: "asset", ID: asset.ID}
}

func (s *fakeAssetService) DeleteAsset(_ context.Context, id string) error {
	for i, a := range s.assets {
		if a.ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return nil
		}
	}
	return &apperrors.ErrNotFound{Resource: "asset", ID: id}
}

func (s *fakeAssetService) LoadSamples(ctx context.Context) ([]*models.Asset, error) {
	sample := &models.Asset{Name: "샘플", Type: models.AssetTypeStock}
	if err := s.CreateAsset(ctx, sample); err != nil {
		return nil, err
	}
	return []*models.Asset{sample}, nil
}

type fakeAnalysisService struct{}

func (s *fakeAnalysisService) Summary(context.Context) (*models.PortfolioSummary, error) {
	return &models.PortfolioSummary{}, nil
}

func (s *fakeAnalysisService) Analyze(context.Context, int) ([]*models.PortfolioAnalysis, error) {
	return nil, nil
}

func (s *fakeAnalysisService) ValueHistory(context.Context, int) ([]models.ValuePoint, error) {
	return nil, nil
}

type fakeFXService struct{}

func (s *fakeFXService) LatestRate(context.Context) (*models.ExchangeRate, error) {
	return models.NewExchangeRate(decimal.NewFromInt(1300), time.Now())
}

type fakeReportService struct{}

func (s *fakeReportService) GetReport(_ context.Context, ticker string) (*models.Report, error) {
	return &models.Report{ID: "r1", Ticker: ticker, Title: "report"}, nil
}

func newTestRouter(assets *fakeAssetService) http.Handler {
	return NewRouter(
		NewAssetHandler(assets),
		NewPortfolioHandler(&fakeAnalysisService{}),
		NewFXHandler(&fakeFXService{}),
		NewReportHandler(&fakeReportService{}),
	)
}

func TestCreateAndGetAsset(t *testing.T) {
	svc := &fakeAssetService{}
	router := newTestRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"name":           "삼성전자",
		"type":           "STOCK",
		"purchase_price": "7100000",
		"details": map[string]string{
			"market":       "KOSPI",
			"averagePrice": "71000",
			"shares":       "100",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/assets", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created models.Asset
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an assigned ID")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/assets/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreateAssetRejectsInvalidBody(t *testing.T) {
	router := newTestRouter(&fakeAssetService{})

	req := httptest.NewRequest(http.MethodPost, "/api/assets", bytes.NewReader([]byte(`{"name":""}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestGetMissingAssetReturns404(t *testing.T) {
	router := newTestRouter(&fakeAssetService{})

	req := httptest.NewRequest(http.MethodGet, "/api/assets/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteAsset(t *testing.T) {
	svc := &fakeAssetService{assets: []*models.Asset{{
		ID:   "a1",
		Name: "삼성전자",
		Type: models.AssetTypeStock,
	}}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/assets/a1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.assets) != 0 {
		t.Errorf("expected asset removed, %d left", len(svc.assets))
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&fakeAssetService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Errorf("expected healthy status, got %q", payload["status"])
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(&fakeAssetService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/assets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header on preflight response")
	}
}
