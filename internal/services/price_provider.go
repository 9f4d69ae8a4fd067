package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hanwool/folio/internal/models"
)

// HTTPPriceProvider fetches quotes and daily history from the remote price
// service. Prices are in the ticker's market currency.
type HTTPPriceProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPPriceProvider creates a price provider for the given API base URL.
func NewHTTPPriceProvider(baseURL string) PriceProvider {
	return &HTTPPriceProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPPriceProvider) LatestPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/stocks/%s/price", p.baseURL, url.PathEscape(ticker))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("price API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Ticker string          `json:"ticker"`
		Price  decimal.Decimal `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode price: %w", err)
	}
	if !payload.Price.IsPositive() {
		return decimal.Zero, fmt.Errorf("no price for ticker %s", ticker)
	}
	return payload.Price, nil
}

func (p *HTTPPriceProvider) DailyHistory(ctx context.Context, ticker string, days int) ([]models.StockHistoryItem, error) {
	endpoint := fmt.Sprintf("%s/stocks/%s/history?days=%d", p.baseURL, url.PathEscape(ticker), days)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history API returned status %d", resp.StatusCode)
	}

	var items []models.StockHistoryItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return items, nil
}
