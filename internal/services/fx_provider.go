package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hanwool/folio/internal/models"
)

// HTTPRateProvider fetches USD/KRW from an exchangerate-api style endpoint.
// The free tier serves `{base}/USD` with a "rates" map; the keyed v6 tier
// uses "conversion_rates".
type HTTPRateProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPRateProvider creates a rate provider. An empty apiKey selects the
// free endpoint.
func NewHTTPRateProvider(baseURL, apiKey string) RateProvider {
	if apiKey != "" {
		baseURL = "https://v6.exchangerate-api.com/v6/" + apiKey + "/latest"
	}
	return &HTTPRateProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPRateProvider) USDKRW(ctx context.Context) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, models.CurrencyUSD)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("rate API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Result          string                     `json:"result"`
		Rates           map[string]decimal.Decimal `json:"rates"`
		ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.Result != "" && payload.Result != "success" {
		return decimal.Zero, fmt.Errorf("rate API error: %s", payload.Result)
	}

	rates := payload.ConversionRates
	if rates == nil {
		rates = payload.Rates
	}
	rate, ok := rates[string(models.CurrencyKRW)]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("KRW rate missing from response")
	}
	return rate, nil
}
