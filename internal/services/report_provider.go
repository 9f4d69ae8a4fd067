package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hanwool/folio/internal/models"
)

// HTTPReportProvider fetches AI-generated analyst reports from the remote
// report service.
type HTTPReportProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPReportProvider creates a report provider for the given API base URL.
func NewHTTPReportProvider(baseURL string) ReportProvider {
	return &HTTPReportProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *HTTPReportProvider) FetchReport(ctx context.Context, ticker string) (*models.Report, error) {
	endpoint := fmt.Sprintf("%s/reports/%s", p.baseURL, url.PathEscape(ticker))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("report API returned status %d", resp.StatusCode)
	}

	var report models.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	if report.Ticker == "" {
		report.Ticker = ticker
	}
	return &report, nil
}
