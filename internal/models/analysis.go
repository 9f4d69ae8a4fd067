package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockHistoryItem is one point of an externally sourced daily price series.
// Date is an ISO date string; Price is in the asset's market currency.
type StockHistoryItem struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// PortfolioAnalysis is the derived per-asset view combining live price history
// with the holding. All monetary figures are KRW. It is recomputed per request
// and never persisted.
type PortfolioAnalysis struct {
	Asset            *Asset             `json:"asset"`
	PriceHistory     []StockHistoryItem `json:"price_history"`
	CurrentValue     decimal.Decimal    `json:"current_value"`
	PurchaseValue    decimal.Decimal    `json:"purchase_value"`
	ReturnPercentage *decimal.Decimal   `json:"return_percentage"`
	ReturnAmount     *decimal.Decimal   `json:"return_amount"`
}

// PortfolioSummary holds portfolio-level totals in KRW.
type PortfolioSummary struct {
	TotalCurrentValue     decimal.Decimal `json:"total_current_value"`
	TotalPurchaseValue    decimal.Decimal `json:"total_purchase_value"`
	TotalReturnAmount     decimal.Decimal `json:"total_return_amount"`
	TotalReturnPercentage decimal.Decimal `json:"total_return_percentage"`
	AssetCount            int             `json:"asset_count"`
	AsOf                  time.Time       `json:"as_of"`
}

// ValuePoint is one point of the portfolio's historical value series, in KRW.
type ValuePoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}
