package valuation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hanwool/folio/internal/models"
)

// Aggregate combines per-asset valuations into portfolio-level totals in KRW.
// A portfolio with zero purchase value reports a zero return percentage
// rather than dividing by zero.
func (e *Engine) Aggregate(assets []*models.Asset, rate *models.ExchangeRate) *models.PortfolioSummary {
	summary := &models.PortfolioSummary{
		AssetCount: len(assets),
		AsOf:       time.Now().UTC(),
	}
	for _, a := range assets {
		summary.TotalCurrentValue = summary.TotalCurrentValue.Add(e.CurrentValueInKRW(a, rate))
		summary.TotalPurchaseValue = summary.TotalPurchaseValue.Add(a.PurchasePrice)
	}
	summary.TotalReturnAmount = summary.TotalCurrentValue.Sub(summary.TotalPurchaseValue)
	if summary.TotalPurchaseValue.IsPositive() {
		summary.TotalReturnPercentage = summary.TotalReturnAmount.
			Div(summary.TotalPurchaseValue).
			Mul(decimal.NewFromInt(100))
	}
	return summary
}

// ValueHistory folds per-asset price histories into a date-keyed portfolio
// value series in KRW, ascending by date. Dates are unioned across assets: a
// date contributed by only some assets reflects only those assets, with no
// interpolation or forward-fill. Assets without a share count contribute
// nothing.
func (e *Engine) ValueHistory(assets []*models.Asset, histories map[string][]models.StockHistoryItem, rate *models.ExchangeRate) []models.ValuePoint {
	totals := make(map[string]decimal.Decimal)
	for _, a := range assets {
		shares := a.Shares()
		if shares == nil {
			continue
		}
		for _, item := range histories[a.ID] {
			value := e.toKRW(item.Price.Mul(*shares), a, rate)
			totals[item.Date] = totals[item.Date].Add(value)
		}
	}

	dates := make([]string, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := make([]models.ValuePoint, 0, len(dates))
	for _, d := range dates {
		series = append(series, models.ValuePoint{Date: d, Value: totals[d]})
	}
	return series
}
