package valuation

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/models"
)

// DefaultFallbackUSDKRW is the documented fallback USD/KRW rate applied when
// no live exchange rate is available. It is a stale constant, not a quote;
// the engine logs whenever it is used.
var DefaultFallbackUSDKRW = decimal.NewFromInt(1300)

// Engine derives profit/loss figures for single assets. It is stateless and
// safe for concurrent use.
type Engine struct {
	fallbackRate decimal.Decimal
	logger       *zap.Logger
}

// NewEngine creates a valuation engine. A non-positive fallbackRate selects
// DefaultFallbackUSDKRW.
func NewEngine(fallbackRate decimal.Decimal, logger *zap.Logger) *Engine {
	if !fallbackRate.IsPositive() {
		fallbackRate = DefaultFallbackUSDKRW
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{fallbackRate: fallbackRate, logger: logger}
}

// ReturnPercentage returns (current − average) / average × 100, or nil when
// either price is missing or the average price is not positive.
func (e *Engine) ReturnPercentage(a *models.Asset) *decimal.Decimal {
	avg := a.AveragePrice()
	if avg == nil || a.CurrentPrice == nil || !avg.IsPositive() {
		return nil
	}
	pct := a.CurrentPrice.Sub(*avg).Div(*avg).Mul(decimal.NewFromInt(100))
	return &pct
}

// ReturnAmountInMarketCurrency returns (current − average) × shares, or nil
// when any input is missing.
func (e *Engine) ReturnAmountInMarketCurrency(a *models.Asset) *decimal.Decimal {
	avg := a.AveragePrice()
	shares := a.Shares()
	if avg == nil || shares == nil || a.CurrentPrice == nil {
		return nil
	}
	amt := a.CurrentPrice.Sub(*avg).Mul(*shares)
	return &amt
}

// ReturnAmountInKRW converts ReturnAmountInMarketCurrency to KRW per the
// asset's market currency. KRW-market and unknown-market amounts pass through
// unchanged.
func (e *Engine) ReturnAmountInKRW(a *models.Asset, rate *models.ExchangeRate) *decimal.Decimal {
	amt := e.ReturnAmountInMarketCurrency(a)
	if amt == nil {
		return nil
	}
	krw := e.toKRW(*amt, a, rate)
	return &krw
}

// CurrentValueInMarketCurrency returns current price × shares, or nil when
// either is missing.
func (e *Engine) CurrentValueInMarketCurrency(a *models.Asset) *decimal.Decimal {
	shares := a.Shares()
	if a.CurrentPrice == nil || shares == nil {
		return nil
	}
	v := a.CurrentPrice.Mul(*shares)
	return &v
}

// CurrentValueInKRW returns the asset's live value converted to KRW. When no
// live value can be computed the total purchase price stands in, so the
// portfolio total is always defined ("no live price yet" degradation).
func (e *Engine) CurrentValueInKRW(a *models.Asset, rate *models.ExchangeRate) decimal.Decimal {
	v := e.CurrentValueInMarketCurrency(a)
	if v == nil {
		return a.PurchasePrice
	}
	return e.toKRW(*v, a, rate)
}

// PurchaseValueInMarketCurrency returns average price × shares, or nil when
// either is missing.
func (e *Engine) PurchaseValueInMarketCurrency(a *models.Asset) *decimal.Decimal {
	avg := a.AveragePrice()
	shares := a.Shares()
	if avg == nil || shares == nil {
		return nil
	}
	v := avg.Mul(*shares)
	return &v
}

// Analyze builds the derived per-asset analysis view in KRW.
func (e *Engine) Analyze(a *models.Asset, history []models.StockHistoryItem, rate *models.ExchangeRate) *models.PortfolioAnalysis {
	return &models.PortfolioAnalysis{
		Asset:            a,
		PriceHistory:     history,
		CurrentValue:     e.CurrentValueInKRW(a, rate),
		PurchaseValue:    a.PurchasePrice,
		ReturnPercentage: e.ReturnPercentage(a),
		ReturnAmount:     e.ReturnAmountInKRW(a, rate),
	}
}

// toKRW converts an amount in the asset's market currency to KRW. Amounts in
// KRW, or in an unrecognized market, pass through unchanged.
func (e *Engine) toKRW(amount decimal.Decimal, a *models.Asset, rate *models.ExchangeRate) decimal.Decimal {
	market, ok := a.Market()
	if !ok || market.Currency() != models.CurrencyUSD {
		return amount
	}
	if rate != nil {
		return rate.USDToKRW(amount)
	}
	e.logger.Warn("no live exchange rate, applying fallback",
		zap.String("asset_id", a.ID),
		zap.String("fallback_rate", e.fallbackRate.String()))
	return amount.Mul(e.fallbackRate)
}
