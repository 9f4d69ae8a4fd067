package models

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is a currency the app can report amounts in.
type Currency string

const (
	CurrencyKRW Currency = "KRW"
	CurrencyUSD Currency = "USD"
)

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyKRW:
		return "₩"
	case CurrencyUSD:
		return "$"
	}
	return ""
}

// Format renders an amount with locale-correct grouping and precision:
// KRW as a grouped integer, USD with two decimal places.
func (c Currency) Format(amount decimal.Decimal) string {
	cur := money.GetCurrency(string(c))
	if cur == nil {
		return amount.String()
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), string(c)).Display()
}

// Market is an exchange an asset trades on. Every market settles in exactly
// one currency.
type Market string

const (
	MarketKOSPI  Market = "KOSPI"
	MarketKOSDAQ Market = "KOSDAQ"
	MarketNYSE   Market = "NYSE"
	MarketNASDAQ Market = "NASDAQ"
)

// Currency returns the settlement currency of the market.
func (m Market) Currency() Currency {
	switch m {
	case MarketKOSPI, MarketKOSDAQ:
		return CurrencyKRW
	case MarketNYSE, MarketNASDAQ:
		return CurrencyUSD
	}
	return ""
}

// Valid reports whether m is one of the supported markets.
func (m Market) Valid() bool {
	switch m {
	case MarketKOSPI, MarketKOSDAQ, MarketNYSE, MarketNASDAQ:
		return true
	}
	return false
}

// ParseMarket resolves a market display name to a Market. Unrecognized names
// return ok=false so callers can skip currency conversion instead of failing.
func ParseMarket(s string) (Market, bool) {
	m := Market(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", false
	}
	return m, true
}
