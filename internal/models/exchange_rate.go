package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is an immutable USD/KRW quote: how many KRW one USD buys.
type ExchangeRate struct {
	Rate        decimal.Decimal `json:"rate"`
	LastUpdated time.Time       `json:"last_updated"`
}

// NewExchangeRate builds an ExchangeRate. The rate must be positive.
func NewExchangeRate(rate decimal.Decimal, lastUpdated time.Time) (*ExchangeRate, error) {
	if !rate.IsPositive() {
		return nil, errors.New("exchange rate must be positive")
	}
	return &ExchangeRate{Rate: rate, LastUpdated: lastUpdated}, nil
}

// USDToKRW converts a USD amount to KRW.
func (r *ExchangeRate) USDToKRW(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.Rate)
}

// KRWToUSD converts a KRW amount to USD.
func (r *ExchangeRate) KRWToUSD(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(r.Rate)
}

// RateSnapshot is a persisted exchange-rate observation, used as the local
// cache for the remote rate source.
type RateSnapshot struct {
	ID           int             `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	FromCurrency string          `json:"from_currency" gorm:"column:from_currency;type:varchar(10);not null;index:idx_rate_pair"`
	ToCurrency   string          `json:"to_currency" gorm:"column:to_currency;type:varchar(10);not null;index:idx_rate_pair"`
	Rate         decimal.Decimal `json:"rate" gorm:"column:rate;type:decimal(30,10);not null"`
	Source       string          `json:"source" gorm:"column:source;type:varchar(50);not null"`
	FetchedAt    time.Time       `json:"fetched_at" gorm:"column:fetched_at;not null;index"`
	CreatedAt    time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the RateSnapshot model.
func (RateSnapshot) TableName() string {
	return "exchange_rates"
}

// Validate validates the snapshot data.
func (s *RateSnapshot) Validate() error {
	if s.FromCurrency == "" {
		return errors.New("from_currency is required")
	}
	if s.ToCurrency == "" {
		return errors.New("to_currency is required")
	}
	if !s.Rate.IsPositive() {
		return errors.New("rate must be positive")
	}
	if s.Source == "" {
		return errors.New("source is required")
	}
	return nil
}

// ToExchangeRate converts the snapshot to the value object used by valuation.
func (s *RateSnapshot) ToExchangeRate() (*ExchangeRate, error) {
	return NewExchangeRate(s.Rate, s.FetchedAt)
}
