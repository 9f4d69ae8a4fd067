package config

import (
	"os"

	"github.com/shopspring/decimal"
)

// Config holds application configuration resolved from environment variables.
type Config struct {
	ServerPort string

	// FallbackUSDKRW is applied by the valuation engine when no live rate is
	// available. Documented stale default, not a quote.
	FallbackUSDKRW decimal.Decimal

	// FXAPIBase is the exchange-rate provider endpoint; FXAPIKey upgrades it
	// to the keyed tier when set.
	FXAPIBase string
	FXAPIKey  string

	// PriceAPIBase and ReportAPIBase are the remote quote/history and analyst
	// report services.
	PriceAPIBase  string
	ReportAPIBase string

	// RefreshSchedule is the cron spec for the background price refresh.
	// Empty disables the job.
	RefreshSchedule string
}

// Load builds a Config from the environment.
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FallbackUSDKRW:  getDecimal("FALLBACK_USD_KRW", decimal.NewFromInt(1300)),
		FXAPIBase:       getEnv("FX_API_BASE", "https://api.exchangerate-api.com/v4/latest"),
		FXAPIKey:        os.Getenv("FX_API_KEY"),
		PriceAPIBase:    getEnv("PRICE_API_BASE", "https://api.folio.dev/v1"),
		ReportAPIBase:   getEnv("REPORT_API_BASE", "https://api.folio.dev/v1"),
		RefreshSchedule: getEnv("PRICE_REFRESH_SCHEDULE", "0 */10 * * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return defaultValue
	}
	return d
}
