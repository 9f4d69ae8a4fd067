package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AssetType classifies a holding.
type AssetType string

const (
	AssetTypeStock  AssetType = "STOCK"
	AssetTypeETF    AssetType = "ETF"
	AssetTypeCrypto AssetType = "CRYPTO"
)

// Detail map keys for type-specific asset fields.
const (
	DetailKeyMarket       = "market"
	DetailKeyAveragePrice = "averagePrice"
	DetailKeyShares       = "shares"
)

// DetailMap carries open, type-specific asset fields (market, averagePrice,
// shares for listed securities). Persisted as a JSON blob column.
type DetailMap map[string]string

// Value implements driver.Valuer.
func (m DetailMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *DetailMap) Scan(value interface{}) error {
	if value == nil {
		*m = DetailMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for DetailMap: %T", value)
	}
	if len(data) == 0 {
		*m = DetailMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Asset represents a single holding. PurchasePrice is the total KRW cost
// basis; the per-share purchase price and share count live in Details, in the
// asset's market currency.
type Asset struct {
	ID            string           `json:"id" gorm:"primaryKey;column:id;type:varchar(64)"`
	Name          string           `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Type          AssetType        `json:"type" gorm:"column:type;type:varchar(20);not null;index"`
	Ticker        *string          `json:"ticker" gorm:"column:ticker;type:varchar(30);index"`
	PurchasePrice decimal.Decimal  `json:"purchase_price" gorm:"column:purchase_price;type:decimal(30,10);not null"`
	PurchaseDate  *time.Time       `json:"purchase_date" gorm:"column:purchase_date"`
	CurrentPrice  *decimal.Decimal `json:"current_price" gorm:"column:current_price;type:decimal(30,10)"`
	LastUpdated   *time.Time       `json:"last_updated" gorm:"column:last_updated"`
	Details       DetailMap        `json:"details" gorm:"column:details;type:text"`
	CreatedAt     time.Time        `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Asset model.
func (Asset) TableName() string {
	return "assets"
}

// Validate validates the asset data.
func (a *Asset) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	switch a.Type {
	case AssetTypeStock, AssetTypeETF, AssetTypeCrypto:
	case "":
		return errors.New("type is required")
	default:
		return fmt.Errorf("unknown asset type: %s", a.Type)
	}
	if a.PurchasePrice.IsNegative() {
		return errors.New("purchase_price must be non-negative")
	}
	return nil
}

// Market resolves the asset's market from its details. Unknown or missing
// market strings return ok=false; valuation then applies no conversion.
func (a *Asset) Market() (Market, bool) {
	return ParseMarket(a.Details[DetailKeyMarket])
}

// AveragePrice returns the purchase price per share in market currency, or
// nil when absent or unparseable.
func (a *Asset) AveragePrice() *decimal.Decimal {
	return a.detailDecimal(DetailKeyAveragePrice)
}

// Shares returns the held share count, or nil when absent or unparseable.
func (a *Asset) Shares() *decimal.Decimal {
	return a.detailDecimal(DetailKeyShares)
}

func (a *Asset) detailDecimal(key string) *decimal.Decimal {
	raw, ok := a.Details[key]
	if !ok || raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
