package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Report sentiment values as returned by the analyst report service.
const (
	SentimentPositive = "POSITIVE"
	SentimentNeutral  = "NEUTRAL"
	SentimentNegative = "NEGATIVE"
)

// GraphData is the chart payload attached to a report, stored as a JSON blob.
type GraphData []StockHistoryItem

// Value implements driver.Valuer.
func (g GraphData) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (g *GraphData) Scan(value interface{}) error {
	if value == nil {
		*g = GraphData{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for GraphData: %T", value)
	}
	if len(data) == 0 {
		*g = GraphData{}
		return nil
	}
	return json.Unmarshal(data, g)
}

// Report is an AI-generated analyst report for a ticker, fetched from the
// remote report service and cached locally.
type Report struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(64)"`
	Ticker    string    `json:"ticker" gorm:"column:ticker;type:varchar(30);not null;index"`
	Title     string    `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Summary   string    `json:"summary" gorm:"column:summary;type:text"`
	Sentiment string    `json:"sentiment" gorm:"column:sentiment;type:varchar(20)"`
	Category  string    `json:"category" gorm:"column:category;type:varchar(50)"`
	Graph     GraphData `json:"graph" gorm:"column:graph;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the Report model.
func (Report) TableName() string {
	return "reports"
}

// Validate validates the report data.
func (r *Report) Validate() error {
	if r.Ticker == "" {
		return errors.New("ticker is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	switch r.Sentiment {
	case "", SentimentPositive, SentimentNeutral, SentimentNegative:
	default:
		return fmt.Errorf("unknown sentiment: %s", r.Sentiment)
	}
	return nil
}
