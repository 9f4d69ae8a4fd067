package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hanwool/folio/internal/db"
	"github.com/hanwool/folio/internal/models"
)

type rateRepository struct {
	db *db.DB
}

// NewRateRepository creates a new exchange-rate cache repository.
func NewRateRepository(database *db.DB) RateRepository {
	return &rateRepository{db: database}
}

func (r *rateRepository) Save(ctx context.Context, snapshot *models.RateSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to save rate snapshot: %w", err)
	}
	return nil
}

func (r *rateRepository) Latest(ctx context.Context, from, to string) (*models.RateSnapshot, error) {
	var snapshot models.RateSnapshot
	err := r.db.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ?", from, to).
		Order("fetched_at DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no cached rate yet
		}
		return nil, fmt.Errorf("failed to get latest rate: %w", err)
	}
	return &snapshot, nil
}
