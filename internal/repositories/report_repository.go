package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hanwool/folio/internal/db"
	"github.com/hanwool/folio/internal/models"
)

type reportRepository struct {
	db *db.DB
}

// NewReportRepository creates a new report cache repository.
func NewReportRepository(database *db.DB) ReportRepository {
	return &reportRepository{db: database}
}

func (r *reportRepository) Save(ctx context.Context, report *models.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (r *reportRepository) LatestByTicker(ctx context.Context, ticker string) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("created_at DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // not cached yet
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}
