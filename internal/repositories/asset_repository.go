package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hanwool/folio/internal/db"
	apperrors "github.com/hanwool/folio/internal/errors"
	"github.com/hanwool/folio/internal/models"
)

type assetRepository struct {
	db *db.DB
}

// NewAssetRepository creates a new asset repository.
func NewAssetRepository(database *db.DB) AssetRepository {
	return &assetRepository{db: database}
}

func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	if id == "" {
		return nil, &apperrors.ErrNotFound{Resource: "asset", ID: id}
	}

	var asset models.Asset
	if err := r.db.WithContext(ctx).First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Resource: "asset", ID: id}
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

func (r *assetRepository) List(ctx context.Context) ([]*models.Asset, error) {
	var assets []*models.Asset
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *models.Asset) error {
	result := r.db.WithContext(ctx).Model(&models.Asset{}).Where("id = ?", asset.ID).Updates(asset)
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "asset", ID: asset.ID}
	}
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Asset{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "asset", ID: id}
	}
	return nil
}

func (r *assetRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Asset{}).Where("id = ?", id).Updates(map[string]interface{}{
		"current_price": price,
		"last_updated":  at,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update asset price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "asset", ID: id}
	}
	return nil
}
