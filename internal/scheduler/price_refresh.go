package scheduler

import (
	"context"

	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/services"
)

// PriceRefreshJob refreshes stored assets' market prices on a schedule.
type PriceRefreshJob struct {
	prices   services.PriceService
	schedule string
	logger   *zap.Logger
}

// NewPriceRefreshJob creates the price refresh job.
func NewPriceRefreshJob(prices services.PriceService, schedule string, logger *zap.Logger) *PriceRefreshJob {
	return &PriceRefreshJob{prices: prices, schedule: schedule, logger: logger}
}

func (j *PriceRefreshJob) Name() string {
	return "price-refresh"
}

func (j *PriceRefreshJob) Schedule() string {
	return j.schedule
}

func (j *PriceRefreshJob) Run(ctx context.Context) error {
	updated, err := j.prices.RefreshAll(ctx)
	if err != nil {
		return err
	}
	j.logger.Info("price refresh complete", zap.Int("updated", updated))
	return nil
}
