package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanwool/folio/internal/models"
	"github.com/hanwool/folio/internal/repositories"
)

// reportMaxAge bounds how long a cached report is served before the remote
// service is asked for a fresh one.
const reportMaxAge = 24 * time.Hour

type reportService struct {
	provider ReportProvider
	repo     repositories.ReportRepository
	logger   *zap.Logger
}

// NewReportService creates a report service backed by the remote provider and
// the local cache.
func NewReportService(provider ReportProvider, repo repositories.ReportRepository, logger *zap.Logger) ReportService {
	return &reportService{provider: provider, repo: repo, logger: logger}
}

// GetReport serves the latest report for a ticker, preferring a fresh cached
// copy. On remote failure a stale cached report is still served.
func (s *reportService) GetReport(ctx context.Context, ticker string) (*models.Report, error) {
	cached, err := s.repo.LatestByTicker(ctx, ticker)
	if err != nil {
		s.logger.Warn("report cache lookup failed", zap.Error(err))
	}
	if cached != nil && time.Since(cached.CreatedAt) < reportMaxAge {
		return cached, nil
	}

	report, err := s.provider.FetchReport(ctx, ticker)
	if err != nil {
		if cached != nil {
			s.logger.Warn("report fetch failed, serving stale copy",
				zap.String("ticker", ticker), zap.Error(err))
			return cached, nil
		}
		return nil, err
	}

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if err := s.repo.Save(ctx, report); err != nil {
		s.logger.Warn("failed to cache report", zap.String("ticker", ticker), zap.Error(err))
	}
	return report, nil
}
