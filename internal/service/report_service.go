package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ridwanfathin/shop-admin-service/internal/cache"
	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/reporting"
)

// ReportService defines the reports exposed to transports
type ReportService interface {
	Dashboard(ctx context.Context, year int) (*domain.Dashboard, error)
	StatusCounts(ctx context.Context, q reporting.StatusCountQuery) (*domain.StatusCounts, error)
	RevenueSeries(ctx context.Context, q reporting.SeriesQuery) ([]domain.SeriesBucket, error)
	TopProducts(ctx context.Context, q reporting.RankingQuery) ([]domain.RankingEntry, error)
	Cohort(ctx context.Context, q reporting.CohortQuery) (*domain.CohortReport, error)
	RangeSummary(ctx context.Context, q reporting.RangeQuery) (*domain.SalesReport, error)
	DetailedStats(ctx context.Context) (*domain.DetailedStats, error)
	InvoiceStatistics(ctx context.Context, year int) (*domain.InvoiceStatistics, error)
	CustomerStatistics(ctx context.Context) (*domain.CustomerStatistics, error)
	CategoryProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error)
}

var _ ReportService = (*reporting.Engine)(nil)

// NewReportService serves reports from engine, through store when ttl is positive.
func NewReportService(engine *reporting.Engine, store cache.Store, ttl time.Duration, log *zap.Logger) ReportService {
	if ttl <= 0 || store == nil {
		return engine
	}
	return NewCachedReportService(engine, store, ttl, engine.Today, log)
}
