package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/ridwanfathin/shop-admin-service/internal/cache"
	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/logger"
	"github.com/ridwanfathin/shop-admin-service/internal/metrics"
	"github.com/ridwanfathin/shop-admin-service/internal/reporting"
)

// CachedReportService is a read-through cache in front of another ReportService.
// Keys include the current reporting date, so defaulted windows roll over at midnight.
// Cache failures are logged and the report is computed directly.
type CachedReportService struct {
	next  ReportService
	store cache.Store
	ttl   time.Duration
	today func() domain.Date
	log   *zap.Logger
}

// NewCachedReportService creates a caching decorator. today supplies the date that scopes cache keys.
func NewCachedReportService(next ReportService, store cache.Store, ttl time.Duration, today func() domain.Date, log *zap.Logger) *CachedReportService {
	if log == nil {
		log = zap.NewNop()
	}
	if today == nil {
		today = func() domain.Date { return domain.DateOf(time.Now(), time.UTC) }
	}
	return &CachedReportService{next: next, store: store, ttl: ttl, today: today, log: log}
}

func cached[T any](ctx context.Context, s *CachedReportService, report string, params any, load func() (T, error)) (T, error) {
	log := logger.WithContext(ctx, s.log).With(zap.String("report", report))

	rawParams, err := json.Marshal(params)
	if err != nil {
		log.Warn("failed to build cache key", zap.Error(err))
		return load()
	}
	key := report + ":" + s.today().String() + ":" + string(rawParams)

	raw, ok, err := s.store.Get(ctx, key)
	switch {
	case err != nil:
		metrics.IncCacheLookup(report, metrics.CacheError)
		log.Warn("failed to read report cache", zap.Error(err))
	case ok:
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			metrics.IncCacheLookup(report, metrics.CacheHit)
			return value, nil
		}
		log.Warn("discarding undecodable cache entry", zap.String("key", key))
		metrics.IncCacheLookup(report, metrics.CacheMiss)
	default:
		metrics.IncCacheLookup(report, metrics.CacheMiss)
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if raw, err := json.Marshal(value); err != nil {
		log.Warn("failed to encode report for cache", zap.Error(err))
	} else if err := s.store.Set(ctx, key, raw, s.ttl); err != nil {
		log.Warn("failed to write report cache", zap.Error(err))
	}
	return value, nil
}

// Dashboard serves the dashboard through the cache.
func (s *CachedReportService) Dashboard(ctx context.Context, year int) (*domain.Dashboard, error) {
	return cached(ctx, s, "dashboard", year, func() (*domain.Dashboard, error) {
		return s.next.Dashboard(ctx, year)
	})
}

func (s *CachedReportService) StatusCounts(ctx context.Context, q reporting.StatusCountQuery) (*domain.StatusCounts, error) {
	return cached(ctx, s, "status_counts", q, func() (*domain.StatusCounts, error) {
		return s.next.StatusCounts(ctx, q)
	})
}

func (s *CachedReportService) RevenueSeries(ctx context.Context, q reporting.SeriesQuery) ([]domain.SeriesBucket, error) {
	return cached(ctx, s, "revenue_series", q, func() ([]domain.SeriesBucket, error) {
		return s.next.RevenueSeries(ctx, q)
	})
}

func (s *CachedReportService) TopProducts(ctx context.Context, q reporting.RankingQuery) ([]domain.RankingEntry, error) {
	return cached(ctx, s, "top_products", q, func() ([]domain.RankingEntry, error) {
		return s.next.TopProducts(ctx, q)
	})
}

func (s *CachedReportService) Cohort(ctx context.Context, q reporting.CohortQuery) (*domain.CohortReport, error) {
	return cached(ctx, s, "cohort", q, func() (*domain.CohortReport, error) {
		return s.next.Cohort(ctx, q)
	})
}

func (s *CachedReportService) RangeSummary(ctx context.Context, q reporting.RangeQuery) (*domain.SalesReport, error) {
	return cached(ctx, s, "range_summary", q, func() (*domain.SalesReport, error) {
		return s.next.RangeSummary(ctx, q)
	})
}

func (s *CachedReportService) DetailedStats(ctx context.Context) (*domain.DetailedStats, error) {
	return cached(ctx, s, "detailed_stats", nil, func() (*domain.DetailedStats, error) {
		return s.next.DetailedStats(ctx)
	})
}

func (s *CachedReportService) InvoiceStatistics(ctx context.Context, year int) (*domain.InvoiceStatistics, error) {
	return cached(ctx, s, "invoice_statistics", year, func() (*domain.InvoiceStatistics, error) {
		return s.next.InvoiceStatistics(ctx, year)
	})
}

func (s *CachedReportService) CustomerStatistics(ctx context.Context) (*domain.CustomerStatistics, error) {
	return cached(ctx, s, "customer_statistics", nil, func() (*domain.CustomerStatistics, error) {
		return s.next.CustomerStatistics(ctx)
	})
}

func (s *CachedReportService) CategoryProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error) {
	return cached(ctx, s, "category_product_counts", nil, func() ([]domain.CategoryProductCount, error) {
		return s.next.CategoryProductCounts(ctx)
	})
}

var _ ReportService = (*CachedReportService)(nil)
