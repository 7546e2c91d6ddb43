package metrics

import (
	"database/sql"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	metricPrefix = "shop_admin_"

	ResultSuccess = "success"
	ResultError   = "error"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	registerOnce sync.Once

	reportTotal   *prometheus.CounterVec
	reportLatency *prometheus.HistogramVec

	cacheLookups *prometheus.CounterVec

	exportTotal *prometheus.CounterVec
)

// Init registers report metrics and, when db is non-nil, DB-backed gauges.
func Init(db *sql.DB, logger *zap.Logger) {
	registerOnce.Do(func() {
		reportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_total",
				Help: "Total report computations by report and result",
			},
			[]string{"report", "result"},
		)
		reportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_latency_seconds",
				Help:    "Report computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report", "result"},
		)
		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_cache_lookups_total",
				Help: "Report cache lookups by report and result",
			},
			[]string{"report", "result"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_export_total",
				Help: "Sales report exports by format and result",
			},
			[]string{"format", "result"},
		)
		prometheus.MustRegister(
			reportTotal,
			reportLatency,
			cacheLookups,
			exportTotal,
		)
		if db != nil {
			registerDBMetrics(db, logger)
		}
	})
}

// ObserveReport records a report computation and its outcome.
func ObserveReport(report string, err error, duration time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	if reportTotal != nil {
		reportTotal.WithLabelValues(report, result).Inc()
	}
	if reportLatency != nil {
		reportLatency.WithLabelValues(report, result).Observe(duration.Seconds())
	}
}

// IncCacheLookup counts a cache lookup result (hit, miss, error).
func IncCacheLookup(report, result string) {
	if result == "" {
		result = CacheMiss
	}
	if cacheLookups != nil {
		cacheLookups.WithLabelValues(report, result).Inc()
	}
}

// IncExport counts a sales report export.
func IncExport(format string, err error) {
	if format == "" {
		format = "unknown"
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
}
