// Package reporting computes the admin dashboard reports over a TransactionStore.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/logger"
	"github.com/ridwanfathin/shop-admin-service/internal/metrics"
	"github.com/ridwanfathin/shop-admin-service/internal/repository"
)

const (
	DefaultTopLimit    = 5
	DefaultMaxTopLimit = 100

	// RetentionWindowDays is how long after signup a purchase must happen to count as returning.
	RetentionWindowDays = 30

	recentTransactionsLimit = 5
	topCustomersLimit       = 5
)

const tracerName = "github.com/ridwanfathin/shop-admin-service/internal/reporting"

var successOnly = []domain.InvoiceStatus{domain.InvoiceStatusSuccess}

// Engine computes reports. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	store    repository.TransactionStore
	loc      *time.Location
	now      func() time.Time
	maxLimit int
	log      *zap.Logger
	tracer   trace.Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocation sets the time zone used for calendar bucketing.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithClock overrides the clock used for default ranges.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMaxLimit caps ranking limits.
func WithMaxLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.maxLimit = limit
		}
	}
}

// WithLogger sets the logger for failed and rejected reports.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates an engine reading from store.
func NewEngine(store repository.TransactionStore, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		loc:      time.UTC,
		now:      time.Now,
		maxLimit: DefaultMaxTopLimit,
		log:      zap.NewNop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today is the current calendar date in the reporting location.
func (e *Engine) Today() domain.Date {
	return domain.DateOf(e.now(), e.loc)
}

// runReport traces, times and logs fn, wrapping failures in a domain.ReportError.
func runReport[T any](ctx context.Context, e *Engine, report string, params map[string]string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, span := e.tracer.Start(ctx, "report."+report)
	defer span.End()
	for k, v := range params {
		span.SetAttributes(attribute.String("report.param."+k, v))
	}

	start := time.Now()
	result, err := fn(ctx)
	metrics.ObserveReport(report, err, time.Since(start))
	if err == nil {
		return result, nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	log := logger.WithContext(ctx, e.log).With(
		zap.String("report", report),
		zap.Any("params", params),
		zap.Error(err),
	)
	if errors.Is(err, domain.ErrInvalidRange) {
		log.Debug("report rejected")
	} else {
		log.Error("report failed")
	}

	var zero T
	return zero, &domain.ReportError{Report: report, Params: params, Err: err}
}

// resolveRange turns an optional start/end pair into a validated range.
// ok is false when neither bound is given.
func resolveRange(start, end *domain.Date) (r domain.DateRange, ok bool, err error) {
	if start == nil && end == nil {
		return r, false, nil
	}
	if start == nil || end == nil {
		return r, false, fmt.Errorf("%w: start_date and end_date must be given together", domain.ErrInvalidRange)
	}
	r = domain.DateRange{Start: *start, End: *end}
	if err := r.Validate(); err != nil {
		return r, false, err
	}
	return r, true, nil
}

func (e *Engine) resolveYear(year int) (int, error) {
	if year == 0 {
		return e.Today().Year(), nil
	}
	if err := domain.ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

func (e *Engine) window(r domain.DateRange) (*time.Time, *time.Time) {
	from, to := r.Window(e.loc)
	return &from, &to
}

func monthName(m int) string {
	return time.Month(m).String()
}
