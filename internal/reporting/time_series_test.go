package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

func TestRevenueSeriesEmptyYear(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "100", "2023-06-01T10:00:00Z")

	series, err := newTestEngine(s.store).RevenueSeries(context.Background(), SeriesQuery{Year: 2022})
	require.NoError(t, err)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestRevenueSeriesMonthlyBuckets(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "30", "2024-11-02T10:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "100", "2024-01-05T10:00:00Z")
	s.invoice(t, s.bob, domain.InvoiceStatusSuccess, "50.5", "2024-01-20T10:00:00Z")
	s.invoice(t, s.bob, domain.InvoiceStatusFailed, "75", "2024-02-10T10:00:00Z")
	s.invoice(t, s.bob, domain.InvoiceStatusSuccess, "5", "2023-12-31T23:59:59Z")

	series, err := newTestEngine(s.store).RevenueSeries(context.Background(), SeriesQuery{Year: 2024})
	require.NoError(t, err)

	require.Len(t, series, 2)
	assert.Equal(t, 1, series[0].Month)
	assert.Equal(t, "January", series[0].MonthName)
	assert.Equal(t, "January", series[0].Label)
	assert.Equal(t, "2024-01-01", series[0].Date.String())
	assert.Equal(t, int64(2), series[0].OrderCount)
	assert.Equal(t, "150.5", series[0].Total.String())
	assert.Equal(t, 11, series[1].Month)
	assert.Equal(t, "30", series[1].Total.String())

	for i, bucket := range series {
		assert.GreaterOrEqual(t, bucket.Month, 1)
		assert.LessOrEqual(t, bucket.Month, 12)
		if i > 0 {
			assert.Greater(t, bucket.Month, series[i-1].Month)
		}
	}
}

func TestRevenueSeriesMonthlyAcrossYears(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "40", "2025-01-05T10:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "10", "2024-01-15T10:00:00Z")
	s.invoice(t, s.bob, domain.InvoiceStatusSuccess, "25", "2024-12-10T10:00:00Z")

	series, err := newTestEngine(s.store).RevenueSeries(context.Background(), SeriesQuery{
		Start: day(t, "2024-01-01"),
		End:   day(t, "2025-01-31"),
	})
	require.NoError(t, err)

	require.Len(t, series, 3)
	assert.Equal(t, []string{"January 2024", "December 2024", "January 2025"},
		[]string{series[0].Label, series[1].Label, series[2].Label})
	assert.Equal(t, "2025-01-01", series[2].Date.String())
	assert.Equal(t, 1, series[2].Month)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date.Key(), series[i].Date.Key())
	}
}

func TestRevenueSeriesDefaultsToCurrentYear(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "10", "2024-02-02T10:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "10", "2023-02-02T10:00:00Z")

	series, err := newTestEngine(s.store).RevenueSeries(context.Background(), SeriesQuery{})
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "2024-02-01", series[0].Date.String())
}

func TestRevenueSeriesDailyWithinRange(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "10", "2024-03-02T10:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "15", "2024-03-02T18:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "20", "2024-03-01T08:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "99", "2024-03-04T08:00:00Z")

	series, err := newTestEngine(s.store).RevenueSeries(context.Background(), SeriesQuery{
		Granularity: domain.GranularityDay,
		Start:       day(t, "2024-03-01"),
		End:         day(t, "2024-03-03"),
	})
	require.NoError(t, err)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-03-01", series[0].Label)
	assert.Zero(t, series[0].Month)
	assert.Equal(t, "2024-03-02", series[1].Label)
	assert.Equal(t, int64(2), series[1].OrderCount)
	assert.Equal(t, "25", series[1].Total.String())
}

func TestRevenueSeriesBucketsInReportingLocation(t *testing.T) {
	s := newShop(t)
	// 23:30 UTC on Jan 31 is already February in UTC+7
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "10", "2024-01-31T23:30:00Z")

	wib := time.FixedZone("WIB", 7*60*60)
	series, err := newTestEngine(s.store, WithLocation(wib)).RevenueSeries(context.Background(), SeriesQuery{Year: 2024})
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 2, series[0].Month)
}

func TestRevenueSeriesRequiresBothBounds(t *testing.T) {
	engine := newTestEngine(newShop(t).store)

	_, err := engine.RevenueSeries(context.Background(), SeriesQuery{Start: day(t, "2024-01-01")})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
