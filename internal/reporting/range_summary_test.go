package reporting

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

func TestRangeSummaryJanuaryScenario(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "100", "2024-01-05T10:00:00Z", line(s.phone, 2, "50"))
	s.invoice(t, s.bob, domain.InvoiceStatusSuccess, "50", "2024-01-20T10:00:00Z", line(s.novel, 5, "10"))
	s.invoice(t, s.bob, domain.InvoiceStatusFailed, "75", "2024-01-10T10:00:00Z", line(s.phone, 1, "75"))

	report, err := newTestEngine(s.store).RangeSummary(context.Background(), RangeQuery{
		Start: day(t, "2024-01-01"),
		End:   day(t, "2024-01-31"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", report.Period.Start.String())
	assert.Equal(t, "2024-01-31", report.Period.End.String())
	assert.Equal(t, int64(2), report.TotalOrders)
	assert.Equal(t, "150", report.TotalRevenue.String())
	assert.Equal(t, "75", report.AvgOrderValue.String())

	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2024-01-05", report.Daily[0].Date.String())
	assert.Equal(t, "100", report.Daily[0].TotalSales.String())
	assert.Equal(t, int64(1), report.Daily[0].TotalOrders)
	assert.Equal(t, "2024-01-20", report.Daily[1].Date.String())
	assert.Equal(t, "50", report.Daily[1].TotalSales.String())

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, "Electronics", report.ByCategory[0].Name)
	assert.Equal(t, "100", report.ByCategory[0].TotalSales.String())
	assert.Equal(t, "Books", report.ByCategory[1].Name)
	assert.Equal(t, "50", report.ByCategory[1].TotalSales.String())
}

func TestRangeSummaryDailyTotalsMatchSummary(t *testing.T) {
	s := newShop(t)
	totals := []string{"19.99", "0.01", "250", "13.37", "42.5"}
	created := []string{
		"2024-02-01T00:00:00Z",
		"2024-02-01T23:59:59Z",
		"2024-02-14T12:00:00Z",
		"2024-02-28T09:30:00Z",
		"2024-02-29T23:59:59Z",
	}
	for i := range totals {
		s.invoice(t, s.alice, domain.InvoiceStatusSuccess, totals[i], created[i])
	}
	// outside the inclusive range on both ends
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "1000", "2024-01-31T23:59:59Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "1000", "2024-03-01T00:00:00Z")

	report, err := newTestEngine(s.store).RangeSummary(context.Background(), RangeQuery{
		Start: day(t, "2024-02-01"),
		End:   day(t, "2024-02-29"),
	})
	require.NoError(t, err)

	sum := decimal.Zero
	var orders int64
	for _, d := range report.Daily {
		sum = sum.Add(d.TotalSales)
		orders += d.TotalOrders
	}
	assert.True(t, sum.Equal(report.TotalRevenue), "daily %s != total %s", sum, report.TotalRevenue)
	assert.Equal(t, report.TotalOrders, orders)
	assert.Equal(t, "325.87", report.TotalRevenue.String())
	assert.True(t, report.AvgOrderValue.Equal(report.TotalRevenue.Div(decimal.NewFromInt(5))))
	assert.Len(t, report.Daily, 4)
}

func TestRangeSummaryEmptyRangeHasZeroAverage(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusPending, "100", "2024-01-05T10:00:00Z")

	report, err := newTestEngine(s.store).RangeSummary(context.Background(), RangeQuery{
		Start: day(t, "2024-01-01"),
		End:   day(t, "2024-01-31"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), report.TotalOrders)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.AvgOrderValue.IsZero())
	assert.NotNil(t, report.Daily)
	assert.Empty(t, report.Daily)
	assert.NotNil(t, report.ByCategory)
	assert.Empty(t, report.ByCategory)
}

func TestRangeSummaryDefaultsToMonthToDate(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "10", "2024-02-29T10:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "20", "2024-03-01T10:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "30", "2024-03-15T23:00:00Z")
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "40", "2024-03-16T10:00:00Z")

	report, err := newTestEngine(s.store).RangeSummary(context.Background(), RangeQuery{})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", report.Period.Start.String())
	assert.Equal(t, "2024-03-15", report.Period.End.String())
	assert.Equal(t, int64(2), report.TotalOrders)
	assert.Equal(t, "50", report.TotalRevenue.String())
}

func TestRangeSummaryCategoryTiesOrderedByName(t *testing.T) {
	s := newShop(t)
	s.invoice(t, s.alice, domain.InvoiceStatusSuccess, "20", "2024-01-05T10:00:00Z",
		line(s.phone, 1, "10"),
		line(s.novel, 1, "10"),
		line(s.orphan, 3, "1"),
	)

	report, err := newTestEngine(s.store).RangeSummary(context.Background(), RangeQuery{
		Start: day(t, "2024-01-01"),
		End:   day(t, "2024-01-31"),
	})
	require.NoError(t, err)

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, "Books", report.ByCategory[0].Name)
	assert.Equal(t, "Electronics", report.ByCategory[1].Name)
}

func TestRangeSummaryRejectsInvertedRange(t *testing.T) {
	engine := newTestEngine(newShop(t).store)

	_, err := engine.RangeSummary(context.Background(), RangeQuery{Start: day(t, "2024-03-20")})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
