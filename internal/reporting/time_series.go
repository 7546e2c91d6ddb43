package reporting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/repository"
)

type seriesAcc struct {
	date  domain.Date
	count int64
	total decimal.Decimal
}

// RevenueSeries sums success invoices per month or per day.
// Buckets without sales are omitted; an empty window yields an empty slice.
func (e *Engine) RevenueSeries(ctx context.Context, q SeriesQuery) ([]domain.SeriesBucket, error) {
	return runReport(ctx, e, "revenue_series", q.params(), func(ctx context.Context) ([]domain.SeriesBucket, error) {
		granularity, window, err := e.resolveSeries(q)
		if err != nil {
			return nil, err
		}
		return e.revenueSeries(ctx, e.store, window, granularity)
	})
}

func (e *Engine) resolveSeries(q SeriesQuery) (domain.Granularity, domain.DateRange, error) {
	granularity := q.Granularity
	switch granularity {
	case "":
		granularity = domain.GranularityMonth
	case domain.GranularityMonth, domain.GranularityDay:
	default:
		return "", domain.DateRange{}, fmt.Errorf("%w: unknown granularity %q", domain.ErrInvalidRange, q.Granularity)
	}

	window, ok, err := resolveRange(q.Start, q.End)
	if err != nil {
		return "", window, err
	}
	if ok {
		return granularity, window, nil
	}

	year, err := e.resolveYear(q.Year)
	if err != nil {
		return "", window, err
	}
	return granularity, domain.YearRange(year), nil
}

func (e *Engine) revenueSeries(ctx context.Context, store repository.TransactionStore, window domain.DateRange, granularity domain.Granularity) ([]domain.SeriesBucket, error) {
	from, to := e.window(window)
	groups := NewGrouper[int, seriesAcc]()
	err := store.ScanInvoices(ctx, repository.InvoiceFilter{From: from, To: to, Statuses: successOnly}, func(inv domain.Invoice) error {
		date := domain.DateOf(inv.CreatedAt, e.loc)
		if granularity == domain.GranularityMonth {
			date = domain.NewDate(date.Year(), date.Month(), 1)
		}
		groups.Add(date.Key(), func(acc *seriesAcc) {
			acc.date = date
			acc.count++
			acc.total = acc.total.Add(inv.GrandTotal)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// month names repeat across years, so multi-year windows carry the year in the label
	multiYear := window.Start.Year() != window.End.Year()
	sorted := groups.Sorted(func(a, b Group[int, seriesAcc]) bool { return a.Key < b.Key })
	buckets := make([]domain.SeriesBucket, 0, len(sorted))
	for _, g := range sorted {
		bucket := domain.SeriesBucket{
			Date:       g.Value.date,
			Label:      g.Value.date.String(),
			OrderCount: g.Value.count,
			Total:      g.Value.total,
		}
		if granularity == domain.GranularityMonth {
			bucket.Month = int(g.Value.date.Month())
			bucket.MonthName = monthName(bucket.Month)
			bucket.Label = bucket.MonthName
			if multiYear {
				bucket.Label = fmt.Sprintf("%s %d", bucket.MonthName, g.Value.date.Year())
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}
