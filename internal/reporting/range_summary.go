package reporting

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/repository"
)

type dailyAcc struct {
	date   domain.Date
	orders int64
	sales  decimal.Decimal
}

// RangeSummary summarises success invoices in an inclusive date range.
// Without bounds it covers the first of the current month through today.
// The invoice and category passes read from one store snapshot.
func (e *Engine) RangeSummary(ctx context.Context, q RangeQuery) (*domain.SalesReport, error) {
	return runReport(ctx, e, "range_summary", q.params(), func(ctx context.Context) (*domain.SalesReport, error) {
		period, err := e.resolveSalesPeriod(q)
		if err != nil {
			return nil, err
		}

		var report *domain.SalesReport
		err = e.store.Snapshot(ctx, func(store repository.TransactionStore) error {
			report, err = e.rangeSummary(ctx, store, period)
			return err
		})
		if err != nil {
			return nil, err
		}
		return report, nil
	})
}

// resolveSalesPeriod fills missing bounds with month-to-date defaults.
func (e *Engine) resolveSalesPeriod(q RangeQuery) (domain.DateRange, error) {
	today := e.Today()
	period := domain.DateRange{
		Start: domain.NewDate(today.Year(), today.Month(), 1),
		End:   today,
	}
	if q.Start != nil {
		period.Start = *q.Start
	}
	if q.End != nil {
		period.End = *q.End
	}
	if err := period.Validate(); err != nil {
		return period, err
	}
	return period, nil
}

func (e *Engine) rangeSummary(ctx context.Context, store repository.TransactionStore, period domain.DateRange) (*domain.SalesReport, error) {
	from, to := e.window(period)

	report := &domain.SalesReport{Period: period}
	daily := NewGrouper[int, dailyAcc]()
	err := store.ScanInvoices(ctx, repository.InvoiceFilter{From: from, To: to, Statuses: successOnly}, func(inv domain.Invoice) error {
		report.TotalOrders++
		report.TotalRevenue = report.TotalRevenue.Add(inv.GrandTotal)

		date := domain.DateOf(inv.CreatedAt, e.loc)
		daily.Add(date.Key(), func(acc *dailyAcc) {
			acc.date = date
			acc.orders++
			acc.sales = acc.sales.Add(inv.GrandTotal)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.AvgOrderValue = average(report.TotalRevenue, report.TotalOrders)

	categories := NewGrouper[int64, domain.CategorySales]()
	err = store.ScanSalesLines(ctx, repository.SalesLineFilter{From: from, To: to, Statuses: successOnly}, func(line domain.SalesLine) error {
		if line.CategoryID == 0 {
			return nil
		}
		categories.Add(line.CategoryID, func(c *domain.CategorySales) {
			c.ID = line.CategoryID
			c.Name = line.CategoryName
			c.TotalSales = c.TotalSales.Add(line.Subtotal())
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Daily = make([]domain.DailySales, 0, daily.Len())
	for _, g := range daily.Sorted(func(a, b Group[int, dailyAcc]) bool { return a.Key < b.Key }) {
		report.Daily = append(report.Daily, domain.DailySales{
			Date:        g.Value.date,
			TotalOrders: g.Value.orders,
			TotalSales:  g.Value.sales,
		})
	}

	report.ByCategory = make([]domain.CategorySales, 0, categories.Len())
	for _, g := range categories.Sorted(byCategorySales) {
		report.ByCategory = append(report.ByCategory, g.Value)
	}
	return report, nil
}

func byCategorySales(a, b Group[int64, domain.CategorySales]) bool {
	if c := a.Value.TotalSales.Cmp(b.Value.TotalSales); c != 0 {
		return c > 0
	}
	if a.Value.Name != b.Value.Name {
		return a.Value.Name < b.Value.Name
	}
	return a.Value.ID < b.Value.ID
}

// average returns total/count, or zero when count is zero.
func average(total decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count))
}
