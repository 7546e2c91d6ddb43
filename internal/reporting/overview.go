package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/repository"
)

// Dashboard returns the status counts and the monthly revenue chart for a year.
func (e *Engine) Dashboard(ctx context.Context, year int) (*domain.Dashboard, error) {
	return runReport(ctx, e, "dashboard", yearParams(year), func(ctx context.Context) (*domain.Dashboard, error) {
		year, err := e.resolveYear(year)
		if err != nil {
			return nil, err
		}

		dashboard := &domain.Dashboard{}
		err = e.store.Snapshot(ctx, func(store repository.TransactionStore) error {
			counts, err := countStatuses(ctx, store, repository.InvoiceFilter{})
			if err != nil {
				return err
			}
			chart, err := e.revenueSeries(ctx, store, domain.YearRange(year), domain.GranularityMonth)
			if err != nil {
				return err
			}
			dashboard.Count = *counts
			dashboard.Chart = chart
			return nil
		})
		if err != nil {
			return nil, err
		}
		return dashboard, nil
	})
}

// DetailedStats returns store-wide totals, the latest transactions and the best sellers.
func (e *Engine) DetailedStats(ctx context.Context) (*domain.DetailedStats, error) {
	return runReport(ctx, e, "detailed_stats", nil, func(ctx context.Context) (*domain.DetailedStats, error) {
		stats := &domain.DetailedStats{}
		err := e.store.Snapshot(ctx, func(store repository.TransactionStore) error {
			err := store.ScanInvoices(ctx, repository.InvoiceFilter{Statuses: successOnly}, func(inv domain.Invoice) error {
				stats.TotalRevenue = stats.TotalRevenue.Add(inv.GrandTotal)
				return nil
			})
			if err != nil {
				return err
			}

			counts, err := store.CountEntities(ctx)
			if err != nil {
				return err
			}
			stats.TotalCustomers = counts.Customers
			stats.TotalProducts = counts.Products
			stats.TotalCategories = counts.Categories

			recent, err := store.RecentInvoices(ctx, recentTransactionsLimit)
			if err != nil {
				return err
			}
			stats.RecentTransactions = make([]domain.RecentTransaction, 0, len(recent))
			for _, inv := range recent {
				stats.RecentTransactions = append(stats.RecentTransactions, e.recentTransaction(inv))
			}

			stats.BestSellingProducts, err = rank(ctx, store, repository.SalesLineFilter{Statuses: successOnly}, domain.RankByProduct, DefaultTopLimit)
			return err
		})
		if err != nil {
			return nil, err
		}
		return stats, nil
	})
}

func (e *Engine) recentTransaction(inv domain.Invoice) domain.RecentTransaction {
	tx := domain.RecentTransaction{
		ID:         inv.ID,
		Invoice:    inv.Number,
		CustomerID: inv.CustomerID,
		GrandTotal: inv.GrandTotal,
		Status:     inv.Status,
		CreatedAt:  inv.CreatedAt.In(e.loc).Format(time.RFC3339),
	}
	if inv.Customer != nil {
		tx.CustomerName = inv.Customer.Name
	}
	return tx
}

type monthlyInvoiceAcc struct {
	invoices int64
	revenue  decimal.Decimal
}

// InvoiceStatistics returns all-time invoice totals plus a per-month breakdown of year.
func (e *Engine) InvoiceStatistics(ctx context.Context, year int) (*domain.InvoiceStatistics, error) {
	return runReport(ctx, e, "invoice_statistics", yearParams(year), func(ctx context.Context) (*domain.InvoiceStatistics, error) {
		year, err := e.resolveYear(year)
		if err != nil {
			return nil, err
		}

		stats := &domain.InvoiceStatistics{Year: year}
		var successCount int64
		monthly := NewGrouper[int, monthlyInvoiceAcc]()
		err = e.store.ScanInvoices(ctx, repository.InvoiceFilter{}, func(inv domain.Invoice) error {
			stats.TotalInvoices++
			if err := stats.StatusCounts.Add(inv.Status); err != nil {
				return err
			}
			success := inv.Status == domain.InvoiceStatusSuccess
			if success {
				successCount++
				stats.TotalRevenue = stats.TotalRevenue.Add(inv.GrandTotal)
			}

			created := inv.CreatedAt.In(e.loc)
			if created.Year() != year {
				return nil
			}
			monthly.Add(int(created.Month()), func(acc *monthlyInvoiceAcc) {
				acc.invoices++
				if success {
					acc.revenue = acc.revenue.Add(inv.GrandTotal)
				}
			})
			return nil
		})
		if err != nil {
			return nil, err
		}

		stats.AverageOrderValue = average(stats.TotalRevenue, successCount)
		stats.MonthlyStats = make([]domain.MonthlyInvoiceStats, 0, monthly.Len())
		for _, g := range monthly.Sorted(func(a, b Group[int, monthlyInvoiceAcc]) bool { return a.Key < b.Key }) {
			stats.MonthlyStats = append(stats.MonthlyStats, domain.MonthlyInvoiceStats{
				Month:         g.Key,
				MonthName:     monthName(g.Key),
				TotalInvoices: g.Value.invoices,
				TotalRevenue:  g.Value.revenue,
			})
		}
		return stats, nil
	})
}

// CustomerStatistics returns customer totals, this month's signups and the biggest spenders.
func (e *Engine) CustomerStatistics(ctx context.Context) (*domain.CustomerStatistics, error) {
	return runReport(ctx, e, "customer_statistics", nil, func(ctx context.Context) (*domain.CustomerStatistics, error) {
		today := e.Today()
		thisMonth := domain.DateRange{
			Start: domain.NewDate(today.Year(), today.Month(), 1),
			End:   domain.NewDate(today.Year(), today.Month()+1, 0),
		}
		from, to := e.window(thisMonth)

		stats := &domain.CustomerStatistics{}
		err := e.store.Snapshot(ctx, func(store repository.TransactionStore) error {
			counts, err := store.CountEntities(ctx)
			if err != nil {
				return err
			}
			stats.TotalCustomers = counts.Customers

			err = store.ScanCustomers(ctx, repository.CustomerFilter{From: from, To: to}, func(domain.Customer) error {
				stats.NewCustomersThisMonth++
				return nil
			})
			if err != nil {
				return err
			}

			spenders := NewGrouper[int64, domain.TopCustomer]()
			err = store.ScanInvoices(ctx, repository.InvoiceFilter{Statuses: successOnly}, func(inv domain.Invoice) error {
				if inv.Customer == nil {
					return nil
				}
				spenders.Add(inv.CustomerID, func(c *domain.TopCustomer) {
					c.ID = inv.CustomerID
					c.Name = inv.Customer.Name
					c.TotalOrders++
					c.TotalSpent = c.TotalSpent.Add(inv.GrandTotal)
				})
				return nil
			})
			if err != nil {
				return err
			}

			sorted := spenders.Sorted(byTopSpender)
			if len(sorted) > topCustomersLimit {
				sorted = sorted[:topCustomersLimit]
			}
			stats.TopCustomers = make([]domain.TopCustomer, 0, len(sorted))
			for _, g := range sorted {
				stats.TopCustomers = append(stats.TopCustomers, g.Value)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return stats, nil
	})
}

func byTopSpender(a, b Group[int64, domain.TopCustomer]) bool {
	if c := a.Value.TotalSpent.Cmp(b.Value.TotalSpent); c != 0 {
		return c > 0
	}
	if a.Value.TotalOrders != b.Value.TotalOrders {
		return a.Value.TotalOrders > b.Value.TotalOrders
	}
	return a.Value.ID < b.Value.ID
}

// CategoryProductCounts lists categories with how many products each holds.
func (e *Engine) CategoryProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error) {
	return runReport(ctx, e, "category_product_counts", nil, func(ctx context.Context) ([]domain.CategoryProductCount, error) {
		return e.store.CategoryProductCounts(ctx)
	})
}
