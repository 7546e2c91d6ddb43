package reporting

import (
	"context"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/repository"
)

// Cohort reports monthly signups and monthly returning buyers for a year.
//
// A customer counts as returning in a month when one of their success
// purchases that month happened more than RetentionWindowDays after signup.
// Each customer is counted at most once per month.
func (e *Engine) Cohort(ctx context.Context, q CohortQuery) (*domain.CohortReport, error) {
	return runReport(ctx, e, "cohort", q.params(), func(ctx context.Context) (*domain.CohortReport, error) {
		year, err := e.resolveYear(q.Year)
		if err != nil {
			return nil, err
		}

		var report *domain.CohortReport
		err = e.store.Snapshot(ctx, func(store repository.TransactionStore) error {
			report, err = e.cohort(ctx, store, year)
			return err
		})
		if err != nil {
			return nil, err
		}
		return report, nil
	})
}

func (e *Engine) cohort(ctx context.Context, store repository.TransactionStore, year int) (*domain.CohortReport, error) {
	from, to := e.window(domain.YearRange(year))

	signups := NewGrouper[int, int64]()
	err := store.ScanCustomers(ctx, repository.CustomerFilter{From: from, To: to}, func(c domain.Customer) error {
		signups.Add(int(c.CreatedAt.In(e.loc).Month()), func(n *int64) { *n++ })
		return nil
	})
	if err != nil {
		return nil, err
	}

	returning := NewGrouper[int, map[int64]struct{}]()
	err = store.ScanInvoices(ctx, repository.InvoiceFilter{From: from, To: to, Statuses: successOnly}, func(inv domain.Invoice) error {
		if inv.Customer == nil {
			return nil
		}
		threshold := inv.Customer.CreatedAt.In(e.loc).AddDate(0, 0, RetentionWindowDays)
		if !inv.CreatedAt.After(threshold) {
			return nil
		}
		returning.Add(int(inv.CreatedAt.In(e.loc).Month()), func(customers *map[int64]struct{}) {
			if *customers == nil {
				*customers = make(map[int64]struct{})
			}
			(*customers)[inv.CustomerID] = struct{}{}
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	byMonth := func(a, b Group[int, int64]) bool { return a.Key < b.Key }
	report := &domain.CohortReport{
		Year:        year,
		Acquisition: make([]domain.AcquisitionBucket, 0, signups.Len()),
		Retention:   make([]domain.RetentionBucket, 0, returning.Len()),
	}
	for _, g := range signups.Sorted(byMonth) {
		report.Acquisition = append(report.Acquisition, domain.AcquisitionBucket{
			Month:        g.Key,
			MonthName:    monthName(g.Key),
			NewCustomers: g.Value,
		})
	}
	for _, g := range returning.Sorted(func(a, b Group[int, map[int64]struct{}]) bool { return a.Key < b.Key }) {
		report.Retention = append(report.Retention, domain.RetentionBucket{
			Month:              g.Key,
			MonthName:          monthName(g.Key),
			ReturningCustomers: int64(len(g.Value)),
		})
	}
	return report, nil
}
