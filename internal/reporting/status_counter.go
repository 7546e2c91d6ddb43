package reporting

import (
	"context"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/repository"
)

// StatusCounts counts invoices per status, optionally for a single customer.
func (e *Engine) StatusCounts(ctx context.Context, q StatusCountQuery) (*domain.StatusCounts, error) {
	return runReport(ctx, e, "status_counts", q.params(), func(ctx context.Context) (*domain.StatusCounts, error) {
		return countStatuses(ctx, e.store, repository.InvoiceFilter{CustomerID: q.CustomerID})
	})
}

func countStatuses(ctx context.Context, store repository.TransactionStore, filter repository.InvoiceFilter) (*domain.StatusCounts, error) {
	counts := &domain.StatusCounts{}
	err := store.ScanInvoices(ctx, filter, func(inv domain.Invoice) error {
		return counts.Add(inv.Status)
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
