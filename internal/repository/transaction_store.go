package repository

import (
	"context"
	"time"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

// InvoiceFilter narrows an invoice scan. From/To bound created_at as [From, To).
type InvoiceFilter struct {
	From       *time.Time
	To         *time.Time
	Statuses   []domain.InvoiceStatus
	CustomerID *int64
}

// SalesLineFilter narrows a sales line scan on the owning invoice.
type SalesLineFilter struct {
	From     *time.Time
	To       *time.Time
	Statuses []domain.InvoiceStatus
}

// CustomerFilter bounds a customer scan on signup time as [From, To).
type CustomerFilter struct {
	From *time.Time
	To   *time.Time
}

// TransactionStore is the read side of the shop database used by reports.
//
// Scan methods stream rows to fn in their natural order and stop at the first
// error fn returns, which is handed back unchanged. Invoices are ordered by
// (created_at, id), sales lines by line item id, customers by (created_at, id).
type TransactionStore interface {
	ScanInvoices(ctx context.Context, filter InvoiceFilter, fn func(domain.Invoice) error) error
	ScanSalesLines(ctx context.Context, filter SalesLineFilter, fn func(domain.SalesLine) error) error
	ScanCustomers(ctx context.Context, filter CustomerFilter, fn func(domain.Customer) error) error
	RecentInvoices(ctx context.Context, limit int) ([]domain.Invoice, error)
	CountEntities(ctx context.Context) (domain.EntityCounts, error)
	CategoryProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error)
	// Snapshot runs fn against a consistent read-only view of the store.
	Snapshot(ctx context.Context, fn func(TransactionStore) error) error
}

func statusAllowed(statuses []domain.InvoiceStatus, status domain.InvoiceStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func inWindow(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}
	return true
}
