package repository

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

var invoiceRowColumns = []string{"id", "invoice", "customer_id", "grand_total", "status", "created_at", "name", "created_at"}

func newMockStore(t *testing.T) (*PostgresTransactionStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresTransactionStore(db), mock
}

func TestPostgresScanInvoicesBuildsFilter(t *testing.T) {
	store, mock := newMockStore(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	customerID := int64(7)
	created := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	signup := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(invoiceRowColumns).
		AddRow(int64(1), "INV-1", int64(7), "150.00", "success", created, "Alice", signup).
		AddRow(int64(2), "INV-2", int64(7), "20.50", "failed", created.Add(time.Hour), nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE i.created_at >= $1 AND i.created_at < $2 AND i.status IN ($3, $4) AND i.customer_id = $5")).
		WithArgs(from, to, "success", "failed", customerID).
		WillReturnRows(rows)

	var got []domain.Invoice
	err := store.ScanInvoices(context.Background(), InvoiceFilter{
		From:       &from,
		To:         &to,
		Statuses:   []domain.InvoiceStatus{domain.InvoiceStatusSuccess, domain.InvoiceStatusFailed},
		CustomerID: &customerID,
	}, func(inv domain.Invoice) error {
		got = append(got, inv)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "INV-1", got[0].Number)
	assert.True(t, decimal.RequireFromString("150").Equal(got[0].GrandTotal))
	assert.Equal(t, domain.InvoiceStatusSuccess, got[0].Status)
	require.NotNil(t, got[0].Customer)
	assert.Equal(t, "Alice", got[0].Customer.Name)
	assert.Nil(t, got[1].Customer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresScanInvoicesWithoutFilter(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN customers c ON c.id = i.customer_id")).
		WillReturnRows(sqlmock.NewRows(invoiceRowColumns))

	calls := 0
	err := store.ScanInvoices(context.Background(), InvoiceFilter{}, func(domain.Invoice) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresScanStopsOnCallbackError(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM invoices i").WillReturnRows(sqlmock.NewRows(invoiceRowColumns).
		AddRow(int64(1), "INV-1", int64(7), "10", "pending", created, nil, nil).
		AddRow(int64(2), "INV-2", int64(7), "10", "pending", created, nil, nil))

	stop := errors.New("stop")
	calls := 0
	err := store.ScanInvoices(context.Background(), InvoiceFilter{}, func(domain.Invoice) error {
		calls++
		return stop
	})
	assert.Same(t, stop, err)
	assert.Equal(t, 1, calls)
}

func TestPostgresScanRejectsUnknownStatus(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM invoices i").WillReturnRows(sqlmock.NewRows(invoiceRowColumns).
		AddRow(int64(1), "INV-1", int64(7), "10", "Success", created, nil, nil).
		AddRow(int64(2), "INV-2", int64(7), "10", "refunded", created, nil, nil))

	var counts domain.StatusCounts
	err := store.ScanInvoices(context.Background(), InvoiceFilter{}, func(inv domain.Invoice) error {
		return counts.Add(inv.Status)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "failed to scan invoice", storeErr.Op)
	assert.Zero(t, counts.Total())
}

func TestPostgresScanSalesLinesRejectsUnknownStatus(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM invoice_details d").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "invoice_id", "product_id", "qty", "price", "created_at", "status", "customer_id", "name", "coalesce", "coalesce",
		}).AddRow(int64(11), int64(1), int64(3), int64(2), "50", created, "refunded", int64(7), "Phone", int64(4), "Gadgets"))

	calls := 0
	err := store.ScanSalesLines(context.Background(), SalesLineFilter{}, func(domain.SalesLine) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.Zero(t, calls)
}

func TestPostgresScanSalesLines(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE i.status IN ($1)")).
		WithArgs("success").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "invoice_id", "product_id", "qty", "price", "created_at", "status", "customer_id", "name", "coalesce", "coalesce",
		}).
			AddRow(int64(11), int64(1), int64(3), int64(2), "50", created, "success", int64(7), "Phone", int64(4), "Gadgets").
			AddRow(int64(12), int64(1), int64(5), int64(1), "9.99", created, "success", int64(7), "Orphan", int64(0), ""))

	var got []domain.SalesLine
	err := store.ScanSalesLines(context.Background(), SalesLineFilter{
		Statuses: []domain.InvoiceStatus{domain.InvoiceStatusSuccess},
	}, func(line domain.SalesLine) error {
		got = append(got, line)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Gadgets", got[0].CategoryName)
	assert.True(t, decimal.NewFromInt(100).Equal(got[0].Subtotal()))
	assert.Zero(t, got[1].CategoryID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresScanCustomers(t *testing.T) {
	store, mock := newMockStore(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	signup := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at FROM customers WHERE created_at >= $1 ORDER BY created_at, id")).
		WithArgs(from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(int64(1), "Alice", signup))

	var names []string
	err := store.ScanCustomers(context.Background(), CustomerFilter{From: &from}, func(c domain.Customer) error {
		names = append(names, c.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecentInvoices(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY i.created_at DESC, i.id DESC")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(invoiceRowColumns).
			AddRow(int64(2), "INV-2", int64(7), "10", "pending", created, "Alice", created))

	invoices, err := store.RecentInvoices(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, int64(2), invoices[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCountEntities(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("(SELECT COUNT(*) FROM customers)")).
		WillReturnRows(sqlmock.NewRows([]string{"customers", "products", "categories", "invoices"}).
			AddRow(int64(3), int64(10), int64(2), int64(40)))

	counts, err := store.CountEntities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.EntityCounts{Customers: 3, Products: 10, Categories: 2, Invoices: 40}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCategoryProductCounts(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY c.id, c.name")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).
			AddRow(int64(2), "Books", int64(0)).
			AddRow(int64(1), "Gadgets", int64(4)))

	counts, err := store.CategoryProductCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryProductCount{
		{ID: 2, Name: "Books", ProductCount: 0},
		{ID: 1, Name: "Gadgets", ProductCount: 4},
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSnapshotCommits(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery("FROM customers").WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))
	mock.ExpectQuery("FROM invoices i").WillReturnRows(sqlmock.NewRows(invoiceRowColumns))
	mock.ExpectCommit()

	err := store.Snapshot(context.Background(), func(tx TransactionStore) error {
		if err := tx.ScanCustomers(context.Background(), CustomerFilter{}, func(domain.Customer) error { return nil }); err != nil {
			return err
		}
		// nested snapshots reuse the open transaction
		return tx.Snapshot(context.Background(), func(inner TransactionStore) error {
			return inner.ScanInvoices(context.Background(), InvoiceFilter{}, func(domain.Invoice) error { return nil })
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSnapshotRollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := store.Snapshot(context.Background(), func(TransactionStore) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresConnectionFailureIsUnavailable(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM invoices i").
		WillReturnError(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})

	err := store.ScanInvoices(context.Background(), InvoiceFilter{}, func(domain.Invoice) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "failed to query invoices", storeErr.Op)
}

func TestPostgresQueryFailureIsNotUnavailable(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM categories c").WillReturnError(errors.New(`relation "categories" does not exist`))

	_, err := store.CategoryProductCounts(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}
