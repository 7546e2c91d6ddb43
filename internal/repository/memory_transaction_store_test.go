package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

func TestMemoryStoreScansInOrder(t *testing.T) {
	store := NewMemoryTransactionStore()
	cust := store.AddCustomer(domain.Customer{Name: "Alice", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	late := store.AddInvoice(domain.Invoice{CustomerID: cust.ID, Status: domain.InvoiceStatusSuccess, CreatedAt: base.Add(time.Hour)})
	early := store.AddInvoice(domain.Invoice{CustomerID: cust.ID, Status: domain.InvoiceStatusPending, CreatedAt: base})
	store.AddInvoice(domain.Invoice{CustomerID: 999, Status: domain.InvoiceStatusSuccess, CreatedAt: base.Add(2 * time.Hour)})

	var ids []int64
	var withCustomer []bool
	err := store.ScanInvoices(context.Background(), InvoiceFilter{}, func(inv domain.Invoice) error {
		ids = append(ids, inv.ID)
		withCustomer = append(withCustomer, inv.Customer != nil)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Equal(t, []int64{early.ID, late.ID}, ids[:2])
	assert.Equal(t, []bool{true, true, false}, withCustomer)
}

func TestMemoryStoreFilters(t *testing.T) {
	store := NewMemoryTransactionStore()
	jan := time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	store.AddInvoice(domain.Invoice{CustomerID: 1, Status: domain.InvoiceStatusSuccess, CreatedAt: jan})
	store.AddInvoice(domain.Invoice{CustomerID: 2, Status: domain.InvoiceStatusFailed, CreatedAt: jan})
	store.AddInvoice(domain.Invoice{CustomerID: 1, Status: domain.InvoiceStatusSuccess, CreatedAt: feb})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	customer := int64(1)
	count := 0
	err := store.ScanInvoices(context.Background(), InvoiceFilter{
		From:       &from,
		To:         &feb,
		Statuses:   []domain.InvoiceStatus{domain.InvoiceStatusSuccess},
		CustomerID: &customer,
	}, func(domain.Invoice) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStoreSalesLinesSkipDanglingRows(t *testing.T) {
	store := NewMemoryTransactionStore()
	cat := store.AddCategory(domain.Category{Name: "Gadgets"})
	phone := store.AddProduct(domain.Product{Name: "Phone", CategoryID: cat.ID})
	orphan := store.AddProduct(domain.Product{Name: "Orphan", CategoryID: 404})
	store.AddInvoice(domain.Invoice{Status: domain.InvoiceStatusSuccess, CreatedAt: time.Now()},
		domain.LineItem{ProductID: phone.ID, Qty: 1, Price: decimal.NewFromInt(10)},
		domain.LineItem{ProductID: orphan.ID, Qty: 2, Price: decimal.NewFromInt(5)},
		domain.LineItem{ProductID: 12345, Qty: 1, Price: decimal.NewFromInt(1)},
	)

	var lines []domain.SalesLine
	err := store.ScanSalesLines(context.Background(), SalesLineFilter{}, func(l domain.SalesLine) error {
		lines = append(lines, l)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Gadgets", lines[0].CategoryName)
	assert.Zero(t, lines[1].CategoryID)
	assert.Less(t, lines[0].ID, lines[1].ID)
}

func TestMemoryStoreRecentInvoices(t *testing.T) {
	store := NewMemoryTransactionStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		store.AddInvoice(domain.Invoice{Number: fmt.Sprintf("INV-%d", i), CreatedAt: base.AddDate(0, 0, i)})
	}

	recent, err := store.RecentInvoices(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "INV-3", recent[0].Number)
	assert.Equal(t, "INV-2", recent[1].Number)
}

func TestMemoryStoreSnapshotIsFrozen(t *testing.T) {
	store := NewMemoryTransactionStore()
	store.AddCustomer(domain.Customer{Name: "Alice"})

	err := store.Snapshot(context.Background(), func(tx TransactionStore) error {
		store.AddCustomer(domain.Customer{Name: "Bob"})
		counts, err := tx.CountEntities(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts.Customers)
		return nil
	})
	require.NoError(t, err)

	counts, err := store.CountEntities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Customers)
}

func TestMemoryStoreHonoursCancellation(t *testing.T) {
	store := NewMemoryTransactionStore()
	store.AddCustomer(domain.Customer{Name: "Alice"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.ScanCustomers(ctx, CustomerFilter{}, func(domain.Customer) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"bad connection", driver.ErrBadConn, true},
		{"connection done", sql.ErrConnDone, true},
		{"closed pool", errors.New("closed pool"), true},
		{"wrapped", fmt.Errorf("query: %w", driver.ErrBadConn), true},
		{"no rows", sql.ErrNoRows, false},
		{"syntax", errors.New(`syntax error at or near "FORM"`), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storeError("op", tt.err)
			assert.Equal(t, tt.unavailable, errors.Is(err, domain.ErrStoreUnavailable))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "op: ")
		})
	}
	assert.NoError(t, storeError("op", nil))
}
