package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresTransactionStore implements TransactionStore over database/sql with the pgx driver
type PostgresTransactionStore struct {
	db *sql.DB
	q  queryer
}

// NewPostgresTransactionStore creates a store reading through db
func NewPostgresTransactionStore(db *sql.DB) *PostgresTransactionStore {
	return &PostgresTransactionStore{db: db, q: db}
}

const invoiceColumns = `
		i.id, i.invoice, i.customer_id, i.grand_total, i.status, i.created_at,
		c.name, c.created_at
	FROM invoices i
	LEFT JOIN customers c ON c.id = i.customer_id`

// whereBuilder accumulates numbered placeholders the way pgx expects them.
type whereBuilder struct {
	conditions []string
	args       []any
}

func (w *whereBuilder) add(format string, value any) {
	w.args = append(w.args, value)
	w.conditions = append(w.conditions, fmt.Sprintf(format, len(w.args)))
}

func (w *whereBuilder) addStatuses(column string, statuses []domain.InvoiceStatus) {
	if len(statuses) == 0 {
		return
	}
	placeholders := make([]string, 0, len(statuses))
	for _, s := range statuses {
		w.args = append(w.args, string(s))
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(w.args)))
	}
	w.conditions = append(w.conditions, fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")))
}

func (w *whereBuilder) clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conditions, " AND ")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (domain.Invoice, error) {
	var (
		inv             domain.Invoice
		status          string
		customerName    sql.NullString
		customerCreated sql.NullTime
	)
	if err := row.Scan(&inv.ID, &inv.Number, &inv.CustomerID, &inv.GrandTotal, &status, &inv.CreatedAt,
		&customerName, &customerCreated); err != nil {
		return inv, err
	}
	var err error
	if inv.Status, err = domain.ParseInvoiceStatus(status); err != nil {
		return inv, err
	}
	if customerCreated.Valid {
		inv.Customer = &domain.Customer{
			ID:        inv.CustomerID,
			Name:      customerName.String,
			CreatedAt: customerCreated.Time,
		}
	}
	return inv, nil
}

// ScanInvoices streams invoices joined with their customer
func (s *PostgresTransactionStore) ScanInvoices(ctx context.Context, filter InvoiceFilter, fn func(domain.Invoice) error) error {
	var where whereBuilder
	if filter.From != nil {
		where.add("i.created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		where.add("i.created_at < $%d", *filter.To)
	}
	where.addStatuses("i.status", filter.Statuses)
	if filter.CustomerID != nil {
		where.add("i.customer_id = $%d", *filter.CustomerID)
	}

	query := fmt.Sprintf("SELECT %s\n\t%s\n\tORDER BY i.created_at, i.id", invoiceColumns, where.clause())
	rows, err := s.q.QueryContext(ctx, query, where.args...)
	if err != nil {
		return storeError("failed to query invoices", err)
	}
	defer rows.Close()

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return storeError("failed to scan invoice", err)
		}
		if err := fn(inv); err != nil {
			return err
		}
	}
	return storeError("error iterating invoices", rows.Err())
}

// ScanSalesLines streams line items joined with invoice, product and category
func (s *PostgresTransactionStore) ScanSalesLines(ctx context.Context, filter SalesLineFilter, fn func(domain.SalesLine) error) error {
	var where whereBuilder
	if filter.From != nil {
		where.add("i.created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		where.add("i.created_at < $%d", *filter.To)
	}
	where.addStatuses("i.status", filter.Statuses)

	query := fmt.Sprintf(`
		SELECT
			d.id, d.invoice_id, d.product_id, d.qty, d.price,
			i.created_at, i.status, i.customer_id,
			p.name, COALESCE(cat.id, 0), COALESCE(cat.name, '')
		FROM invoice_details d
		JOIN invoices i ON i.id = d.invoice_id
		JOIN products p ON p.id = d.product_id
		LEFT JOIN categories cat ON cat.id = p.category_id
		%s
		ORDER BY d.id
	`, where.clause())
	rows, err := s.q.QueryContext(ctx, query, where.args...)
	if err != nil {
		return storeError("failed to query sales lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line   domain.SalesLine
			status string
		)
		if err := rows.Scan(&line.ID, &line.InvoiceID, &line.ProductID, &line.Qty, &line.Price,
			&line.InvoiceCreatedAt, &status, &line.CustomerID,
			&line.ProductName, &line.CategoryID, &line.CategoryName); err != nil {
			return storeError("failed to scan sales line", err)
		}
		var err error
		if line.InvoiceStatus, err = domain.ParseInvoiceStatus(status); err != nil {
			return storeError("failed to scan sales line", err)
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return storeError("error iterating sales lines", rows.Err())
}

// ScanCustomers streams customers ordered by signup time
func (s *PostgresTransactionStore) ScanCustomers(ctx context.Context, filter CustomerFilter, fn func(domain.Customer) error) error {
	var where whereBuilder
	if filter.From != nil {
		where.add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		where.add("created_at < $%d", *filter.To)
	}

	query := fmt.Sprintf("SELECT id, name, created_at FROM customers %s ORDER BY created_at, id", where.clause())
	rows, err := s.q.QueryContext(ctx, query, where.args...)
	if err != nil {
		return storeError("failed to query customers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return storeError("failed to scan customer", err)
		}
		if err := fn(c); err != nil {
			return err
		}
	}
	return storeError("error iterating customers", rows.Err())
}

// RecentInvoices returns the newest invoices of any status
func (s *PostgresTransactionStore) RecentInvoices(ctx context.Context, limit int) ([]domain.Invoice, error) {
	query := fmt.Sprintf("SELECT %s\n\tORDER BY i.created_at DESC, i.id DESC\n\tLIMIT $1", invoiceColumns)
	rows, err := s.q.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, storeError("failed to query recent invoices", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, storeError("failed to scan invoice", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating recent invoices", err)
	}
	return invoices, nil
}

// CountEntities counts customers, products, categories and invoices in one round trip
func (s *PostgresTransactionStore) CountEntities(ctx context.Context) (domain.EntityCounts, error) {
	var counts domain.EntityCounts
	err := s.q.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM invoices)
	`).Scan(&counts.Customers, &counts.Products, &counts.Categories, &counts.Invoices)
	if err != nil {
		return counts, storeError("failed to count entities", err)
	}
	return counts, nil
}

// CategoryProductCounts lists every category with the number of products in it
func (s *PostgresTransactionStore) CategoryProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT c.id, c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name, c.id
	`)
	if err != nil {
		return nil, storeError("failed to query category product counts", err)
	}
	defer rows.Close()

	counts := []domain.CategoryProductCount{}
	for rows.Next() {
		var c domain.CategoryProductCount
		if err := rows.Scan(&c.ID, &c.Name, &c.ProductCount); err != nil {
			return nil, storeError("failed to scan category product count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating category product counts", err)
	}
	return counts, nil
}

// Snapshot runs fn inside a read-only repeatable-read transaction.
// Calls made from inside an existing snapshot reuse it.
func (s *PostgresTransactionStore) Snapshot(ctx context.Context, fn func(TransactionStore) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return storeError("failed to begin snapshot", err)
	}

	if err := fn(&PostgresTransactionStore{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, storeError("failed to rollback snapshot", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeError("failed to commit snapshot", err)
	}
	return nil
}

var _ TransactionStore = (*PostgresTransactionStore)(nil)
