package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusSuccess InvoiceStatus = "success"
	InvoiceStatusExpired InvoiceStatus = "expired"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

// AllInvoiceStatuses returns the fixed status taxonomy in reporting order.
func AllInvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{
		InvoiceStatusPending,
		InvoiceStatusSuccess,
		InvoiceStatusExpired,
		InvoiceStatusFailed,
	}
}

// ParseInvoiceStatus converts a stored status string into an InvoiceStatus.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	for _, st := range AllInvoiceStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownStatus, s)
}

// Customer is a shop customer; CreatedAt is the signup instant.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Category groups products.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	CategoryID int64           `json:"category_id"`
	Price      decimal.Decimal `json:"price"`
}

// Invoice is an order header. Customer is nil when the referenced customer row is missing.
type Invoice struct {
	ID         int64           `json:"id"`
	Number     string          `json:"invoice"`
	CustomerID int64           `json:"customer_id"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Status     InvoiceStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	Customer   *Customer       `json:"customer,omitempty"`
}

// LineItem is one product line of an invoice.
type LineItem struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"invoice_id"`
	ProductID int64           `json:"product_id"`
	Qty       int64           `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

// Subtotal returns price × qty.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Qty))
}

// SalesLine is a line item joined with its invoice, product and category.
// CategoryID is zero when the product's category does not exist.
type SalesLine struct {
	LineItem
	InvoiceCreatedAt time.Time
	InvoiceStatus    InvoiceStatus
	CustomerID       int64
	ProductName      string
	CategoryID       int64
	CategoryName     string
}

// EntityCounts holds row counts of the catalog and customer tables.
type EntityCounts struct {
	Customers  int64
	Products   int64
	Categories int64
	Invoices   int64
}
