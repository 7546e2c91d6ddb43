package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StatusCounts holds the number of invoices in each status. Every status is always present.
type StatusCounts struct {
	Pending int64 `json:"pending"`
	Success int64 `json:"success"`
	Expired int64 `json:"expired"`
	Failed  int64 `json:"failed"`
}

// Add counts one invoice of the given status. Unknown statuses fail with ErrUnknownStatus.
func (c *StatusCounts) Add(status InvoiceStatus) error {
	switch status {
	case InvoiceStatusPending:
		c.Pending++
	case InvoiceStatusSuccess:
		c.Success++
	case InvoiceStatusExpired:
		c.Expired++
	case InvoiceStatusFailed:
		c.Failed++
	default:
		return fmt.Errorf("%w %q", ErrUnknownStatus, status)
	}
	return nil
}

// Total is the number of counted invoices.
func (c StatusCounts) Total() int64 {
	return c.Pending + c.Success + c.Expired + c.Failed
}

// Granularity selects the bucket width of a revenue series.
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityDay   Granularity = "day"
)

// SeriesBucket is one point of a revenue series. Month and MonthName are set for month buckets only.
type SeriesBucket struct {
	Month      int             `json:"month,omitempty"`
	MonthName  string          `json:"month_name,omitempty"`
	Date       Date            `json:"date"`
	Label      string          `json:"label"`
	OrderCount int64           `json:"order_count"`
	Total      decimal.Decimal `json:"total"`
}

// RankingGroup selects what a best-seller ranking groups line items by.
type RankingGroup string

const (
	RankByProduct  RankingGroup = "product"
	RankByCategory RankingGroup = "category"
)

// RankingEntry is one row of a best-seller ranking. ProductID is set for product
// rankings and CategoryID for category rankings.
type RankingEntry struct {
	ProductID  int64           `json:"product_id,omitempty"`
	CategoryID int64           `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	QtySold    int64           `json:"qty_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// AcquisitionBucket counts the customers that signed up in one month.
type AcquisitionBucket struct {
	Month        int    `json:"month"`
	MonthName    string `json:"month_name"`
	NewCustomers int64  `json:"new_customers"`
}

// RetentionBucket counts the returning customers that bought in one month.
type RetentionBucket struct {
	Month              int    `json:"month"`
	MonthName          string `json:"month_name"`
	ReturningCustomers int64  `json:"returning_customers"`
}

// CohortReport pairs monthly signups with monthly returning buyers.
type CohortReport struct {
	Year        int                 `json:"year"`
	Acquisition []AcquisitionBucket `json:"acquisition"`
	Retention   []RetentionBucket   `json:"retention"`
}

// SalesSummary holds the totals of a range summary.
type SalesSummary struct {
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// DailySales is one day of a range summary.
type DailySales struct {
	Date        Date            `json:"date"`
	TotalOrders int64           `json:"total_orders"`
	TotalSales  decimal.Decimal `json:"total_sales"`
}

// CategorySales is the success revenue of one category inside a range summary.
type CategorySales struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// SalesReport summarises success invoices inside an inclusive date range.
// The totals are flattened next to period.
type SalesReport struct {
	Period DateRange `json:"period"`
	SalesSummary
	Daily      []DailySales    `json:"daily"`
	ByCategory []CategorySales `json:"by_category"`
}

// Dashboard is the admin landing payload.
type Dashboard struct {
	Count StatusCounts   `json:"count"`
	Chart []SeriesBucket `json:"chart"`
}

// RecentTransaction is one invoice of the recent activity list.
type RecentTransaction struct {
	ID           int64           `json:"id"`
	Invoice      string          `json:"invoice"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	Status       InvoiceStatus   `json:"status"`
	CreatedAt    string          `json:"created_at"`
}

// DetailedStats holds the store-wide statistics.
type DetailedStats struct {
	TotalRevenue        decimal.Decimal     `json:"total_revenue"`
	TotalCustomers      int64               `json:"total_customers"`
	TotalProducts       int64               `json:"total_products"`
	TotalCategories     int64               `json:"total_categories"`
	RecentTransactions  []RecentTransaction `json:"recent_transactions"`
	BestSellingProducts []RankingEntry      `json:"best_selling_products"`
}

// MonthlyInvoiceStats counts all invoices and sums success revenue for one month.
type MonthlyInvoiceStats struct {
	Month         int             `json:"month"`
	MonthName     string          `json:"month_name"`
	TotalInvoices int64           `json:"total_invoices"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// InvoiceStatistics holds all-time invoice totals and the monthly breakdown of Year.
type InvoiceStatistics struct {
	Year              int                   `json:"year"`
	TotalInvoices     int64                 `json:"total_invoices"`
	TotalRevenue      decimal.Decimal       `json:"total_revenue"`
	AverageOrderValue decimal.Decimal       `json:"average_order_value"`
	StatusCounts      StatusCounts          `json:"status_counts"`
	MonthlyStats      []MonthlyInvoiceStats `json:"monthly_stats"`
}

// TopCustomer is one customer ranked by success spend.
type TopCustomer struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	TotalOrders int64           `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

// CustomerStatistics holds customer totals and the top spenders.
type CustomerStatistics struct {
	TotalCustomers        int64         `json:"total_customers"`
	NewCustomersThisMonth int64         `json:"new_customers_this_month"`
	TopCustomers          []TopCustomer `json:"top_customers"`
}

// CategoryProductCount is a category with the number of its products.
type CategoryProductCount struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count"`
}
