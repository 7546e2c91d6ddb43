package model

import (
	"fmt"
	"strings"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/reporting"
)

// DateRangeParams are the optional start_date/end_date query parameters
type DateRangeParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// Dates parses the range, collecting one ErrorDetail per malformed field.
func (p DateRangeParams) Dates() (start, end *domain.Date, details []ErrorDetail) {
	start, details = parseOptionalDate("start_date", p.StartDate, details)
	end, details = parseOptionalDate("end_date", p.EndDate, details)
	return start, end, details
}

func parseOptionalDate(field, value string, details []ErrorDetail) (*domain.Date, []ErrorDetail) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, details
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, append(details, ErrorDetail{Field: field, Message: "expected YYYY-MM-DD"})
	}
	return &d, details
}

// YearParams carries the optional year query parameter
type YearParams struct {
	Year int `form:"year"`
}

// StatusCountParams scope status counts to a customer
type StatusCountParams struct {
	CustomerID *int64 `form:"customer_id"`
}

// ToQuery converts the params into an engine query
func (p StatusCountParams) ToQuery() reporting.StatusCountQuery {
	return reporting.StatusCountQuery{CustomerID: p.CustomerID}
}

// RevenueParams are the revenue series query parameters
type RevenueParams struct {
	DateRangeParams
	Year        int    `form:"year"`
	Granularity string `form:"granularity"`
}

// ToQuery parses dates and granularity, collecting every invalid field
func (p RevenueParams) ToQuery() (reporting.SeriesQuery, []ErrorDetail) {
	start, end, details := p.Dates()
	return reporting.SeriesQuery{
		Year:        p.Year,
		Start:       start,
		End:         end,
		Granularity: domain.Granularity(strings.ToLower(strings.TrimSpace(p.Granularity))),
	}, details
}

// TopProductsParams are the ranking query parameters
type TopProductsParams struct {
	DateRangeParams
	Limit   int    `form:"limit"`
	GroupBy string `form:"group_by"`
}

// ToQuery parses dates and group_by, collecting every invalid field
func (p TopProductsParams) ToQuery() (reporting.RankingQuery, []ErrorDetail) {
	start, end, details := p.Dates()
	return reporting.RankingQuery{
		Limit:   p.Limit,
		Start:   start,
		End:     end,
		GroupBy: domain.RankingGroup(strings.ToLower(strings.TrimSpace(p.GroupBy))),
	}, details
}

// SalesReportParams are the range summary query parameters
type SalesReportParams struct {
	DateRangeParams
}

// ToQuery parses the optional range bounds
func (p SalesReportParams) ToQuery() (reporting.RangeQuery, []ErrorDetail) {
	start, end, details := p.Dates()
	return reporting.RangeQuery{Start: start, End: end}, details
}

// ExportParams add the document format to the sales report parameters
type ExportParams struct {
	SalesReportParams
	Format string `form:"format"`
}

// BindingDetail turns a query binding failure into an ErrorDetail
func BindingDetail(err error) ErrorDetail {
	return ErrorDetail{Field: "query", Message: fmt.Sprintf("invalid query parameters: %v", err)}
}
