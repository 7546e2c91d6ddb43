package reporting

import (
	"strconv"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

// StatusCountQuery optionally scopes status counts to one customer.
type StatusCountQuery struct {
	CustomerID *int64
}

func (q StatusCountQuery) params() map[string]string {
	p := map[string]string{}
	if q.CustomerID != nil {
		p["customer_id"] = strconv.FormatInt(*q.CustomerID, 10)
	}
	return p
}

// SeriesQuery selects a revenue series window. Start/End take precedence over Year.
type SeriesQuery struct {
	Year        int
	Start       *domain.Date
	End         *domain.Date
	Granularity domain.Granularity
}

func (q SeriesQuery) params() map[string]string {
	p := map[string]string{"granularity": string(q.Granularity)}
	if q.Year != 0 {
		p["year"] = strconv.Itoa(q.Year)
	}
	addRange(p, q.Start, q.End)
	return p
}

// RankingQuery selects a best-seller ranking.
type RankingQuery struct {
	Limit   int
	Start   *domain.Date
	End     *domain.Date
	GroupBy domain.RankingGroup
}

func (q RankingQuery) params() map[string]string {
	p := map[string]string{
		"limit":    strconv.Itoa(q.Limit),
		"group_by": string(q.GroupBy),
	}
	addRange(p, q.Start, q.End)
	return p
}

// CohortQuery selects the year of a cohort report. Zero means the current year.
type CohortQuery struct {
	Year int
}

func (q CohortQuery) params() map[string]string {
	p := map[string]string{}
	if q.Year != 0 {
		p["year"] = strconv.Itoa(q.Year)
	}
	return p
}

// RangeQuery selects a sales report range. Missing bounds default to month-to-date.
type RangeQuery struct {
	Start *domain.Date
	End   *domain.Date
}

func (q RangeQuery) params() map[string]string {
	p := map[string]string{}
	addRange(p, q.Start, q.End)
	return p
}

func yearParams(year int) map[string]string {
	p := map[string]string{}
	if year != 0 {
		p["year"] = strconv.Itoa(year)
	}
	return p
}

func addRange(p map[string]string, start, end *domain.Date) {
	if start != nil {
		p["start_date"] = start.String()
	}
	if end != nil {
		p["end_date"] = end.String()
	}
}
