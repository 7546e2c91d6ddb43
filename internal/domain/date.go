package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
// The embedded time is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate normalises y-m-d into a Date, rolling over out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: malformed date %q", ErrInvalidRange, s)
	}
	return Date{t}, nil
}

// DateOf returns the calendar date of t as seen in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

// In returns the instant at which the date starts in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// Key is a sortable integer form of the date (yyyymmdd).
func (d Date) Key() int {
	return d.Year()*10000 + int(d.Month())*100 + d.Day()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// UnmarshalJSON implements custom unmarshaling for date-only strings
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements custom marshaling for date-only strings
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

// Validate rejects ranges whose end precedes their start.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidRange)
	}
	if r.End.Before(r.Start.Time) {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidRange, r.End, r.Start)
	}
	return nil
}

// Window returns the half-open instant window [start 00:00, end+1 00:00) in loc.
func (r DateRange) Window(loc *time.Location) (time.Time, time.Time) {
	return r.Start.In(loc), r.End.AddDays(1).In(loc)
}

// YearRange covers January 1st through December 31st of year.
func YearRange(year int) DateRange {
	return DateRange{Start: NewDate(year, time.January, 1), End: NewDate(year, time.December, 31)}
}

// MinReportYear and MaxReportYear bound the years accepted by reports.
const (
	MinReportYear = 1970
	MaxReportYear = 2100
)

// ValidateYear checks year against the accepted reporting bounds.
func ValidateYear(year int) error {
	if year < MinReportYear || year > MaxReportYear {
		return fmt.Errorf("%w: year %d outside [%d, %d]", ErrInvalidRange, year, MinReportYear, MaxReportYear)
	}
	return nil
}
