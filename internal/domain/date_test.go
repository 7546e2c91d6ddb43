package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.February, 29), d)
	assert.Equal(t, 20240229, d.Key())

	for _, s := range []string{"", "2024-13-01", "2023-02-29", "29/02/2024", "2024-02-29T00:00:00Z"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidRange, s)
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	instant := time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-31", DateOf(instant, time.UTC).String())
	assert.Equal(t, "2024-02-01", DateOf(instant, jakarta).String())
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Day Date `json:"day"`
	}

	b, err := json.Marshal(payload{Day: NewDate(2024, time.March, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-03-05"}`, string(b))

	b, err = json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":null}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-03-05"}`), &p))
	assert.Equal(t, NewDate(2024, time.March, 5), p.Day)

	require.NoError(t, json.Unmarshal([]byte(`{"day":null}`), &p))
	assert.True(t, p.Day.IsZero())

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"day":"March 5"}`), &p), ErrInvalidRange)
}

func TestDateRangeValidate(t *testing.T) {
	jan1 := NewDate(2024, time.January, 1)
	jan31 := NewDate(2024, time.January, 31)

	assert.NoError(t, DateRange{Start: jan1, End: jan31}.Validate())
	assert.NoError(t, DateRange{Start: jan1, End: jan1}.Validate())
	assert.ErrorIs(t, DateRange{Start: jan31, End: jan1}.Validate(), ErrInvalidRange)
	assert.ErrorIs(t, DateRange{Start: jan1}.Validate(), ErrInvalidRange)
}

func TestDateRangeWindowIsHalfOpen(t *testing.T) {
	r := DateRange{Start: NewDate(2024, time.January, 1), End: NewDate(2024, time.January, 31)}
	from, to := r.Window(time.UTC)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), to)

	last := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	assert.True(t, !last.Before(from) && last.Before(to))
}

func TestYearRange(t *testing.T) {
	r := YearRange(2024)
	assert.Equal(t, "2024-01-01", r.Start.String())
	assert.Equal(t, "2024-12-31", r.End.String())

	assert.NoError(t, ValidateYear(2024))
	assert.ErrorIs(t, ValidateYear(1969), ErrInvalidRange)
	assert.ErrorIs(t, ValidateYear(2101), ErrInvalidRange)
}

func TestReportErrorFormatsParams(t *testing.T) {
	err := &ReportError{
		Report: "range_summary",
		Params: map[string]string{"start_date": "2024-02-01", "end_date": "2024-01-01"},
		Err:    ErrInvalidRange,
	}
	assert.Equal(t, "report range_summary (end_date=2024-01-01 start_date=2024-02-01): invalid report range", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidRange))

	bare := &ReportError{Report: "dashboard", Err: ErrStoreUnavailable}
	assert.Equal(t, "report dashboard: transaction store unavailable", bare.Error())
}

func TestStatusCounts(t *testing.T) {
	var counts StatusCounts
	for _, s := range AllInvoiceStatuses() {
		assert.NoError(t, counts.Add(s))
	}
	assert.NoError(t, counts.Add(InvoiceStatusSuccess))
	assert.ErrorIs(t, counts.Add(InvoiceStatus("refunded")), ErrUnknownStatus)

	assert.Equal(t, StatusCounts{Pending: 1, Success: 2, Expired: 1, Failed: 1}, counts)
	assert.Equal(t, int64(5), counts.Total())
}

func TestParseInvoiceStatus(t *testing.T) {
	status, err := ParseInvoiceStatus("expired")
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusExpired, status)

	for _, raw := range []string{"refunded", "Success", ""} {
		_, err := ParseInvoiceStatus(raw)
		assert.ErrorIs(t, err, ErrUnknownStatus, raw)
	}
}
