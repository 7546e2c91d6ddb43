package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidRange is returned for malformed report parameters.
	ErrInvalidRange = errors.New("invalid report range")
	// ErrStoreUnavailable is matched by store errors caused by a lost or refused connection.
	ErrStoreUnavailable = errors.New("transaction store unavailable")
	// ErrUnknownStatus is returned for invoice statuses outside the fixed taxonomy.
	ErrUnknownStatus = errors.New("unknown invoice status")
)

// ReportError names the aggregate that failed and the parameters it ran with.
type ReportError struct {
	Report string
	Params map[string]string
	Err    error
}

func (e *ReportError) Error() string {
	if len(e.Params) == 0 {
		return fmt.Sprintf("report %s: %v", e.Report, e.Err)
	}
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Params[k])
	}
	return fmt.Sprintf("report %s (%s): %v", e.Report, strings.Join(parts, " "), e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
