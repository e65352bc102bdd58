package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// DateLayout is the calendar date format accepted and produced by the API.
const DateLayout = "2006-01-02"

// Date is a calendar date carried over JSON as "YYYY-MM-DD".
// RFC 3339 timestamps are accepted and truncated to their date.
type Date struct {
	time.Time
}

// NewDate wraps t, dropping its clock part.
func NewDate(t time.Time) Date {
	return Date{Time: domain.NormalizeDate(t)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// ParseDate parses a YYYY-MM-DD or RFC 3339 string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
		}
	}
	return domain.NormalizeDate(t), nil
}

// ParseOptionalDate returns nil for an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
