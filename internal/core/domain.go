package core

import (
	"errors"
	"time"
)

type (
	// ExpenseRecord is one user-entered spending transaction. Field names
	// match the persisted slot layout: a JSON array of these objects.
	ExpenseRecord struct {
		ID       int64  `json:"id"`
		Date     string `json:"date"` // ISO-8601 YYYY-MM-DD, stored as given
		Category string `json:"category"`
		Amount   int64  `json:"amount"` // smallest currency unit
		Memo     string `json:"memo"`
	}

	// CategoryTotal is an amount aggregated under one category label.
	CategoryTotal struct {
		Name   string `json:"name"`
		Amount int64  `json:"amount"`
	}
)

// DefaultCategories is the built-in category set used when no category
// file is configured. The order drives summary bucket ordering.
var DefaultCategories = []string{"Food", "Transport", "Entertainment", "Other"}

var (
	ErrInvalidAmount = errors.New("invalid amount")
)

// DateLayout is the calendar date format used throughout: spend dates on
// records and the chronological ordering of CSV export.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date. Records keep their raw date
// string; parsing happens only where chronological order is needed.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// SortKey returns the record's date as a point in time for chronological
// ordering. Unparseable dates map to the zero time so they sort before
// every valid date instead of poisoning the sort.
func (r ExpenseRecord) SortKey() time.Time {
	t, err := ParseDate(r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
