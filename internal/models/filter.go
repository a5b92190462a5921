package models

import (
	"fmt"
	"strings"
	"time"
)

// ListFilter restricts an application listing to an inclusive creation-date
// range. Nil bounds are open.
type ListFilter struct {
	Start *time.Time
	End   *time.Time
}

// NewListFilter parses YYYY-MM-DD bounds in loc. The start is taken at the
// beginning of its day and the end at the last millisecond of its day.
func NewListFilter(start, end string, loc *time.Location) (ListFilter, error) {
	if loc == nil {
		loc = time.UTC
	}
	var f ListFilter

	if start = strings.TrimSpace(start); start != "" {
		d, err := time.ParseInLocation("2006-01-02", start, loc)
		if err != nil {
			return ListFilter{}, fmt.Errorf("%w: start %q", ErrInvalidDateRange, start)
		}
		f.Start = &d
	}
	if end = strings.TrimSpace(end); end != "" {
		d, err := time.ParseInLocation("2006-01-02", end, loc)
		if err != nil {
			return ListFilter{}, fmt.Errorf("%w: end %q", ErrInvalidDateRange, end)
		}
		d = d.AddDate(0, 0, 1).Add(-time.Millisecond)
		f.End = &d
	}

	if f.Start != nil && f.End != nil && f.Start.After(*f.End) {
		return ListFilter{}, fmt.Errorf("%w: start after end", ErrInvalidDateRange)
	}
	return f, nil
}

// Matches reports whether t falls inside the range.
func (f ListFilter) Matches(t time.Time) bool {
	if f.Start != nil && t.Before(*f.Start) {
		return false
	}
	if f.End != nil && t.After(*f.End) {
		return false
	}
	return true
}
