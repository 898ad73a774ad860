// Package period resolves the user-selectable report windows (trailing
// days, calendar month, calendar year, custom) into the inclusive
// day-granularity range the analyzer consumes. The month and year modes are
// plain special cases of the range form; there is no separate analysis path
// for them.
package period

import (
	"fmt"
	"time"
)

// Range is an inclusive day interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// LastDays returns the trailing window [today-n, today].
func LastDays(today time.Time, n int) Range {
	end := day(today)
	return Range{Start: end.AddDate(0, 0, -n), End: end}
}

// Month returns the first-to-last-day range of one calendar month.
func Month(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(0, 1, -1)}
}

// Year returns the January 1 to December 31 range of one calendar year.
func Year(year int) Range {
	return Range{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Custom builds an arbitrary range, truncating both bounds to days.
func Custom(start, end time.Time) Range {
	return Range{Start: day(start), End: day(end)}
}

// ParseMonth parses a "YYYY-MM" flag value into its month range.
func ParseMonth(s string) (Range, error) {
	t, err := time.ParseInLocation("2006-01", s, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return Month(t.Year(), t.Month()), nil
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
