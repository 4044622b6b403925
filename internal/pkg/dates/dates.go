// Package dates normalizes timestamps onto civil calendar days. The ledger
// keys attendance on (employee, day), so the day value must be independent of
// locale formatting and of the server's local timezone.
package dates

import "time"

const dayFormat = "2006-01-02"

// Day converts an instant to its civil day in loc, represented as midnight
// UTC of that day. Two instants map to the same Day value iff they fall on
// the same calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders a day value as "YYYY-MM-DD".
func Format(day time.Time) string {
	return day.Format(dayFormat)
}

// Parse reads a "YYYY-MM-DD" day value.
func Parse(s string) (time.Time, error) {
	return time.Parse(dayFormat, s)
}

// AddDays shifts a day value by n calendar days.
func AddDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}
