// Package dates owns all YYYY-MM-DD date arithmetic. Every other package
// trades in ISO date strings; time.Time values are constructed here and
// nowhere else so timezone handling stays in one place.
package dates

import (
	"math"
	"time"
)

// ISO is the calendar-date layout used for every persisted date key.
const ISO = "2006-01-02"

// Clock supplies "today" as an ISO date string.
type Clock func() string

// System returns today's local calendar date.
func System() string {
	return time.Now().Format(ISO)
}

// Fixed returns a Clock pinned to the given date.
func Fixed(date string) Clock {
	return func() string { return date }
}

// Parse returns the time.Time for an ISO date, pinned to noon local time.
// Anchoring away from midnight keeps DST transitions from shifting a date
// across a day boundary when differencing.
func Parse(iso string) (time.Time, error) {
	t, err := time.ParseInLocation(ISO, iso, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), nil
}

// Valid reports whether iso is a well-formed ISO calendar date.
func Valid(iso string) bool {
	_, err := time.Parse(ISO, iso)
	return err == nil
}

// DaysBetween returns the whole calendar days from a to b (positive when b is
// later). Malformed inputs count as maximally distant so callers treat them
// as streak breaks rather than continuity.
func DaysBetween(a, b string) int {
	ta, err := Parse(a)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	tb, err := Parse(b)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	// Rounding absorbs the hour a DST transition adds or removes; truncation
	// would turn the 23-hour spring-forward day into zero days.
	return int(math.Round(tb.Sub(ta).Hours() / 24))
}

// AddDays returns the ISO date n calendar days after iso. Malformed input is
// returned unchanged.
func AddDays(iso string, n int) string {
	t, err := Parse(iso)
	if err != nil {
		return iso
	}
	return t.AddDate(0, 0, n).Format(ISO)
}
