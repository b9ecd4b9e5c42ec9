// Package dateutil handles the calendar-date arithmetic of the ledger:
// parsing the YYYY-MM-DD / YYYY-MM wire encodings without timezone shifts,
// advancing due dates by whole months with day-of-month clipping, and
// generating gapless period key ranges for the pivot summaries.
package dateutil

import (
	"fmt"
	"time"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// ParseDay parses a YYYY-MM-DD string into a UTC-midnight civil date.
// The calendar day is taken verbatim; no timezone conversion is applied.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM string into the first day of that month (UTC).
func ParseMonth(s string) (time.Time, error) {
	t, err := time.ParseInLocation(monthLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, want YYYY-MM: %w", s, err)
	}
	return t, nil
}

// FormatDay renders a time as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// FormatMonth renders a time as YYYY-MM.
func FormatMonth(t time.Time) string {
	return t.Format(monthLayout)
}

// Today returns the current civil date at UTC midnight.
func Today() time.Time {
	return Truncate(time.Now().UTC())
}

// Truncate drops the time-of-day portion, keeping the UTC civil date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths advances t by n calendar months preserving the day of month,
// clipping to the last day when the target month is shorter
// (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year). This differs from
// time.AddDate, which normalizes Feb 31 into early March.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location())
}

// Granularity is the bucket size of a pivot summary.
type Granularity int

const (
	Monthly Granularity = iota
	Daily
)

// Key renders the period key of t for this granularity.
func (g Granularity) Key(t time.Time) string {
	if g == Daily {
		return FormatDay(t)
	}
	return FormatMonth(t)
}

// Next returns the first instant of the period following t's period.
func (g Granularity) Next(t time.Time) time.Time {
	y, m, d := t.Date()
	if g == Daily {
		return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location())
}

// PeriodKeys returns the ordered, gapless sequence of period keys from the
// period containing from through the period containing to, inclusive.
// An empty slice is returned when to precedes from.
func PeriodKeys(from, to time.Time, g Granularity) []string {
	keys := []string{}
	last := g.Key(to)
	for t := from; ; t = g.Next(t) {
		k := g.Key(t)
		if k > last {
			break
		}
		keys = append(keys, k)
		if k == last {
			break
		}
	}
	return keys
}
