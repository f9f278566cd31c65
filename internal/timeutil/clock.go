// Wall-clock and calendar helpers shared by pricing, availability,
// calendar and analytics.
package timeutil

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Granularity selects the calendar bucket size for grouping.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// ParseGranularity maps a request string onto a known granularity,
// falling back to daily for anything unrecognised.
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case GranularityWeekly, GranularityMonthly, GranularityYearly:
		return Granularity(s)
	default:
		return GranularityDaily
	}
}

// ParseClock splits an "HH:MM" string. ok is false for anything malformed;
// callers decide how to degrade.
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// ClockHours converts "HH:MM" to fractional hours since midnight.
func ClockHours(s string) (float64, bool) {
	h, m, ok := ParseClock(s)
	if !ok {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

// DurationHours returns end-start in fractional hours, clamped to zero when
// either value is missing or malformed or the difference is negative.
// Bad records degrade to a zero duration instead of failing a whole
// aggregation pass.
func DurationHours(start, end string) float64 {
	s, ok := ClockHours(start)
	if !ok {
		return 0
	}
	e, ok := ClockHours(end)
	if !ok {
		return 0
	}
	return math.Max(0, e-s)
}

// StartOfWeek returns the Monday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday is Sunday-based; shift so Monday == 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first of t's month, at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month, at midnight.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// PeriodKey returns the canonical bucket key a date belongs to. Weeks start
// on Monday; the weekly key is the Monday's date, so any two dates inside
// the same Mon-Sun span share a key.
func PeriodKey(date time.Time, g Granularity) string {
	switch g {
	case GranularityWeekly:
		return StartOfWeek(date).Format("2006-01-02")
	case GranularityMonthly:
		return date.Format("2006-01")
	case GranularityYearly:
		return date.Format("2006")
	default:
		return date.Format("2006-01-02")
	}
}

// Round2 rounds to two decimal places for currency presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
