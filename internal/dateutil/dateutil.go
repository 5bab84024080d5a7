package dateutil

import (
	"fmt"
	"time"

	"github.com/ktsuji/habitloop/internal/constants"
)

// Calendar arithmetic for the tracker core. All functions are total: invalid
// input degrades to a safe default, never a panic. Functions that depend on
// the current day come in pairs, a plain form that reads the real clock once
// and an ...At form taking an explicit reference time so callers and tests can
// pin "now".

// FormatDate returns the canonical YYYY-MM-DD key for a date.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a date string in either YYYY-MM-DD or RFC3339 form.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(constants.DateFormat, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %q (expected YYYY-MM-DD or RFC3339)", s)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether two times fall on the same calendar day,
// ignoring time of day.
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool {
	return IsTodayAt(t, time.Now())
}

// IsTodayAt reports whether t falls on the same calendar day as now.
func IsTodayAt(t, now time.Time) bool {
	return IsSameDay(t, now)
}

// IsDateToday reports whether the date string names the current calendar day.
// Unparsable input yields false.
func IsDateToday(s string) bool {
	return IsDateTodayAt(s, time.Now())
}

// IsDateTodayAt is IsDateToday against an explicit reference time.
func IsDateTodayAt(s string, now time.Time) bool {
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	return IsSameDay(t, now)
}

// WeekStart returns midnight of the Sunday at or before t.
func WeekStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the number of whole calendar days from a to b,
// negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

// IsCurrentMonth reports whether the given year and month are the current ones.
func IsCurrentMonth(year int, month time.Month) bool {
	return IsCurrentMonthAt(year, month, time.Now())
}

// IsCurrentMonthAt is IsCurrentMonth against an explicit reference time.
func IsCurrentMonthAt(year int, month time.Month, now time.Time) bool {
	return now.Year() == year && now.Month() == month
}

// IsCurrentWeek reports whether weekStart names the week containing today.
func IsCurrentWeek(weekStart time.Time) bool {
	return IsCurrentWeekAt(weekStart, time.Now())
}

// IsCurrentWeekAt is IsCurrentWeek against an explicit reference time.
func IsCurrentWeekAt(weekStart, now time.Time) bool {
	return IsSameDay(WeekStart(weekStart), WeekStart(now))
}

// MonthName returns a display label for a month, e.g. "2025 September".
func MonthName(year int, month time.Month) string {
	return fmt.Sprintf("%d %s", year, month)
}
