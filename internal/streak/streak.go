package streak

import (
	"sort"
	"time"

	"github.com/ktsuji/habitloop/internal/dateutil"
)

// Calculate returns the current consecutive-day streak for a set of completed
// date strings (YYYY-MM-DD or RFC3339).
func Calculate(completedDates []string) int {
	return CalculateAt(completedDates, time.Now())
}

// CalculateAt walks the completed days from most recent to oldest, counting
// how many consecutive days end at the anchor day. The anchor is now's
// calendar day; when nothing has been completed today, a completion yesterday
// is still allowed to open the streak, shifting the anchor back one day. Any
// larger gap breaks the chain. Completions recorded for future days neither
// extend nor break the streak, and duplicate dates do not inflate the result.
func CalculateAt(completedDates []string, now time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(completedDates))
	days := make([]time.Time, 0, len(completedDates))
	for _, s := range completedDates {
		t, err := dateutil.ParseDate(s)
		if err != nil {
			continue
		}
		key := dateutil.FormatDate(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, dateutil.StartOfDay(t))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	anchor := dateutil.StartOfDay(now)

	for _, day := range days {
		gap := dateutil.DaysBetween(day, anchor)
		switch {
		case gap < 0:
			// Future completion; ignore it.
			continue
		case gap == streak:
			streak++
		case gap == streak+1 && streak == 0:
			// Today has no completion yet, but yesterday does. Count from
			// yesterday instead.
			anchor = day
			streak++
		default:
			return streak
		}
	}

	return streak
}

// WeeklyProgress counts completions per calendar day for the 7 days ending
// today, oldest first.
func WeeklyProgress(completedDates []string) []int {
	return WeeklyProgressAt(completedDates, time.Now())
}

// WeeklyProgressAt is WeeklyProgress against an explicit reference time.
func WeeklyProgressAt(completedDates []string, now time.Time) []int {
	counts := make([]int, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		for _, s := range completedDates {
			t, err := dateutil.ParseDate(s)
			if err != nil {
				continue
			}
			if dateutil.IsSameDay(t, day) {
				counts[i]++
			}
		}
	}
	return counts
}
