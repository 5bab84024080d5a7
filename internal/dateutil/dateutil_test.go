package dateutil

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.September, 3, 14, 45, 12, 0, time.Local)
	if got := FormatDate(d); got != "2025-09-03" {
		t.Errorf("FormatDate() = %q, want %q", got, "2025-09-03")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantDay string
	}{
		{
			name:    "plain date",
			input:   "2025-09-03",
			wantDay: "2025-09-03",
		},
		{
			name:    "RFC3339 timestamp",
			input:   "2025-09-03T18:30:00+09:00",
			wantDay: "2025-09-03",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "wrong separator",
			input:   "2025/09/03",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && FormatDate(got) != tt.wantDay {
				t.Errorf("ParseDate(%q) day = %q, want %q", tt.input, FormatDate(got), tt.wantDay)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different times",
			a:    time.Date(2025, time.September, 3, 0, 0, 1, 0, time.Local),
			b:    time.Date(2025, time.September, 3, 23, 59, 59, 0, time.Local),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2025, time.September, 3, 23, 59, 59, 0, time.Local),
			b:    time.Date(2025, time.September, 4, 0, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day-of-month different month",
			a:    time.Date(2025, time.August, 3, 12, 0, 0, 0, time.Local),
			b:    time.Date(2025, time.September, 3, 12, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day-of-year different year",
			a:    time.Date(2024, time.September, 3, 12, 0, 0, 0, time.Local),
			b:    time.Date(2025, time.September, 3, 12, 0, 0, 0, time.Local),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDateTodayAt(t *testing.T) {
	now := time.Date(2025, time.September, 1, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "today",
			input: "2025-09-01",
			want:  true,
		},
		{
			name:  "yesterday",
			input: "2025-08-31",
			want:  false,
		},
		{
			name:  "unparsable input degrades to false",
			input: "banana",
			want:  false,
		},
		{
			name:  "empty string",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDateTodayAt(tt.input, now); got != tt.want {
				t.Errorf("IsDateTodayAt(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{
			name:  "Wednesday rolls back to Sunday",
			input: time.Date(2025, time.September, 3, 15, 0, 0, 0, time.Local),
			want:  "2025-08-31",
		},
		{
			name:  "Sunday is its own week start",
			input: time.Date(2025, time.August, 31, 9, 0, 0, 0, time.Local),
			want:  "2025-08-31",
		},
		{
			name:  "Saturday rolls back six days",
			input: time.Date(2025, time.September, 6, 0, 0, 0, 0, time.Local),
			want:  "2025-08-31",
		},
		{
			name:  "week start crosses a month boundary",
			input: time.Date(2025, time.July, 2, 12, 0, 0, 0, time.Local),
			want:  "2025-06-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.input)
			if FormatDate(got) != tt.want {
				t.Errorf("WeekStart() = %q, want %q", FormatDate(got), tt.want)
			}
			if got.Weekday() != time.Sunday {
				t.Errorf("WeekStart() weekday = %v, want Sunday", got.Weekday())
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("WeekStart() = %v, want midnight", got)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"leap year February", 2024, time.February, 29},
		{"non-leap February", 2023, time.February, 28},
		{"century non-leap February", 1900, time.February, 28},
		{"400-year leap February", 2000, time.February, 29},
		{"January", 2025, time.January, 31},
		{"April", 2025, time.April, 30},
		{"December", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2025, time.September, 1, 1, 0, 0, 0, time.Local),
			b:    time.Date(2025, time.September, 1, 23, 0, 0, 0, time.Local),
			want: 0,
		},
		{
			name: "one day forward",
			a:    time.Date(2025, time.August, 31, 23, 0, 0, 0, time.Local),
			b:    time.Date(2025, time.September, 1, 1, 0, 0, 0, time.Local),
			want: 1,
		},
		{
			name: "negative when reversed",
			a:    time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local),
			b:    time.Date(2025, time.August, 30, 0, 0, 0, 0, time.Local),
			want: -2,
		},
		{
			name: "across leap day",
			a:    time.Date(2024, time.February, 28, 0, 0, 0, 0, time.Local),
			b:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsCurrentMonthAt(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.Local)

	if !IsCurrentMonthAt(2025, time.September, now) {
		t.Error("IsCurrentMonthAt(2025, September) = false, want true")
	}
	if IsCurrentMonthAt(2025, time.August, now) {
		t.Error("IsCurrentMonthAt(2025, August) = true, want false")
	}
	if IsCurrentMonthAt(2024, time.September, now) {
		t.Error("IsCurrentMonthAt(2024, September) = true, want false")
	}
}

func TestIsCurrentWeekAt(t *testing.T) {
	// 2025-09-01 is a Monday; its week starts Sunday 2025-08-31.
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.Local)

	if !IsCurrentWeekAt(time.Date(2025, time.August, 31, 0, 0, 0, 0, time.Local), now) {
		t.Error("IsCurrentWeekAt(this week's Sunday) = false, want true")
	}
	if !IsCurrentWeekAt(time.Date(2025, time.September, 4, 0, 0, 0, 0, time.Local), now) {
		t.Error("IsCurrentWeekAt(mid-week day of this week) = false, want true")
	}
	if IsCurrentWeekAt(time.Date(2025, time.August, 24, 0, 0, 0, 0, time.Local), now) {
		t.Error("IsCurrentWeekAt(last week) = true, want false")
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(2024, time.January); got != "2024 January" {
		t.Errorf("MonthName() = %q, want %q", got, "2024 January")
	}
}
