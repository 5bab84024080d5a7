package models

import "time"

// Derived view types computed on demand by the tracker package. These are
// never persisted.

// TaskStats aggregates progress over a whole task collection.
type TaskStats struct {
	TotalTasks       int     `json:"total_tasks"`
	CompletedToday   int     `json:"completed_today"`
	CurrentStreak    int     `json:"current_streak"`
	TotalCompletions int     `json:"total_completions"`
	CompletionRate   float64 `json:"completion_rate"`
}

// WeeklyDayData describes a single day of a weekly view.
type WeeklyDayData struct {
	Date        time.Time `json:"date"`
	IsCompleted bool      `json:"is_completed"`
	IsToday     bool      `json:"is_today"`
}

// WeeklyData is one task's completion state for a 7-day week starting Sunday.
type WeeklyData struct {
	StartDate        time.Time       `json:"start_date"`
	Days             []WeeklyDayData `json:"days"`
	TotalCompletions int             `json:"total_completions"`
}

// DayData describes a single cell of a monthly calendar grid. Cells padded in
// from the adjacent months have IsCurrentMonth false and never count as
// completed.
type DayData struct {
	Date            time.Time `json:"date"`
	IsCompleted     bool      `json:"is_completed"`
	CompletionCount int       `json:"completion_count"`
	IsCurrentMonth  bool      `json:"is_current_month"`
	IsToday         bool      `json:"is_today"`
}

// MonthlyHistoryData is one task's completion state for a calendar month,
// padded to full week rows.
type MonthlyHistoryData struct {
	Year             int        `json:"year"`
	Month            time.Month `json:"month"`
	Days             []DayData  `json:"days"`
	TotalCompletions int        `json:"total_completions"`
}
