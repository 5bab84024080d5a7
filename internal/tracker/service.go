package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/models"
	"github.com/ktsuji/habitloop/internal/streak"
)

// The tracker package is the domain service for habit tasks: instance
// creation and toggling, per-period instance selection, calendar-grid
// formatting and aggregate stats. Every function is pure with respect to its
// inputs; mutating operations return a new Task and never touch the argument.
// "Now" is read once per operation so a computation straddling midnight stays
// internally consistent, and each operation has a ...At variant taking the
// reference time explicitly.

// NewConfigurationID returns a fresh identifier for a task configuration.
func NewConfigurationID() string {
	return newID("task-config")
}

// NewInstanceID returns a fresh identifier for a task instance.
func NewInstanceID() string {
	return newID("task-instance")
}

func newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// NewInstance creates a not-started instance of the configuration scheduled
// for today.
func NewInstance(cfg models.TaskConfiguration) models.TaskInstance {
	return NewInstanceAt(cfg, time.Now())
}

// NewInstanceAt is NewInstance against an explicit reference time.
func NewInstanceAt(cfg models.TaskConfiguration, now time.Time) models.TaskInstance {
	return models.TaskInstance{
		ID:              NewInstanceID(),
		ConfigurationID: cfg.ID,
		Status:          models.StatusNotStarted,
		ScheduledDate:   now,
		CreatedAt:       now,
	}
}

// NewInstanceOn creates a not-started instance scheduled for an explicit day.
func NewInstanceOn(configurationID string, scheduledDate time.Time) models.TaskInstance {
	return models.TaskInstance{
		ID:              NewInstanceID(),
		ConfigurationID: configurationID,
		Status:          models.StatusNotStarted,
		ScheduledDate:   scheduledDate,
		CreatedAt:       time.Now(),
	}
}

// Toggle flips an instance between done and not-started. Completing stamps
// CompletedDate with the current moment; undoing clears it.
func Toggle(inst models.TaskInstance) models.TaskInstance {
	return ToggleAt(inst, time.Now())
}

// ToggleAt is Toggle against an explicit reference time.
func ToggleAt(inst models.TaskInstance, now time.Time) models.TaskInstance {
	if inst.Status == models.StatusDone {
		inst.Status = models.StatusNotStarted
		inst.CompletedDate = nil
		return inst
	}
	inst.Status = models.StatusDone
	completed := now
	inst.CompletedDate = &completed
	return inst
}

// ToggleByID returns a new Task with the named instance toggled. All other
// instances are unchanged, and a missing id is a no-op.
func ToggleByID(task models.Task, instanceID string) models.Task {
	return ToggleByIDAt(task, instanceID, time.Now())
}

// ToggleByIDAt is ToggleByID against an explicit reference time.
func ToggleByIDAt(task models.Task, instanceID string, now time.Time) models.Task {
	updated := make([]models.TaskInstance, len(task.Instances))
	for i, inst := range task.Instances {
		if inst.ID == instanceID {
			updated[i] = ToggleAt(inst, now)
		} else {
			updated[i] = inst
		}
	}
	task.Instances = updated
	return task
}

// ToggleToday toggles the task's instance for the current calendar day,
// creating a completed instance when none exists yet.
func ToggleToday(task models.Task) models.Task {
	return ToggleTodayAt(task, time.Now())
}

// ToggleTodayAt is ToggleToday against an explicit reference time.
func ToggleTodayAt(task models.Task, now time.Time) models.Task {
	return ToggleOnDayAt(task, now, now)
}

// ToggleOnDay toggles the task's instance for the given calendar day,
// creating a completed instance when none exists yet. At most one instance
// per configuration per day is maintained.
func ToggleOnDay(task models.Task, day time.Time) models.Task {
	return ToggleOnDayAt(task, day, time.Now())
}

// ToggleOnDayAt is ToggleOnDay against an explicit reference time.
func ToggleOnDayAt(task models.Task, day, now time.Time) models.Task {
	for _, inst := range task.Instances {
		if dateutil.IsSameDay(inst.ScheduledDate, day) {
			return ToggleByIDAt(task, inst.ID, now)
		}
	}

	inst := NewInstanceOn(task.Configuration.ID, day)
	inst.Status = models.StatusDone
	completed := now
	inst.CompletedDate = &completed

	updated := make([]models.TaskInstance, len(task.Instances), len(task.Instances)+1)
	copy(updated, task.Instances)
	task.Instances = append(updated, inst)
	return task
}

// CompletedToday reports whether the instance was completed on the current
// calendar day.
func CompletedToday(inst models.TaskInstance) bool {
	return CompletedTodayAt(inst, time.Now())
}

// CompletedTodayAt is CompletedToday against an explicit reference time.
func CompletedTodayAt(inst models.TaskInstance, now time.Time) bool {
	if inst.CompletedDate == nil {
		return false
	}
	return dateutil.IsSameDay(*inst.CompletedDate, now)
}

// WeeklyInstances returns the task's instances scheduled within the 7-day
// window starting at weekStart, inclusive on both ends.
func WeeklyInstances(task models.Task, weekStart time.Time) []models.TaskInstance {
	start := dateutil.StartOfDay(weekStart)
	end := start.AddDate(0, 0, 6)

	var in []models.TaskInstance
	for _, inst := range task.Instances {
		day := dateutil.StartOfDay(inst.ScheduledDate)
		if !day.Before(start) && !day.After(end) {
			in = append(in, inst)
		}
	}
	return in
}

// MonthlyInstances returns the task's instances scheduled within the given
// calendar month.
func MonthlyInstances(task models.Task, year int, month time.Month) []models.TaskInstance {
	var in []models.TaskInstance
	for _, inst := range task.Instances {
		if inst.ScheduledDate.Year() == year && inst.ScheduledDate.Month() == month {
			in = append(in, inst)
		}
	}
	return in
}

// RemainingDays returns the number of days until the task's deadline, rounded
// up and never negative.
func RemainingDays(task models.Task) int {
	return RemainingDaysAt(task, time.Now())
}

// RemainingDaysAt is RemainingDays against an explicit reference time.
func RemainingDaysAt(task models.Task, now time.Time) int {
	remaining := task.Configuration.Duration.Deadline.Sub(now)
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	if days < 0 {
		return 0
	}
	return days
}

// FormatWeeklyData builds the weekly view for a task: one entry per day of
// the 7-day week starting at weekStart, each matched against the (at most
// one) instance scheduled that day.
func FormatWeeklyData(task models.Task, weekStart time.Time) models.WeeklyData {
	return FormatWeeklyDataAt(task, weekStart, time.Now())
}

// FormatWeeklyDataAt is FormatWeeklyData against an explicit reference time.
func FormatWeeklyDataAt(task models.Task, weekStart time.Time, now time.Time) models.WeeklyData {
	instances := WeeklyInstances(task, weekStart)
	start := dateutil.StartOfDay(weekStart)

	days := make([]models.WeeklyDayData, 0, 7)
	completions := 0
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		inst, ok := instanceOn(instances, date)
		days = append(days, models.WeeklyDayData{
			Date:        date,
			IsCompleted: ok && inst.Done(),
			IsToday:     dateutil.IsSameDay(date, now),
		})
	}
	for _, inst := range instances {
		if inst.Done() {
			completions++
		}
	}

	return models.WeeklyData{
		StartDate:        start,
		Days:             days,
		TotalCompletions: completions,
	}
}

// FormatMonthlyHistory builds the calendar-grid view for a task and month:
// leading days from the previous month pad the first row back to Sunday,
// every day of the target month follows, and trailing days from the next
// month pad the final row to a full week. Only target-month days are matched
// against instances or counted in TotalCompletions.
func FormatMonthlyHistory(task models.Task, year int, month time.Month) models.MonthlyHistoryData {
	return FormatMonthlyHistoryAt(task, year, month, time.Now())
}

// FormatMonthlyHistoryAt is FormatMonthlyHistory against an explicit
// reference time.
func FormatMonthlyHistoryAt(task models.Task, year int, month time.Month, now time.Time) models.MonthlyHistoryData {
	instances := MonthlyInstances(task, year, month)
	daysInMonth := dateutil.DaysInMonth(year, month)
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	var days []models.DayData

	// Previous-month padding back to Sunday.
	lead := int(firstOfMonth.Weekday())
	for i := lead; i > 0; i-- {
		date := firstOfMonth.AddDate(0, 0, -i)
		days = append(days, models.DayData{
			Date:    date,
			IsToday: dateutil.IsSameDay(date, now),
		})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		inst, ok := instanceOn(instances, date)
		done := ok && inst.Done()
		count := 0
		if done {
			count = 1
		}
		days = append(days, models.DayData{
			Date:            date,
			IsCompleted:     done,
			CompletionCount: count,
			IsCurrentMonth:  true,
			IsToday:         dateutil.IsSameDay(date, now),
		})
	}

	// Next-month padding out to a full week row.
	lastOfMonth := time.Date(year, month, daysInMonth, 0, 0, 0, 0, time.Local)
	trail := 6 - int(lastOfMonth.Weekday())
	for i := 1; i <= trail; i++ {
		date := lastOfMonth.AddDate(0, 0, i)
		days = append(days, models.DayData{
			Date:    date,
			IsToday: dateutil.IsSameDay(date, now),
		})
	}

	completions := 0
	for _, inst := range instances {
		if inst.Done() {
			completions++
		}
	}

	return models.MonthlyHistoryData{
		Year:             year,
		Month:            month,
		Days:             days,
		TotalCompletions: completions,
	}
}

// Stats aggregates progress over a task collection.
func Stats(tasks []models.Task) models.TaskStats {
	return StatsAt(tasks, time.Now())
}

// StatsAt is Stats against an explicit reference time.
func StatsAt(tasks []models.Task, now time.Time) models.TaskStats {
	stats := models.TaskStats{TotalTasks: len(tasks)}

	for _, task := range tasks {
		completedToday := false
		var completedDates []string
		for _, inst := range task.Instances {
			if !inst.Done() {
				continue
			}
			stats.TotalCompletions++
			if dateutil.IsSameDay(inst.ScheduledDate, now) {
				completedToday = true
			}
			if inst.CompletedDate != nil {
				completedDates = append(completedDates, dateutil.FormatDate(*inst.CompletedDate))
			}
		}
		if completedToday {
			stats.CompletedToday++
		}
		if s := streak.CalculateAt(completedDates, now); s > stats.CurrentStreak {
			stats.CurrentStreak = s
		}
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedToday) / float64(stats.TotalTasks) * 100
	}
	return stats
}

func instanceOn(instances []models.TaskInstance, day time.Time) (models.TaskInstance, bool) {
	for _, inst := range instances {
		if dateutil.IsSameDay(inst.ScheduledDate, day) {
			return inst, true
		}
	}
	return models.TaskInstance{}, false
}
