package cli

import (
	"fmt"
	"strings"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/streak"
	"github.com/ktsuji/habitloop/internal/tracker"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	stats := tracker.Stats(tasks)

	fmt.Printf("Habits:            %d\n", stats.TotalTasks)
	fmt.Printf("Completed today:   %d\n", stats.CompletedToday)
	fmt.Printf("Current streak:    %d\n", stats.CurrentStreak)
	fmt.Printf("Total completions: %d\n", stats.TotalCompletions)
	fmt.Printf("Completion rate:   %.0f%%\n", stats.CompletionRate)

	// Sparkline of all completions over the last 7 days.
	var completedDates []string
	for _, task := range tasks {
		for _, inst := range task.Instances {
			if inst.Done() && inst.CompletedDate != nil {
				completedDates = append(completedDates, dateutil.FormatDate(*inst.CompletedDate))
			}
		}
	}
	progress := streak.WeeklyProgress(completedDates)

	var bars strings.Builder
	for _, n := range progress {
		switch {
		case n == 0:
			bars.WriteString("·")
		case n == 1:
			bars.WriteString("▄")
		default:
			bars.WriteString("█")
		}
	}
	fmt.Printf("Last 7 days:       %s\n", bars.String())

	return nil
}
