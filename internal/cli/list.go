package cli

import (
	"fmt"
	"time"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/streak"
	"github.com/ktsuji/habitloop/internal/tracker"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := time.Now()
	for _, task := range tasks {
		status := "[ ]"
		for _, inst := range task.Instances {
			if dateutil.IsSameDay(inst.ScheduledDate, now) && inst.Done() {
				status = "[x]"
				break
			}
		}

		var completedDates []string
		for _, inst := range task.Instances {
			if inst.Done() && inst.CompletedDate != nil {
				completedDates = append(completedDates, dateutil.FormatDate(*inst.CompletedDate))
			}
		}
		current := streak.CalculateAt(completedDates, now)

		fmt.Printf("%s %s  (%s, streak %d, %d days left)\n",
			status, task.Configuration.Content,
			FormatFrequency(task.Configuration.Frequency),
			current, tracker.RemainingDaysAt(task, now))
	}

	return nil
}
