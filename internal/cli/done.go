package cli

import (
	"fmt"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/tracker"
)

type DoneCmd struct {
	Task string `arg:"" help:"Habit id or name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	i, err := FindTask(tasks, c.Task)
	if err != nil {
		return err
	}

	if c.Date == "" {
		tasks[i] = tracker.ToggleToday(tasks[i])
	} else {
		day, err := dateutil.ParseDate(c.Date)
		if err != nil {
			return err
		}
		tasks[i] = tracker.ToggleOnDay(tasks[i], day)
	}

	if err := ctx.Store.Save(tasks); err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = "today"
	}
	completed := false
	for _, inst := range tasks[i].Instances {
		if c.Date == "" && tracker.CompletedToday(inst) {
			completed = true
			break
		}
		if c.Date != "" && inst.Done() && dateutil.FormatDate(inst.ScheduledDate) == c.Date {
			completed = true
			break
		}
	}
	if completed {
		fmt.Printf("Marked %q done for %s\n", tasks[i].Configuration.Content, day)
	} else {
		fmt.Printf("Unmarked %q for %s\n", tasks[i].Configuration.Content, day)
	}
	return nil
}
