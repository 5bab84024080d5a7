package cli

import (
	"fmt"
	"time"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/render"
	"github.com/ktsuji/habitloop/internal/tracker"
)

type WeekCmd struct {
	Date string `help:"Show the week containing this date (YYYY-MM-DD, default: today)." default:""`
}

func (c *WeekCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	ref := time.Now()
	if c.Date != "" {
		if ref, err = dateutil.ParseDate(c.Date); err != nil {
			return err
		}
	}
	weekStart := dateutil.WeekStart(ref)

	fmt.Printf("Week of %s\n\n", dateutil.FormatDate(weekStart))
	for _, task := range tasks {
		data := tracker.FormatWeeklyData(task, weekStart)
		fmt.Println(render.WeekRow(task.Configuration.Content, data))
	}

	return nil
}
