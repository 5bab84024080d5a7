package cli

import (
	"fmt"
	"time"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/models"
	"github.com/ktsuji/habitloop/internal/render"
	"github.com/ktsuji/habitloop/internal/tracker"
)

type MonthCmd struct {
	Task  string `arg:"" optional:"" help:"Habit id or name (default: all habits)."`
	Year  int    `help:"Year to show (default: current)."`
	Month int    `help:"Month to show, 1-12 (default: current)."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := time.Now()
	year := c.Year
	if year == 0 {
		year = now.Year()
	}
	month := now.Month()
	if c.Month != 0 {
		if c.Month < 1 || c.Month > 12 {
			return fmt.Errorf("month must be between 1 and 12")
		}
		month = time.Month(c.Month)
	}

	selected := tasks
	if c.Task != "" {
		i, err := FindTask(tasks, c.Task)
		if err != nil {
			return err
		}
		selected = []models.Task{tasks[i]}
	}

	fmt.Printf("%s\n\n", dateutil.MonthName(year, month))
	for _, task := range selected {
		data := tracker.FormatMonthlyHistory(task, year, month)
		fmt.Printf("%s (%d completions)\n", task.Configuration.Content, data.TotalCompletions)
		fmt.Println(render.MonthGrid(data))
	}

	return nil
}
