package cli

import (
	"fmt"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/models"
)

type EditCmd struct {
	Task     string `arg:"" help:"Habit id or name."`
	Content  string `help:"New habit description."`
	Deadline string `short:"d" help:"New deadline in YYYY-MM-DD format."`
	Unit     string `short:"u" help:"New frequency unit (day|week|month|year)."`
	Count    int    `short:"c" help:"New times per frequency unit."`
}

func (c *EditCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	i, err := FindTask(tasks, c.Task)
	if err != nil {
		return err
	}

	cfg := tasks[i].Configuration
	if c.Content != "" {
		cfg.Content = c.Content
	}
	if c.Deadline != "" {
		deadline, err := dateutil.ParseDate(c.Deadline)
		if err != nil {
			return err
		}
		cfg.Duration.Deadline = deadline
	}
	if c.Unit != "" {
		cfg.Frequency.Unit = models.FrequencyUnit(c.Unit)
	}
	if c.Count != 0 {
		cfg.Frequency.Count = c.Count
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid habit: %w", err)
	}

	tasks[i].Configuration = cfg
	if err := ctx.Store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", cfg.Content)
	return nil
}
