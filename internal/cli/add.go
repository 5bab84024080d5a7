package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/models"
	"github.com/ktsuji/habitloop/internal/tracker"
)

type AddCmd struct {
	Content  string `arg:"" optional:"" help:"Habit description. Omit to fill in a form."`
	Deadline string `short:"d" help:"Deadline in YYYY-MM-DD format."`
	Unit     string `short:"u" help:"Frequency unit (day|week|month|year)." default:"day"`
	Count    int    `short:"c" help:"Times per frequency unit." default:"1"`
}

func (c *AddCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if c.Content == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	deadline, err := dateutil.ParseDate(c.Deadline)
	if err != nil {
		return err
	}

	cfg := models.TaskConfiguration{
		ID:      tracker.NewConfigurationID(),
		Content: c.Content,
		Frequency: models.TaskFrequency{
			Unit:  models.FrequencyUnit(c.Unit),
			Count: c.Count,
		},
		Duration:  models.TaskDuration{Deadline: deadline},
		CreatedAt: time.Now(),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid habit: %w", err)
	}

	tasks = append(tasks, models.Task{Configuration: cfg, Instances: []models.TaskInstance{}})
	if err := ctx.Store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, until %s)\n", cfg.Content, FormatFrequency(cfg.Frequency), dateutil.FormatDate(deadline))
	return nil
}

func (c *AddCmd) promptForm() error {
	count := strconv.Itoa(c.Count)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Description("What do you want to track?").
				Value(&c.Content).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("content must not be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Frequency unit").
				Options(
					huh.NewOption("Daily", "day"),
					huh.NewOption("Weekly", "week"),
					huh.NewOption("Monthly", "month"),
					huh.NewOption("Yearly", "year"),
				).
				Value(&c.Unit),
			huh.NewInput().
				Title("Times per unit").
				Value(&count).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD").
				Value(&c.Deadline).
				Validate(func(s string) error {
					_, err := dateutil.ParseDate(s)
					return err
				}),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	c.Count, _ = strconv.Atoi(count)
	return nil
}
