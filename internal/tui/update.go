package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/models"
	"github.com/ktsuji/habitloop/internal/tracker"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAdd:
			return m.updateAddForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateMain(msg)
		}
	}

	if m.state == StateAdd && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		switch m.state {
		case StateTasks:
			m.state = StateWeekly
		case StateWeekly:
			m.state = StateMonthly
		case StateMonthly:
			m.state = StateTasks
		}

	case key.Matches(msg, m.keys.PrevTab):
		switch m.state {
		case StateTasks:
			m.state = StateMonthly
		case StateWeekly:
			m.state = StateTasks
		case StateMonthly:
			m.state = StateWeekly
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		switch m.state {
		case StateWeekly:
			m.weekStart = m.weekStart.AddDate(0, 0, -7)
		case StateMonthly:
			m.year, m.month = prevMonth(m.year, m.month)
		}

	case key.Matches(msg, m.keys.Right):
		switch m.state {
		case StateWeekly:
			m.weekStart = m.weekStart.AddDate(0, 0, 7)
		case StateMonthly:
			m.year, m.month = nextMonth(m.year, m.month)
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.tasks) {
			m.tasks[m.cursor] = tracker.ToggleToday(m.tasks[m.cursor])
			m.save()
		}

	case key.Matches(msg, m.keys.Add):
		m.previousState = m.state
		m.state = StateAdd
		m.formData = &taskForm{Unit: "day", Count: "1"}
		m.form = newTaskForm(m.formData)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.tasks) {
			m.previousState = m.state
			m.taskToDelete = m.tasks[m.cursor].Configuration.ID
			m.state = StateConfirmDelete
		}
	}

	return m, nil
}

func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		deadline, err := dateutil.ParseDate(m.formData.Deadline)
		if err != nil {
			m.formError = err.Error()
			m.state = m.previousState
			return m, nil
		}
		count, _ := strconv.Atoi(m.formData.Count)

		cfg := models.TaskConfiguration{
			ID:      tracker.NewConfigurationID(),
			Content: m.formData.Content,
			Frequency: models.TaskFrequency{
				Unit:  models.FrequencyUnit(m.formData.Unit),
				Count: count,
			},
			Duration:  models.TaskDuration{Deadline: deadline},
			CreatedAt: time.Now(),
		}
		if err := cfg.Validate(); err != nil {
			m.formError = err.Error()
		} else {
			m.tasks = append(m.tasks, models.Task{Configuration: cfg, Instances: []models.TaskInstance{}})
			m.save()
			m.formError = ""
		}
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		for i, task := range m.tasks {
			if task.Configuration.ID == m.taskToDelete {
				m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
				break
			}
		}
		if m.cursor >= len(m.tasks) && m.cursor > 0 {
			m.cursor--
		}
		m.save()
		m.taskToDelete = ""
		m.state = m.previousState
	case "n", "N", "esc":
		m.taskToDelete = ""
		m.state = m.previousState
	}
	return m, nil
}

func newTaskForm(data *taskForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Value(&data.Content).
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
				Value(&data.Unit),
			huh.NewInput().
				Title("Times per unit").
				Value(&data.Count).
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
				Value(&data.Deadline).
				Validate(func(s string) error {
					_, err := dateutil.ParseDate(s)
					return err
				}),
		),
	)
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
