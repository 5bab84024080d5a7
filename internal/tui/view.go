package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/render"
	"github.com/ktsuji/habitloop/internal/streak"
	"github.com/ktsuji/habitloop/internal/tracker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTasks:
		content = m.viewTasks()
	case StateWeekly:
		content = m.viewWeekly()
	case StateMonthly:
		content = m.viewMonthly()
	case StateAdd:
		if m.form != nil {
			content = m.form.View()
		}
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var banner string
	if m.formError != "" {
		banner = dangerStyle.Render("Error: " + m.formError)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	tabs := []struct {
		state SessionState
		label string
	}{
		{StateTasks, "Habits"},
		{StateWeekly, "Week"},
		{StateMonthly, "Month"},
	}

	var parts []string
	active := m.state
	if active == StateAdd || active == StateConfirmDelete {
		active = m.previousState
	}
	for _, tab := range tabs {
		if tab.state == active {
			parts = append(parts, activeTabStyle.Render(tab.label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return subtleStyle.Render("No habits yet. Press 'a' to add one.")
	}

	now := time.Now()
	stats := tracker.StatsAt(m.tasks, now)

	var b strings.Builder
	for i, task := range m.tasks {
		mark := "○"
		for _, inst := range task.Instances {
			if dateutil.IsSameDay(inst.ScheduledDate, now) && inst.Done() {
				mark = "✓"
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

		line := fmt.Sprintf("%s %s  (streak %d, %d days left)",
			mark, task.Configuration.Content, current, tracker.RemainingDaysAt(task, now))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%d/%d done today · best streak %d · %d total completions",
		stats.CompletedToday, stats.TotalTasks, stats.CurrentStreak, stats.TotalCompletions)))
	return b.String()
}

func (m Model) viewWeekly() string {
	if len(m.tasks) == 0 {
		return subtleStyle.Render("No habits yet. Press 'a' to add one.")
	}

	title := fmt.Sprintf("Week of %s", dateutil.FormatDate(m.weekStart))
	if dateutil.IsCurrentWeek(m.weekStart) {
		title += " (this week)"
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for i, task := range m.tasks {
		data := tracker.FormatWeeklyData(task, m.weekStart)
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(prefix + render.WeekRow(task.Configuration.Content, data))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewMonthly() string {
	if len(m.tasks) == 0 {
		return subtleStyle.Render("No habits yet. Press 'a' to add one.")
	}

	cursor := m.cursor
	if cursor >= len(m.tasks) {
		cursor = len(m.tasks) - 1
	}
	task := m.tasks[cursor]
	data := tracker.FormatMonthlyHistory(task, m.year, m.month)

	title := fmt.Sprintf("%s — %s", dateutil.MonthName(m.year, m.month), task.Configuration.Content)
	if dateutil.IsCurrentMonth(m.year, m.month) {
		title += " (this month)"
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(render.MonthGrid(data))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%d completions this month", data.TotalCompletions)))
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	for _, task := range m.tasks {
		if task.Configuration.ID == m.taskToDelete {
			return dangerStyle.Render(fmt.Sprintf("Delete habit %q and all its history? (y/n)", task.Configuration.Content))
		}
	}
	return ""
}
