package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ktsuji/habitloop/internal/models"
)

// Calendar rendering shared by the CLI commands and the TUI. The same grid
// builder output serves both the fixed current-period views and the
// navigable-period views.

var (
	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Width(24)
)

// WeekRow renders one task's week as a single line: label then one cell per
// day, Sunday first.
func WeekRow(label string, data models.WeeklyData) string {
	var cells []string
	for _, day := range data.Days {
		cell := "·"
		style := mutedStyle
		if day.IsCompleted {
			cell = "✓"
			style = doneStyle
		}
		if day.IsToday {
			style = todayStyle
			if !day.IsCompleted {
				cell = "○"
			}
		}
		cells = append(cells, style.Render(cell))
	}
	return labelStyle.Render(label) + " " + strings.Join(cells, " ")
}

// MonthGrid renders a monthly calendar: weekday header then one row per week.
// Padding days from the adjacent months are dimmed.
func MonthGrid(data models.MonthlyHistoryData) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	for i, day := range data.Days {
		var cell string
		switch {
		case !day.IsCurrentMonth:
			cell = mutedStyle.Render(fmt.Sprintf("%2d", day.Date.Day()))
		case day.IsCompleted:
			cell = doneStyle.Render(fmt.Sprintf("%2d", day.Date.Day()))
		case day.IsToday:
			cell = todayStyle.Render(fmt.Sprintf("%2d", day.Date.Day()))
		default:
			cell = fmt.Sprintf("%2d", day.Date.Day())
		}
		b.WriteString(cell)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}
