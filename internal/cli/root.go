package cli

import (
	"fmt"
	"strings"

	"github.com/ktsuji/habitloop/internal/backup"
	"github.com/ktsuji/habitloop/internal/logger"
	"github.com/ktsuji/habitloop/internal/models"
	"github.com/ktsuji/habitloop/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FindTask locates a task by configuration id or by content, case-insensitive.
// It returns the index into tasks, or an error naming the reference.
func FindTask(tasks []models.Task, ref string) (int, error) {
	for i, task := range tasks {
		if task.Configuration.ID == ref {
			return i, nil
		}
	}
	for i, task := range tasks {
		if strings.EqualFold(task.Configuration.Content, ref) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("task %q not found", ref)
}

// FormatFrequency formats a task frequency into a human-readable string
func FormatFrequency(f models.TaskFrequency) string {
	if f.Count == 1 {
		switch f.Unit {
		case models.FrequencyDay:
			return "daily"
		case models.FrequencyWeek:
			return "weekly"
		case models.FrequencyMonth:
			return "monthly"
		case models.FrequencyYear:
			return "yearly"
		}
	}
	return fmt.Sprintf("%dx per %s", f.Count, f.Unit)
}
