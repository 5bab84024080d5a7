package models

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

type FrequencyUnit string

const (
	FrequencyDay   FrequencyUnit = "day"
	FrequencyWeek  FrequencyUnit = "week"
	FrequencyMonth FrequencyUnit = "month"
	FrequencyYear  FrequencyUnit = "year"
)

// TaskFrequency describes how often a habit should be performed, e.g. 3 per
// week. It is display text only; instance creation is never checked against it.
type TaskFrequency struct {
	Unit  FrequencyUnit `json:"unit"`
	Count int           `json:"count"`
}

// TaskDuration holds the end date of a habit. The deadline variant is the
// canonical duration model.
type TaskDuration struct {
	Deadline time.Time `json:"deadline"`
}

// TaskConfiguration is the immutable definition of a habit. The ID is assigned
// at creation and never reassigned.
type TaskConfiguration struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Frequency TaskFrequency `json:"frequency"`
	Duration  TaskDuration  `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// Validate checks configuration fields before they reach the domain service.
func (c TaskConfiguration) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("content must not be empty")
	}
	if c.Frequency.Count <= 0 {
		return fmt.Errorf("frequency count must be greater than zero")
	}
	switch c.Frequency.Unit {
	case FrequencyDay, FrequencyWeek, FrequencyMonth, FrequencyYear:
	default:
		return fmt.Errorf("invalid frequency unit: %s", c.Frequency.Unit)
	}
	if c.Duration.Deadline.IsZero() {
		return fmt.Errorf("deadline must be set")
	}
	return nil
}

// TaskInstance is one scheduled occurrence of a habit on a specific calendar
// day. CompletedDate is set if and only if Status is done.
type TaskInstance struct {
	ID              string     `json:"id"`
	ConfigurationID string     `json:"configuration_id"`
	Status          TaskStatus `json:"status"`
	ScheduledDate   time.Time  `json:"scheduled_date"`
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Done reports whether the instance has been completed.
func (i TaskInstance) Done() bool {
	return i.Status == StatusDone
}

// Task is the aggregate of a habit configuration and its dated instances. The
// aggregate owns both exclusively; instances carry only a weak back-reference
// via ConfigurationID.
type Task struct {
	Configuration TaskConfiguration `json:"configuration"`
	Instances     []TaskInstance    `json:"instances"`
}
