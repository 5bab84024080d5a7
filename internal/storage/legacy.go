package storage

import (
	"encoding/json"
	"time"

	"github.com/ktsuji/habitloop/internal/dateutil"
	"github.com/ktsuji/habitloop/internal/models"
	"github.com/ktsuji/habitloop/internal/tracker"
)

// legacyTask is the flat persisted shape from before the configuration +
// instances model: a habit with a bare list of completed date strings.
type legacyTask struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	CompletedDates []string  `json:"completed_dates"`
	Deadline       time.Time `json:"deadline"`
	CreatedAt      time.Time `json:"created_at"`
}

// upcastLegacy converts a legacy flat task list into the aggregate model,
// synthesizing one done instance per completed date. It reports false when
// the data is not a usable legacy document either.
func upcastLegacy(data []byte) ([]models.Task, bool) {
	var legacy []legacyTask
	if err := json.Unmarshal(data, &legacy); err != nil {
		// Version 1 documents wrapped the same list in a "tasks" field.
		var doc struct {
			Version int          `json:"version"`
			Tasks   []legacyTask `json:"tasks"`
		}
		if err := json.Unmarshal(data, &doc); err != nil || doc.Version >= 2 {
			return nil, false
		}
		legacy = doc.Tasks
	}
	if legacy == nil {
		return nil, false
	}

	tasks := make([]models.Task, 0, len(legacy))
	for _, lt := range legacy {
		if lt.ID == "" || lt.Content == "" {
			return nil, false
		}
		cfg := models.TaskConfiguration{
			ID:        lt.ID,
			Content:   lt.Content,
			Frequency: models.TaskFrequency{Unit: models.FrequencyDay, Count: 1},
			Duration:  models.TaskDuration{Deadline: lt.Deadline},
			CreatedAt: lt.CreatedAt,
		}

		instances := make([]models.TaskInstance, 0, len(lt.CompletedDates))
		for _, ds := range lt.CompletedDates {
			day, err := dateutil.ParseDate(ds)
			if err != nil {
				continue
			}
			inst := tracker.NewInstanceOn(lt.ID, day)
			inst.Status = models.StatusDone
			completed := day
			inst.CompletedDate = &completed
			instances = append(instances, inst)
		}

		tasks = append(tasks, models.Task{Configuration: cfg, Instances: instances})
	}
	return tasks, true
}
