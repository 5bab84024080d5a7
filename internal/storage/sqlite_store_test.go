package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ktsuji/habitloop/internal/models"
)

// sqliteTask builds a fixture with second precision, matching the RFC3339
// column format.
func sqliteTask() models.Task {
	completed := time.Date(2025, time.September, 1, 9, 15, 0, 0, time.UTC)
	return models.Task{
		Configuration: models.TaskConfiguration{
			ID:        "task-config-db",
			Content:   "morning run",
			Frequency: models.TaskFrequency{Unit: models.FrequencyWeek, Count: 3},
			Duration:  models.TaskDuration{Deadline: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)},
			CreatedAt: time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC),
		},
		Instances: []models.TaskInstance{
			{
				ID:              "task-instance-db-1",
				ConfigurationID: "task-config-db",
				Status:          models.StatusDone,
				ScheduledDate:   completed,
				CompletedDate:   &completed,
				CreatedAt:       completed,
			},
			{
				ID:              "task-instance-db-2",
				ConfigurationID: "task-config-db",
				Status:          models.StatusNotStarted,
				ScheduledDate:   time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC),
				CreatedAt:       completed,
			},
		},
	}
}

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitloop.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreLoadMissingFile(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitloop.db"))
	if _, err := store.Load(); err == nil {
		t.Error("Load() before Init succeeded, want error")
	}
}

func TestSQLiteStoreInitTwice(t *testing.T) {
	store := newTestSQLiteStore(t)
	if err := store.Init(); err == nil {
		t.Error("second Init() succeeded, want already-initialized error")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	want := sqliteTask()
	if err := store.Save([]models.Task{want}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Load() = %d tasks, want 1", len(tasks))
	}

	got := tasks[0]
	cfg := got.Configuration
	if cfg.ID != want.Configuration.ID || cfg.Content != want.Configuration.Content {
		t.Errorf("configuration = %q %q", cfg.ID, cfg.Content)
	}
	if cfg.Frequency.Unit != models.FrequencyWeek || cfg.Frequency.Count != 3 {
		t.Errorf("frequency = %+v, want 3x week", cfg.Frequency)
	}
	if !cfg.Duration.Deadline.Equal(want.Configuration.Duration.Deadline) {
		t.Errorf("deadline = %v, want %v", cfg.Duration.Deadline, want.Configuration.Duration.Deadline)
	}

	if len(got.Instances) != 2 {
		t.Fatalf("instances = %d, want 2", len(got.Instances))
	}
	done := got.Instances[0]
	if done.ID != "task-instance-db-1" || !done.Done() {
		t.Errorf("first instance = %q status %q", done.ID, done.Status)
	}
	if done.CompletedDate == nil || !done.CompletedDate.Equal(*want.Instances[0].CompletedDate) {
		t.Errorf("CompletedDate = %v, want %v", done.CompletedDate, want.Instances[0].CompletedDate)
	}
	open := got.Instances[1]
	if open.Status != models.StatusNotStarted {
		t.Errorf("second instance status = %q, want not-started", open.Status)
	}
	if open.CompletedDate != nil {
		t.Errorf("second instance CompletedDate = %v, want nil", open.CompletedDate)
	}
}

func TestSQLiteStoreSaveReplacesPreviousContent(t *testing.T) {
	store := newTestSQLiteStore(t)

	first := sqliteTask()
	if err := store.Save([]models.Task{first}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := sqliteTask()
	second.Configuration.ID = "task-config-other"
	second.Configuration.Content = "read a chapter"
	for i := range second.Instances {
		second.Instances[i].ID = second.Instances[i].ID + "-other"
		second.Instances[i].ConfigurationID = "task-config-other"
	}
	if err := store.Save([]models.Task{second}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Load() = %d tasks, want 1 (old content must be replaced)", len(tasks))
	}
	if tasks[0].Configuration.ID != "task-config-other" {
		t.Errorf("Configuration.ID = %q, want task-config-other", tasks[0].Configuration.ID)
	}
}

func TestSQLiteStoreSaveEmpty(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.Save([]models.Task{sqliteTask()}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Load() = %d tasks, want 0", len(tasks))
	}
}

func TestSQLiteStorePreservesOrder(t *testing.T) {
	store := newTestSQLiteStore(t)

	var want []models.Task
	for _, id := range []string{"task-config-c", "task-config-a", "task-config-b"} {
		task := sqliteTask()
		task.Configuration.ID = id
		task.Instances = nil
		want = append(want, task)
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("Load() = %d tasks, want 3", len(tasks))
	}
	for i := range want {
		if tasks[i].Configuration.ID != want[i].Configuration.ID {
			t.Errorf("tasks[%d].ID = %q, want %q", i, tasks[i].Configuration.ID, want[i].Configuration.ID)
		}
	}
}
