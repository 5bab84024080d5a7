package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ktsuji/habitloop/internal/constants"
	"github.com/ktsuji/habitloop/internal/logger"
	"github.com/ktsuji/habitloop/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS task_configurations (
	id TEXT PRIMARY KEY,
	content TEXT NOT NULL,
	frequency_unit TEXT NOT NULL,
	frequency_count INTEGER NOT NULL,
	deadline TEXT NOT NULL,
	created_at TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS task_instances (
	id TEXT PRIMARY KEY,
	configuration_id TEXT NOT NULL REFERENCES task_configurations(id) ON DELETE CASCADE,
	status TEXT NOT NULL,
	scheduled_date TEXT NOT NULL,
	completed_date TEXT,
	created_at TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_instances_configuration ON task_instances(configuration_id);
`

// SQLiteStore persists the task collection in a SQLite database. Save is
// replace-on-write inside a single transaction, mirroring the domain core's
// replace-on-write value semantics.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}
	return s.open()
}

// Load reads every configuration with its instances. Rows that fail to scan
// or parse are dropped with a warning rather than surfaced, keeping the load
// path fail closed.
func (s *SQLiteStore) Load() ([]models.Task, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT id, content, frequency_unit, frequency_count, deadline, created_at
		FROM task_configurations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query configurations: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	index := make(map[string]int)
	for rows.Next() {
		var cfg models.TaskConfiguration
		var unit, deadline, createdAt string
		if err := rows.Scan(&cfg.ID, &cfg.Content, &unit, &cfg.Frequency.Count, &deadline, &createdAt); err != nil {
			logger.Warn("Dropping unreadable configuration row", "error", err)
			continue
		}
		cfg.Frequency.Unit = models.FrequencyUnit(unit)
		if cfg.Duration.Deadline, err = time.Parse(time.RFC3339, deadline); err != nil {
			logger.Warn("Dropping configuration with bad deadline", "id", cfg.ID, "error", err)
			continue
		}
		if cfg.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			logger.Warn("Dropping configuration with bad created_at", "id", cfg.ID, "error", err)
			continue
		}
		index[cfg.ID] = len(tasks)
		tasks = append(tasks, models.Task{Configuration: cfg, Instances: []models.TaskInstance{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read configurations: %w", err)
	}

	irows, err := s.db.Query(`
		SELECT id, configuration_id, status, scheduled_date, completed_date, created_at
		FROM task_instances ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query instances: %w", err)
	}
	defer irows.Close()

	for irows.Next() {
		var inst models.TaskInstance
		var status, scheduled, createdAt string
		var completed sql.NullString
		if err := irows.Scan(&inst.ID, &inst.ConfigurationID, &status, &scheduled, &completed, &createdAt); err != nil {
			logger.Warn("Dropping unreadable instance row", "error", err)
			continue
		}
		inst.Status = models.TaskStatus(status)
		if inst.ScheduledDate, err = time.Parse(time.RFC3339, scheduled); err != nil {
			logger.Warn("Dropping instance with bad scheduled_date", "id", inst.ID, "error", err)
			continue
		}
		if inst.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			logger.Warn("Dropping instance with bad created_at", "id", inst.ID, "error", err)
			continue
		}
		if completed.Valid {
			t, err := time.Parse(time.RFC3339, completed.String)
			if err != nil {
				logger.Warn("Dropping instance with bad completed_date", "id", inst.ID, "error", err)
				continue
			}
			inst.CompletedDate = &t
		}
		i, ok := index[inst.ConfigurationID]
		if !ok {
			logger.Warn("Dropping orphan instance", "id", inst.ID, "configuration_id", inst.ConfigurationID)
			continue
		}
		tasks[i].Instances = append(tasks[i].Instances, inst)
	}
	if err := irows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instances: %w", err)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (s *SQLiteStore) Save(tasks []models.Task) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM task_instances"); err != nil {
		return fmt.Errorf("failed to clear instances: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM task_configurations"); err != nil {
		return fmt.Errorf("failed to clear configurations: %w", err)
	}

	pos := 0
	ipos := 0
	for _, task := range tasks {
		cfg := task.Configuration
		_, err := tx.Exec(`
			INSERT INTO task_configurations
				(id, content, frequency_unit, frequency_count, deadline, created_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			cfg.ID, cfg.Content, string(cfg.Frequency.Unit), cfg.Frequency.Count,
			cfg.Duration.Deadline.Format(time.RFC3339), cfg.CreatedAt.Format(time.RFC3339), pos)
		if err != nil {
			return fmt.Errorf("failed to insert configuration %s: %w", cfg.ID, err)
		}
		pos++

		for _, inst := range task.Instances {
			var completed any
			if inst.CompletedDate != nil {
				completed = inst.CompletedDate.Format(time.RFC3339)
			}
			_, err := tx.Exec(`
				INSERT INTO task_instances
					(id, configuration_id, status, scheduled_date, completed_date, created_at, position)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				inst.ID, inst.ConfigurationID, string(inst.Status),
				inst.ScheduledDate.Format(time.RFC3339), completed,
				inst.CreatedAt.Format(time.RFC3339), ipos)
			if err != nil {
				return fmt.Errorf("failed to insert instance %s: %w", inst.ID, err)
			}
			ipos++
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
