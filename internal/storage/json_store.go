package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktsuji/habitloop/internal/constants"
	"github.com/ktsuji/habitloop/internal/logger"
	"github.com/ktsuji/habitloop/internal/models"
)

type document struct {
	Version int           `json:"version"`
	Tasks   []models.Task `json:"tasks"`
}

// JSONStore persists the task collection as a single versioned JSON document.
// Dates round-trip as RFC3339 strings through the models' time.Time fields.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(document{Version: constants.StoreVersion, Tasks: []models.Task{}})
}

// Load reads the stored collection. A missing file is an initialization
// error; a file that cannot be parsed fails closed to an empty collection.
func (s *JSONStore) Load() ([]models.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err == nil && doc.Version >= constants.StoreVersion {
		if doc.Tasks == nil {
			doc.Tasks = []models.Task{}
		}
		return doc.Tasks, nil
	}

	// Older files stored a flat task list keyed by completed dates. Upcast
	// those before giving up on the content.
	if tasks, ok := upcastLegacy(data); ok {
		logger.Info("Upcast legacy task store", "path", s.path, "tasks", len(tasks))
		return tasks, nil
	}

	logger.Warn("Discarding unreadable task store", "path", s.path)
	return []models.Task{}, nil
}

func (s *JSONStore) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return s.write(document{Version: constants.StoreVersion, Tasks: tasks})
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}
