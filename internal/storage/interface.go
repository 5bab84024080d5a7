package storage

import "github.com/ktsuji/habitloop/internal/models"

// Provider persists the full task collection. The contract is deliberately
// minimal: the domain core never calls storage itself, the presentation layer
// loads the collection, derives views, and saves the replaced collection
// after each mutation.
type Provider interface {
	// Init creates the backing store. It fails if one already exists.
	Init() error
	// Load returns the stored task collection with all date fields revived.
	// Corrupt or partially-structured content yields an empty collection,
	// not an error.
	Load() ([]models.Task, error)
	// Save replaces the stored collection.
	Save(tasks []models.Task) error
	Close() error

	GetConfigPath() string
}
