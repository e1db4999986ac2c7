// Package contract provides interfaces and shared utilities for the armory CLI's internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/armory/schema"
)

// StoreManager defines the interface for managing persistence stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetLinkStore() LinkStore
}

// LinkStore defines the interface for named share query storage.
// This allows mocking the store for testing.
type LinkStore interface {
	// Save stores a query under name, replacing any previous query with that name
	Save(name, query string, savedAt time.Time) (schema.Link, error)

	// Get returns the link stored under name
	Get(name string) (schema.Link, error)

	// List returns every stored link, most recent first
	List() ([]schema.Link, error)

	// Delete removes the link stored under name
	Delete(name string) error

	// GetStatus returns status information about the link store
	GetStatus() (schema.LinkStatus, error)

	// Close closes the underlying connection
	Close() error
}
