// Package store persists the address book. Every save writes a whole-book
// snapshot and every load rebuilds the book from scratch; the JSON backend
// gets all-or-nothing semantics from a temp-file rename, the SQLite backend
// from a single transaction.
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inkdrift/blackbook/pkg/types"
)

// BookFileName is the base name of the address book file; backends append
// their own extension.
const BookFileName = "addressbook"

// Persistence errors.
var (
	ErrCorrupt = errors.New("corrupt address book data")
)

// Store loads and saves whole address book snapshots.
type Store interface {
	// Load reads the address book and attaches the given view to it.
	// A missing data file yields an empty book; unreadable or invalid
	// data fails with ErrCorrupt in the error chain.
	Load(view types.View) (*types.AddressBook, error)

	// Save writes the whole book, replacing the previous snapshot only
	// once the new one is durable.
	Save(book *types.AddressBook) error
}

// Open returns the store selected by the config. The config is validated
// first, so an unknown backend fails before any file is touched.
func Open(cfg types.Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendJSON:
		return NewFileStore(cfg.DataDir), nil
	case types.BackendSQLite:
		return NewSQLiteStore(cfg.DataDir), nil
	default:
		return nil, fmt.Errorf("backend %q: %w", cfg.Backend, types.ErrBackendUnknown)
	}
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
