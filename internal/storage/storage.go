package storage

import (
	"context"

	"github.com/yartemiuk/assistant/internal/book"
)

// Storage persists both collections as one snapshot. Every backend
// serializes through the models document types, so the persisted
// shapes are identical regardless of the backend.
type Storage interface {
	// Load restores both collections. A missing file or empty
	// database loads as two empty collections, never an error.
	Load(ctx context.Context) (*book.AddressBook, *book.NoteBook, error)

	// Save writes both collections together, all-or-nothing.
	Save(ctx context.Context, contacts *book.AddressBook, notes *book.NoteBook) error

	// Close releases the backend resources.
	Close() error
}
