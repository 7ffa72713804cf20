package db

import (
	"context"
	"fmt"
)

// Store types accepted by Open.
const (
	TypeJSON   = "json"
	TypeSQLite = "sqlite"
)

// Store is the uniform contract both backends implement. A store is opened
// at the start of a command invocation and closed at the end; nothing is
// cached across invocations.
type Store interface {
	// Add appends an item to the collection. Names are unique by
	// convention only; Add does not reject duplicates.
	Add(ctx context.Context, todo *Todo) error

	// List returns all items sorted per SortTodos semantics. An empty
	// sortBy returns insertion order.
	List(ctx context.Context, sortBy, sortOrder string) ([]*Todo, error)

	// MarkDone flips the done flag on the first item, in insertion order,
	// whose name matches exactly. Returns *NotFoundError when nothing
	// matches. Items beyond the first match are left alone.
	MarkDone(ctx context.Context, name string) error

	// Close releases the underlying file or database handle.
	Close() error
}

// Open constructs the backend selected by dbType against the file at path.
// No logic lives here beyond backend selection.
func Open(ctx context.Context, dbType, path string) (Store, error) {
	switch dbType {
	case TypeJSON:
		return NewJSONStore(path), nil
	case TypeSQLite, "sqlite3":
		return NewSQLiteStore(ctx, path)
	}

	return nil, &ValidationError{
		Field:  "db-type",
		Reason: fmt.Sprintf("%q is not a supported store type, use json or sqlite", dbType),
	}
}
