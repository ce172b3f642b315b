// Package storage defines the load/save contract for durable todo
// collections and provides the JSON file, redis, and MySQL backends.
package storage

import (
	"context"

	"doru/internal/todo"
)

// Storage is the persistence contract. The location (file path, redis key,
// database table) is bound when the backend is constructed; Load and Save
// operate on the whole collection at once.
type Storage interface {
	// Load reads the durable collection. An empty-but-readable source
	// yields an empty slice, not an error.
	Load(ctx context.Context) ([]todo.Todo, error)

	// Save replaces the durable collection with the given todos,
	// preserving their order.
	Save(ctx context.Context, todos []todo.Todo) error
}
