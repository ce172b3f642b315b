// Package testutil provides testing utilities.
package testutil

import (
	"context"

	"doru/internal/todo"
)

// FakeStorage is an in-memory implementation of storage.Storage for testing.
type FakeStorage struct {
	Todos []todo.Todo

	// Error injection for testing
	LoadErr error
	SaveErr error

	// Call counters
	LoadCalls int
	SaveCalls int
}

// NewFakeStorage creates a FakeStorage seeded with the given todos.
func NewFakeStorage(todos ...todo.Todo) *FakeStorage {
	return &FakeStorage{Todos: todos}
}

// Load implements storage.Storage.
func (f *FakeStorage) Load(ctx context.Context) ([]todo.Todo, error) {
	f.LoadCalls++
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	out := make([]todo.Todo, len(f.Todos))
	copy(out, f.Todos)
	return out, nil
}

// Save implements storage.Storage.
func (f *FakeStorage) Save(ctx context.Context, todos []todo.Todo) error {
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Todos = make([]todo.Todo, len(todos))
	copy(f.Todos, todos)
	return nil
}
