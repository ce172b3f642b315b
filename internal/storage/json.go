package storage

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"doru/internal/todo"
)

// todosSchema describes the durable file format: a JSON array of todo
// objects with an integer id, string content, and an exact status spelling.
const todosSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "content", "status"],
		"properties": {
			"id": {"type": "integer", "minimum": 0},
			"content": {"type": "string"},
			"status": {"enum": ["Open", "InProgress", "Done"]}
		}
	}
}`

var compiledSchema = jsonschema.MustCompileString("todos.schema.json", todosSchema)

// Compile-time check that JSON satisfies the Storage contract.
var _ Storage = (*JSON)(nil)

// JSON persists the todo collection as a JSON array in a single flat file.
type JSON struct {
	path string
}

// NewJSON creates a JSON backend bound to the given file path. The file must
// already exist when Save is called; config.EnsureFile handles creation.
func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

// Load reads and parses the todos file. An empty or whitespace-only file is
// an empty collection.
func (s *JSON) Load(ctx context.Context) ([]todo.Todo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &FileError{Path: s.path, Err: err}
	}

	if strings.TrimSpace(string(data)) == "" {
		return []todo.Todo{}, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}

	var todos []todo.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	return todos, nil
}

// Save truncates the file and writes the collection as a JSON array.
func (s *JSON) Save(ctx context.Context, todos []todo.Todo) error {
	if todos == nil {
		todos = []todo.Todo{}
	}

	data, err := json.Marshal(todos)
	if err != nil {
		return &SerializeError{Err: err}
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return &FileError{Path: s.path, Err: err}
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return &FileError{Path: s.path, Err: err}
	}
	return nil
}
