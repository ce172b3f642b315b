package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"doru/internal/todo"
)

var _ Storage = (*Redis)(nil)

// Redis persists the whole todo collection as one JSON value under a single
// key. A database-backed variant of the same contract the JSON file fulfills.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis connects to the redis instance at url and binds the backend to key.
func NewRedis(url, key string) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client, key: key}, nil
}

// Load reads the collection from the bound key. A missing key is an empty
// collection.
func (s *Redis) Load(ctx context.Context) ([]todo.Todo, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []todo.Todo{}, nil
	}
	if err != nil {
		return nil, &FileError{Path: s.key, Err: err}
	}

	var todos []todo.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, &ParseError{Path: s.key, Err: err}
	}
	return todos, nil
}

// Save replaces the value under the bound key with the serialized collection.
func (s *Redis) Save(ctx context.Context, todos []todo.Todo) error {
	if todos == nil {
		todos = []todo.Todo{}
	}

	data, err := json.Marshal(todos)
	if err != nil {
		return &SerializeError{Err: err}
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return &FileError{Path: s.key, Err: err}
	}
	return nil
}

// Close releases the underlying client connection.
func (s *Redis) Close() error {
	return s.client.Close()
}
