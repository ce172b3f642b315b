package cli

import (
	"context"
	"fmt"

	"doru/internal/config"
	"doru/internal/storage"
)

// DefaultFactory builds the storage backend named by the config.
func DefaultFactory(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		return storage.NewJSON(cfg.Path), nil
	case config.BackendRedis:
		return storage.NewRedis(cfg.RedisURL, cfg.RedisKey)
	case config.BackendMySQL:
		return storage.NewMySQL(cfg.MySQLDSN)
	}
	return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
}
