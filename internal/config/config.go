// Package config resolves the todos file location and storage backend from
// flags, environment variables, and an optional TOML config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "doru"

	// TodosFile is the default todos filename.
	TodosFile = "todos.json"

	// ConfigFile is the optional TOML configuration filename.
	ConfigFile = "config.toml"

	// DefaultRedisKey is the key the redis backend stores the collection
	// under when none is configured.
	DefaultRedisKey = "doru:todos"
)

// Backend selects the storage implementation.
type Backend string

const (
	BackendJSON  Backend = "json"
	BackendRedis Backend = "redis"
	BackendMySQL Backend = "mysql"
)

// Config holds the resolved storage settings for one invocation.
type Config struct {
	// Path is the todos file location used by the JSON backend.
	Path string

	// Backend names the storage implementation to use.
	Backend Backend

	// RedisURL and RedisKey configure the redis backend.
	RedisURL string
	RedisKey string

	// MySQLDSN configures the mysql backend.
	MySQLDSN string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the shape of the optional config.toml.
type fileConfig struct {
	Path     string `toml:"path"`
	Backend  string `toml:"backend"`
	RedisURL string `toml:"redis_url"`
	RedisKey string `toml:"redis_key"`
	MySQLDSN string `toml:"mysql_dsn"`
}

// New resolves the configuration. Explicit overrides (flags) win over
// environment variables, which win over the config file, which wins over the
// built-in defaults.
func New(pathOverride, backendOverride string) (*Config, error) {
	fc, err := loadConfigFile()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Path:     firstNonEmpty(pathOverride, os.Getenv("DORU_PATH"), fc.Path),
		Backend:  Backend(firstNonEmpty(backendOverride, os.Getenv("DORU_BACKEND"), fc.Backend, string(BackendJSON))),
		RedisURL: firstNonEmpty(os.Getenv("DORU_REDIS_URL"), fc.RedisURL, "redis://localhost:6379"),
		RedisKey: firstNonEmpty(os.Getenv("DORU_REDIS_KEY"), fc.RedisKey, DefaultRedisKey),
		MySQLDSN: firstNonEmpty(os.Getenv("DORU_MYSQL_DSN"), fc.MySQLDSN),
	}

	if cfg.Path == "" {
		path, err := DefaultTodosPath()
		if err != nil {
			return nil, err
		}
		cfg.Path = path
	}

	switch cfg.Backend {
	case BackendJSON, BackendRedis, BackendMySQL:
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
	if cfg.Backend == BackendMySQL && cfg.MySQLDSN == "" {
		return nil, fmt.Errorf("mysql backend requires DORU_MYSQL_DSN or mysql_dsn in %s", ConfigFile)
	}

	return cfg, nil
}

// DefaultTodosPath returns the default todos file location,
// $HOME/.doru/todos.json.
func DefaultTodosPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine home directory: %w", err)
	}
	return filepath.Join(home, "."+AppName, TodosFile), nil
}

// DefaultConfigDir returns the configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// loadConfigFile reads config.toml from the config directory. A missing file
// is not an error.
func loadConfigFile() (fileConfig, error) {
	var fc fileConfig
	path := filepath.Join(DefaultConfigDir(), ConfigFile)
	if _, err := os.Stat(path); err != nil {
		return fc, nil
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fc, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return fc, nil
}

// EnsureFile creates the todos file and its parent directories if they do
// not exist, so the JSON backend always has a readable location.
func (c *Config) EnsureFile() error {
	if _, err := os.Stat(c.Path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(c.Path)
	if err != nil {
		return err
	}
	return file.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
