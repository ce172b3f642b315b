// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown id or status).
	UserError = 1

	// ConfigError indicates a configuration or path resolution error.
	ConfigError = 2

	// StorageError indicates a load or save failure.
	StorageError = 3
)
