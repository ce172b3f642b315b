// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"doru/internal/config"
	"doru/internal/todo"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the todo
	// collection. Commands like help and version return false; they run
	// without a load/save cycle.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command against the loaded manager.
	// cfg is always provided; mgr is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code. The dispatcher saves the manager's collection
	// after Run, regardless of the returned code.
	Run(ctx context.Context, cfg *config.Config, mgr *todo.Manager, args []string, out, errOut io.Writer) int
}
