// Package cli parses arguments and drives the load, run, save cycle.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"doru/internal/commands"
	"doru/internal/config"
	"doru/internal/exitcode"
	"doru/internal/logging"
	"doru/internal/storage"
	"doru/internal/todo"
)

// StorageFactory creates a Storage backend from config.
// Used to inject the backend during dispatch.
type StorageFactory func(ctx context.Context, cfg *config.Config) (storage.Storage, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StorageFactory
}

// NewDispatcher creates a new dispatcher with the given registry and storage
// factory.
func NewDispatcher(registry *commands.Registry, factory StorageFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// Leading flags belong to a command; bare flags other than registered
	// aliases (--help, --version) are an error.
	if strings.HasPrefix(cmdName, "-") {
		if cmd, ok := d.registry.Find(cmdName); ok {
			return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
		}
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var path string
	var backend string
	var quiet bool
	var debug bool

	fs.StringVar(&path, "path", "", "")
	fs.StringVar(&path, "p", "", "")
	fs.StringVar(&backend, "backend", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(path, backend)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger := logging.New(errOut, cfg.Debug)

	if !cmd.NeedsStore() {
		return cmd.Run(ctx, cfg, nil, positionalArgs, out, errOut)
	}

	// The JSON backend expects the todos file to exist before the first
	// load; create it and its parents on first use.
	if cfg.Backend == config.BackendJSON {
		if err := cfg.EnsureFile(); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.ConfigError
		}
	}

	logger.Debug("opening storage", "backend", cfg.Backend, "path", cfg.Path)
	store, err := d.factory(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %s\n", err)
		return exitcode.StorageError
	}

	todos, err := store.Load(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.StorageError
	}
	logger.Debug("loaded todos", "count", len(todos))

	mgr := todo.NewManager(todos)

	code := cmd.Run(ctx, cfg, mgr, positionalArgs, out, errOut)

	// Save unconditionally, a NotFound from the command included; the
	// collection is unchanged in that case and the rewrite is harmless.
	if err := store.Save(ctx, mgr.All()); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.StorageError
	}
	logger.Debug("saved todos", "count", len(mgr.All()))

	return code
}
