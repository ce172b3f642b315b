package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"doru/internal/config"
	"doru/internal/exitcode"
	"doru/internal/todo"
)

// Version is the application version string.
const Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return []string{"--version"} }
func (c *VersionCmd) Synopsis() string  { return "Show version" }
func (c *VersionCmd) Usage() string     { return "doru version" }
func (c *VersionCmd) NeedsStore() bool  { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, mgr *todo.Manager, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "doru %s\n", Version)
	return exitcode.Success
}
