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

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return []string{"-h", "--help"} }
func (c *HelpCmd) Synopsis() string  { return "Show this help" }
func (c *HelpCmd) Usage() string     { return "doru help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, mgr *todo.Manager, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage: doru [--path <file>] [--backend json|redis|mysql] [--quiet] [--debug] <command> [args]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-46s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	return exitcode.Success
}
