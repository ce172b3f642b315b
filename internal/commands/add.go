package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"doru/internal/config"
	"doru/internal/exitcode"
	"doru/internal/todo"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a new todo" }
func (c *AddCmd) Usage() string     { return "doru add <content...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, mgr *todo.Manager, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: content required")
		return exitcode.UserError
	}

	content := strings.Join(args, " ")
	if strings.TrimSpace(content) == "" {
		fmt.Fprintln(errOut, "error: content required")
		return exitcode.UserError
	}

	id := mgr.Add(content)

	if !cfg.Quiet {
		fmt.Fprintf(out, "added (ID: %d)\n", id)
	}
	return exitcode.Success
}
