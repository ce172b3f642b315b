package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"doru/internal/config"
	"doru/internal/exitcode"
	"doru/internal/output"
	"doru/internal/todo"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `doru list` and `doru list <status>`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List todos, optionally filtered by status" }
func (c *ListCmd) Usage() string     { return "doru list [open|in-progress|done]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, mgr *todo.Manager, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(errOut, "error: at most one status filter allowed")
		return exitcode.UserError
	}

	var todos []todo.Todo
	if len(args) == 1 {
		status, err := todo.ParseStatus(args[0])
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		todos = mgr.ByStatus(status)
	} else {
		todos = mgr.All()
	}

	output.FormatTodos(out, todos)
	return exitcode.Success
}
