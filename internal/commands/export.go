package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"doru/internal/config"
	"doru/internal/exitcode"
	"doru/internal/export"
	"doru/internal/todo"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format  string
	outPath string
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export all todos as json, csv, or pdf" }
func (c *ExportCmd) Usage() string     { return "doru export [--format json|csv|pdf] [--out <file>]" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.format, "f", "json", "")
	fs.StringVar(&c.outPath, "out", "", "")
	fs.StringVar(&c.outPath, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, mgr *todo.Manager, args []string, out, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "error: export takes no arguments")
		return exitcode.UserError
	}

	dest := out
	if c.outPath != "" {
		file, err := os.Create(c.outPath)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StorageError
		}
		defer file.Close()
		dest = file
	}

	if err := export.Write(dest, mgr.All(), c.format); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.outPath != "" && !cfg.Quiet {
		fmt.Fprintf(out, "exported to %s\n", c.outPath)
	}
	return exitcode.Success
}
