package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/export"
	"todo/internal/service"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	out    string
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write all tasks as JSON, CSV or PDF" }
func (c *ExportCmd) Usage() string {
	return "todo export [--format json|csv|pdf] [--out <path>]"
}
func (c *ExportCmd) NeedsService() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.out, "out", "", "")
	fs.StringVar(&c.out, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	format := strings.ToLower(strings.TrimSpace(c.format))
	if !isExportFormat(format) {
		fmt.Fprintf(errOut, "error: unknown format: %s\n", c.format)
		return exitcode.UserError
	}
	if format == "pdf" && c.out == "" {
		fmt.Fprintln(errOut, "error: pdf export requires --out")
		return exitcode.UserError
	}

	a := app.New(svc, app.WithLogger(cfg.Log))
	if err := a.Mount(ctx); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	tasks := a.State().Tasks

	if c.out == "" {
		if err := export.Write(out, tasks, format); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	f, err := os.Create(c.out)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := export.Write(f, tasks, format); err != nil {
		f.Close()
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "wrote %d task(s) to %s\n", len(tasks), c.out)
	}
	return exitcode.Success
}

func isExportFormat(format string) bool {
	for _, f := range export.Formats {
		if f == format {
			return true
		}
	}
	return false
}
