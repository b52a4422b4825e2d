package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
	"todo/internal/tui"
)

// runUI is swapped out by tests; the real UI needs a terminal.
var runUI = tui.Run

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command: the interactive form and task list.
type UICmd struct{}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return []string{"tui"} }
func (c *UICmd) Synopsis() string   { return "Open the interactive task page" }
func (c *UICmd) Usage() string      { return "todo ui [common flags]" }
func (c *UICmd) NeedsService() bool { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// The alt screen owns the terminal, so diagnostics go to a file.
	log, err := logging.Open(cfg.LogPath(), cfg.Debug)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	defer log.Close()

	a := app.New(svc, app.WithLogger(log))
	if err := runUI(ctx, a); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
