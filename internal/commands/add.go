package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
	Register(&CreateCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(description string) {
	c.description = description
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "todo add [--description <text>] <title...>"
}
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, svc, c.description, args, out, errOut)
}

// CreateCmd is an alias for AddCmd.
type CreateCmd struct {
	description string
}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return nil }
func (c *CreateCmd) Synopsis() string  { return "Create a task (alias for add)" }
func (c *CreateCmd) Usage() string {
	return "todo create [--description <text>] <title...>"
}
func (c *CreateCmd) NeedsService() bool { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, svc, c.description, args, out, errOut)
}

// runAdd is the shared implementation for add and create commands.
// It fills the form of an App and submits it, so validation and the
// follow-up refresh behave exactly as in the interactive UI.
func runAdd(ctx context.Context, cfg *config.Config, svc service.Service, description string, args []string, out, errOut io.Writer) int {
	a := app.New(svc,
		app.WithLogger(cfg.Log),
		app.WithAlerter(app.AlertFunc(func(msg string) {
			fmt.Fprintf(errOut, "error: %s\n", msg)
		})),
	)
	a.SetTitle(strings.Join(args, " "))
	a.SetDescription(description)

	if err := a.HandleSubmit(ctx); err != nil {
		if errors.Is(err, app.ErrTitleRequired) {
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
