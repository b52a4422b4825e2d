package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todo help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %-44s %s\n", "todo", "List all tasks")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-44s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Common flags:
  --config <dir>       Override config directory
  --endpoint <url>     Task service URL (default http://localhost:8080/)
  --backend <name>     Task backend: http or google
  --quiet              Suppress informational output
  --debug              Print debug logs to stderr

Environment:
  TODO_ENDPOINT, TODO_BACKEND, TODO_ADDR, TODO_STORE, TODO_DSN
  (also read from .env in the config directory and the working directory)
`
