package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/server"
	"todo/internal/service"
	"todo/internal/store"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd implements the serve command, which runs the task service.
type ServeCmd struct {
	addr      string
	storeKind string
	dsn       string
}

func (c *ServeCmd) Name() string      { return "serve" }
func (c *ServeCmd) Aliases() []string { return []string{"server"} }
func (c *ServeCmd) Synopsis() string  { return "Run the task service" }
func (c *ServeCmd) Usage() string {
	return "todo serve [--addr <host:port>] [--store memory|sqlite|mysql] [--dsn <dsn>]"
}
func (c *ServeCmd) NeedsService() bool { return false }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "", "")
	fs.StringVar(&c.storeKind, "store", "", "")
	fs.StringVar(&c.dsn, "dsn", "", "")
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	settings := cfg.Server
	if c.addr != "" {
		settings.Addr = c.addr
	}
	if c.storeKind != "" {
		settings.Store = c.storeKind
	}
	if c.dsn != "" {
		settings.DSN = c.dsn
	}

	st, err := store.Open(ctx, settings.Store, settings.DSN)
	if err != nil {
		fmt.Fprintf(errOut, "error: store: %v\n", err)
		return exitcode.BackendError
	}
	defer st.Close()

	log := logging.New(errOut, cfg.Debug)
	if cfg.Quiet {
		log = nil
	}

	if err := server.New(st, log).ListenAndServe(ctx, settings.Addr); err != nil {
		fmt.Fprintf(errOut, "error: server: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
