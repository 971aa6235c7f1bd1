package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyrapath/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver over HTTP.

Endpoints:
  POST /v1/solve   {"target": 720, "rows": [[2],[4,3],...], "force": false}
  GET  /v1/sample  sample input in the text format
  GET  /v1/stats   request and solve counters
  GET  /healthz    liveness

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Serve.Addr
			}
			ctx := cmd.Context()
			srv := server.New(c.newRunner(), loggerFromContext(ctx), c.Config.Serve)
			printKeyValue("Listening", "http://"+displayAddr(addr))
			printKeyValue("Max depth", fmt.Sprint(c.Config.Serve.MaxDepth))
			printDetail("Press Ctrl+C to stop")
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// displayAddr turns ":8080" into "localhost:8080" for printing.
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
