package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/logger"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the loan tools over HTTP",
	Long: `Start an HTTP server exposing the loan tools.

Routes:
  GET  /health        liveness probe
  GET  /metrics       Prometheus metrics
  GET  /tools         registered tool names
  POST /tools/:name   invoke a tool, JSON object body is the parameter set`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(current.cfg, current.registry, logger.WithComponent("http"))
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
