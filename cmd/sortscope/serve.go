package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/sortscope"
	"github.com/aretw0/sortscope/internal/cli"
	httpAdapter "github.com/aretw0/sortscope/pkg/adapters/http"
	"github.com/aretw0/sortscope/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves the catalog and sort runs over HTTP:

  GET  /algorithms[?category=]   catalog
  GET  /algorithms/{id}          one descriptor
  POST /sort[?steps=false]       run an algorithm
  GET  /sort/stream              replay steps as server-sent events
  GET  /healthz, /info, /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := cli.LoadConfig(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		logger := cli.NewLogger(os.Stderr, cfg, debug)

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(reg)

		engine := cli.NewEngine(cfg, logger, debug, metrics.Hooks())
		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithVersion(sortscope.Version),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.Serve(ctx, cfg.Addr, handler, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
