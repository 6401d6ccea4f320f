package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wmspro/wmsui/internal/config"
	"github.com/wmspro/wmsui/pkg/icons"
	"github.com/wmspro/wmsui/pkg/middleware"
	"github.com/wmspro/wmsui/pkg/pages"
	"github.com/wmspro/wmsui/pkg/server"
	"github.com/wmspro/wmsui/pkg/shell"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the WMS pages",
		Long: `Serve the WMS pages over HTTP with a WebSocket bridge per page.

Endpoints:
  /            pages (the inventory list lives at /inventory)
  /ws          page bridge
  /metrics     Prometheus metrics
  /healthz     liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			stop, err := startTracing(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer stop()
			if addr != "" {
				cfg.Server.Addr = addr
			}
			srv, err := newServer(cfg)
			if err != nil {
				return err
			}
			printBanner()
			success("Listening on %s", cfg.Server.Addr)
			return srv.Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")

	return cmd
}

// newServer wires the page server from configuration.
func newServer(cfg *config.Config) (*server.Server, error) {
	logger := config.NewLogger(cfg.Log, os.Stderr)
	metrics := middleware.NewMetrics(middleware.WithNamespace(cfg.Metrics.Namespace))

	client, err := newAPIClient(cfg, logger, metrics, nil)
	if err != nil {
		return nil, err
	}

	sc := server.DefaultServerConfig()
	sc.Address = cfg.Server.Addr
	sc.Title = cfg.Server.Title
	sc.MaxSessions = cfg.Server.MaxSessions
	sc.RenderDebounce = cfg.Server.RenderDebounce
	sc.DevMode = cfg.Server.DevMode

	shellOpts := []shell.Option{
		shell.WithToastTiming(cfg.Toast.Hold, cfg.Toast.Fade),
		shell.WithSearch(cfg.Search.Path, cfg.Search.Param),
	}
	opts := []server.Option{
		server.WithLogger(logger),
		server.WithMetrics(metrics),
		server.WithAPI(client),
		server.WithPage("/inventory", pages.Inventory()),
	}
	if cfg.Server.InlineIcons {
		shellOpts = append(shellOpts, shell.WithIcons(icons.Lucide{}))
	} else if cfg.Server.IconScript != "" {
		opts = append(opts, server.WithHeadScripts(cfg.Server.IconScript))
	}
	opts = append(opts, server.WithShellOptions(shellOpts...))
	if dir := cfg.Server.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			opts = append(opts, server.WithStatic(os.DirFS(dir)))
		}
	}

	return server.New(sc, opts...), nil
}

func printBanner() {
	fmt.Println()
	fmt.Println("  \033[1mwmsui\033[0m " + version)
	fmt.Println()
}
