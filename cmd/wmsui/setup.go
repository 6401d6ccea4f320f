package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/charmbracelet/lipgloss"

	"github.com/wmspro/wmsui/internal/config"
	"github.com/wmspro/wmsui/internal/telemetry"
	"github.com/wmspro/wmsui/pkg/api"
	"github.com/wmspro/wmsui/pkg/middleware"
	"github.com/wmspro/wmsui/pkg/toast"
)

// loadConfig reads configuration and applies flag overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configDir)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startTracing installs the tracer provider and returns its flush.
func startTracing(ctx context.Context, cfg *config.Config) (func(), error) {
	shutdown, err := telemetry.Setup(ctx, cfg.Tracing)
	if err != nil {
		return nil, err
	}
	return func() { _ = shutdown(context.Background()) }, nil
}

// newAPIClient builds the backend client described by cfg.
func newAPIClient(cfg *config.Config, logger *slog.Logger, metrics *middleware.Metrics, n toast.Notifier) (*api.Client, error) {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Tracing.Enabled {
		transport = middleware.Transport(transport, middleware.WithTracerName(cfg.Tracing.ServiceName))
	}

	opts := []api.Option{
		api.WithHTTPClient(&http.Client{Transport: transport, Timeout: cfg.API.Timeout}),
		api.WithLogger(logger),
		api.WithMetrics(metrics),
	}
	if n != nil {
		opts = append(opts, api.WithNotifier(n))
	}
	if cfg.API.BaseURL != "" {
		base, err := url.Parse(cfg.API.BaseURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, api.WithBaseURL(base))
	}
	return api.New(opts...), nil
}

// consoleNotifier shows toasts as coloured lines on a terminal.
type consoleNotifier struct {
	w io.Writer
}

func newConsoleNotifier(w io.Writer) consoleNotifier {
	return consoleNotifier{w: w}
}

var consoleMarks = map[toast.Type]string{
	toast.TypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("✓"),
	toast.TypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗"),
	toast.TypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("⚠"),
	toast.TypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Render("i"),
}

// Notify implements toast.Notifier.
func (c consoleNotifier) Notify(message string, t toast.Type) *toast.Toast {
	mark, ok := consoleMarks[t]
	if !ok {
		mark = consoleMarks[toast.TypeInfo]
	}
	fmt.Fprintf(c.w, "%s %s\n", mark, message)
	return nil
}
