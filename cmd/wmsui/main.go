package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wmspro/wmsui/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var shown silentError
		if stderrors.As(err, &shown) {
			os.Exit(1)
		}
		if e, ok := errors.As(err); ok && e.Code != "" {
			fmt.Fprint(os.Stderr, e.Format())
		} else {
			errorMsg("%s", err)
		}
		os.Exit(1)
	}
}

type rootOptions struct {
	configDir string
	logLevel  string
	baseURL   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wmsui",
		Short: "WMS Pro page server and backend client",
		Long: `wmsui serves the WMS Pro pages and talks to the WMS backend.

The serve command hosts the pages with their modal, toasts, sidebar
and global search driven from the server over a WebSocket bridge.
The request commands call the backend API directly, reporting
failures the way the pages do.

Configuration is read from wmsui.json and .env in the config
directory, then from WMSUI_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configDir, "config-dir", "C", ".", "Directory holding wmsui.json and .env")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Backend base URL override")

	rootCmd.AddCommand(
		serveCmd(opts),
		requestCmd(opts, "get"),
		requestCmd(opts, "post"),
		requestCmd(opts, "put"),
		requestCmd(opts, "delete"),
		productsCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
