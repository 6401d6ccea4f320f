package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wmspro/wmsui/internal/config"
	"github.com/wmspro/wmsui/internal/errors"
	"github.com/wmspro/wmsui/pkg/api"
)

// requestCmd builds one of the get, post, put and delete commands.
func requestCmd(opts *rootOptions, method string) *cobra.Command {
	hasBody := method == "post" || method == "put"
	use := method + " <url>"
	if hasBody {
		use += " [json]"
	}

	var bodyFile string

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Send a %s request to the backend", strings.ToUpper(method)),
		Long: fmt.Sprintf(`Send a %s request to the backend and print the JSON response.

Relative URLs resolve against api.base_url. Failures are reported
with the same messages the pages show as toasts.`, strings.ToUpper(method)),
		Args: cobra.RangeArgs(1, argLimit(hasBody)),
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
			client, err := newCLIClient(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var body any
			if hasBody {
				raw, err := readBody(cmd.InOrStdin(), args[1:], bodyFile)
				if err != nil {
					return err
				}
				if raw != nil {
					body = raw
				}
			}

			var out json.RawMessage
			ctx := cmd.Context()
			switch method {
			case "get":
				err = client.Get(ctx, args[0], &out)
			case "post":
				err = client.Post(ctx, args[0], body, &out)
			case "put":
				err = client.Put(ctx, args[0], body, &out)
			case "delete":
				err = client.Delete(ctx, args[0], &out)
			}
			if err != nil {
				// Already reported through the notifier.
				return silent(err)
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	if hasBody {
		cmd.Flags().StringVarP(&bodyFile, "file", "f", "", "Read the JSON body from a file (- for stdin)")
	}

	return cmd
}

func argLimit(hasBody bool) int {
	if hasBody {
		return 2
	}
	return 1
}

// newCLIClient builds a backend client that reports failures on stderr.
// Only errors are logged unless the configured level is debug.
func newCLIClient(cfg *config.Config, stderr io.Writer) (*api.Client, error) {
	level := "error"
	if cfg.Log.Level == "debug" {
		level = "debug"
	}
	logger := config.NewLogger(config.LogConfig{Level: level, Format: cfg.Log.Format}, stderr)
	return newAPIClient(cfg, logger, nil, newConsoleNotifier(stderr))
}

// readBody returns the request body as raw JSON, or nil when none was given.
func readBody(stdin io.Reader, args []string, file string) (json.RawMessage, error) {
	var raw []byte
	switch {
	case file == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		raw = b
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		raw = b
	case len(args) > 0:
		raw = []byte(args[0])
	default:
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("W040").WithMessage("Request body is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

// printJSON writes raw indented, or nothing for an empty body.
func printJSON(w io.Writer, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// silentError marks an error that has already been shown to the user.
type silentError struct{ err error }

func (s silentError) Error() string { return s.err.Error() }
func (s silentError) Unwrap() error { return s.err }

func silent(err error) error { return silentError{err} }
