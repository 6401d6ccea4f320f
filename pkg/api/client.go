package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/wmspro/wmsui/internal/errors"
	"github.com/wmspro/wmsui/pkg/middleware"
	"github.com/wmspro/wmsui/pkg/toast"
)

// Messages shown to the user.
const (
	MsgLoadFailed      = "Failed to load data"
	MsgNotOK           = "Network response was not ok"
	MsgDeleteFailed    = "Delete failed"
	MsgRequestFailed   = "Request failed"
	MsgOperationFailed = "Operation failed"
	MsgFetchFailed     = "Failed to fetch"
)

// Client calls the backend. Its zero value is not usable; use New.
type Client struct {
	http     *http.Client
	baseURL  *url.URL
	notifier toast.Notifier
	logger   *slog.Logger
	metrics  *middleware.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURL resolves relative request URLs against base.
func WithBaseURL(base *url.URL) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithNotifier sets where failure toasts go.
func WithNotifier(n toast.Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics records every call.
func WithMetrics(m *middleware.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notifier returns the client's toast sink.
func (c *Client) Notifier() toast.Notifier { return c.notifier }

// With returns a copy of c using n for failure toasts. Hosts use it to bind
// a shared client to one page.
func (c *Client) With(n toast.Notifier) *Client {
	cp := *c
	cp.notifier = n
	return &cp
}

// policy holds the per-method messages.
type policy struct {
	method string
	// statusMessage builds the error message for a non-2xx response.
	statusMessage func(body []byte) string
	// toastMessage picks the toast text for a failure.
	toastMessage func(err *errors.Error) string
}

var (
	getPolicy = policy{
		method:        http.MethodGet,
		statusMessage: fixed(MsgNotOK),
		toastMessage:  func(*errors.Error) string { return MsgLoadFailed },
	}
	deletePolicy = policy{
		method:        http.MethodDelete,
		statusMessage: fixed(MsgDeleteFailed),
		toastMessage:  func(*errors.Error) string { return MsgDeleteFailed },
	}
	postPolicy = policy{
		method:        http.MethodPost,
		statusMessage: serverMessage,
		toastMessage:  errorMessage,
	}
	putPolicy = policy{
		method:        http.MethodPut,
		statusMessage: serverMessage,
		toastMessage:  errorMessage,
	}
)

func fixed(msg string) func([]byte) string {
	return func([]byte) string { return msg }
}

// serverMessage extracts {"error": "..."} from an error body.
func serverMessage(body []byte) string {
	var payload struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return MsgRequestFailed
	}
	if s, ok := payload.Error.(string); ok && s != "" {
		return s
	}
	return MsgRequestFailed
}

func errorMessage(err *errors.Error) string {
	if err.Message != "" {
		return err.Message
	}
	return MsgOperationFailed
}

// Get fetches url and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, url string, out any) error {
	return c.do(ctx, getPolicy, url, nil, out)
}

// Post sends body as JSON and decodes the JSON response into out.
func (c *Client) Post(ctx context.Context, url string, body, out any) error {
	return c.do(ctx, postPolicy, url, body, out)
}

// Put sends body as JSON and decodes the JSON response into out.
func (c *Client) Put(ctx context.Context, url string, body, out any) error {
	return c.do(ctx, putPolicy, url, body, out)
}

// Delete deletes url and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, url string, out any) error {
	return c.do(ctx, deletePolicy, url, nil, out)
}

func (c *Client) do(ctx context.Context, p policy, rawURL string, body, out any) error {
	start := time.Now()
	err := c.exchange(ctx, p, rawURL, body, out)
	if err == nil {
		c.metrics.ObserveRequest(p.method, "success", time.Since(start))
		return nil
	}

	c.metrics.ObserveRequest(p.method, string(err.Kind), time.Since(start))
	c.logger.ErrorContext(ctx, "API Error",
		"method", p.method,
		"url", err.URL,
		"status", err.Status,
		"kind", string(err.Kind),
		"error", err.String(),
	)
	if c.notifier != nil {
		c.notifier.Notify(p.toastMessage(err), toast.TypeError)
		c.metrics.RecordToast(string(toast.TypeError))
	}
	return err
}

func (c *Client) exchange(ctx context.Context, p policy, rawURL string, body, out any) *errors.Error {
	target, err := c.resolve(rawURL)
	if err != nil {
		return errors.New("W004").WithRequest(p.method, rawURL, 0).Wrap(err)
	}

	var reader io.Reader
	if p.method == http.MethodPost || p.method == http.MethodPut {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.New("W004").WithRequest(p.method, target, 0).Wrap(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, target, reader)
	if err != nil {
		return errors.New("W004").WithRequest(p.method, target, 0).Wrap(err)
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.New("W001").WithMessage(MsgFetchFailed).WithRequest(p.method, target, 0).Wrap(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.New("W001").WithMessage(MsgFetchFailed).WithRequest(p.method, target, resp.StatusCode).Wrap(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New("W002").
			WithMessage(p.statusMessage(data)).
			WithRequest(p.method, target, resp.StatusCode)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if out == nil {
		out = new(json.RawMessage)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.New("W003").WithRequest(p.method, target, resp.StatusCode).Wrap(err)
	}
	return nil
}

func (c *Client) resolve(rawURL string) (string, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if c.baseURL == nil || ref.IsAbs() {
		return ref.String(), nil
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}

// GetJSON is Get returning a decoded value.
func GetJSON[T any](ctx context.Context, c *Client, url string) (T, error) {
	var out T
	err := c.Get(ctx, url, &out)
	return out, err
}

// PostJSON is Post returning a decoded value.
func PostJSON[T any](ctx context.Context, c *Client, url string, body any) (T, error) {
	var out T
	err := c.Post(ctx, url, body, &out)
	return out, err
}

// PutJSON is Put returning a decoded value.
func PutJSON[T any](ctx context.Context, c *Client, url string, body any) (T, error) {
	var out T
	err := c.Put(ctx, url, body, &out)
	return out, err
}
