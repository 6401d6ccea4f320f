package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmspro/wmsui/internal/config"
	"github.com/wmspro/wmsui/internal/errors"
	"github.com/wmspro/wmsui/pkg/toast"
	"github.com/wmspro/wmsui/pkg/wms"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wmsui dev")
	assert.Contains(t, out, "Go version:")
}

func TestGetCommandPrintsJSON(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/api/products/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"name":"Widget"}`))
	}))
	defer backend.Close()

	out, err := run(t, "--base-url", backend.URL, "get", "/inventory/api/products/7")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Widget", got["name"])
	assert.Contains(t, out, "\n  \"id\": 7")
}

func TestPostCommandSendsBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Bolt"}`, string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer backend.Close()

	out, err := run(t, "--base-url", backend.URL, "post", "/inventory/api/products", `{"name":"Bolt"}`)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPostCommandRejectsInvalidBody(t *testing.T) {
	_, err := run(t, "post", "/inventory/api/products", `{name`)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalid))
}

func TestDeleteCommandFailureIsSilent(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	_, err := run(t, "--base-url", backend.URL, "delete", "/inventory/api/products/1")
	require.Error(t, err)
	_, ok := err.(silentError)
	assert.True(t, ok)
}

func TestFailedRequestLogsToStderr(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	var stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config-dir", t.TempDir(), "--base-url", backend.URL, "get", "/inventory/api/products/1"})

	require.Error(t, cmd.Execute())
	assert.Equal(t, 1, strings.Count(stderr.String(), `msg="API Error"`))
	assert.Contains(t, stderr.String(), "level=ERROR")
	assert.NotContains(t, stderr.String(), "level=INFO")
}

func TestProductsCommand(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/api/products", r.URL.Path)
		assert.Equal(t, "widget", r.URL.Query().Get("search"))
		_ = json.NewEncoder(w).Encode([]wms.Product{{
			ID: 1, SKU: "W-1", Name: "Widget", Quantity: 1250, MinStock: 10, MaxStock: 100,
			UnitPrice: 2.5, Unit: "pcs", UpdatedAt: "2024-03-05T09:00:00",
		}})
	}))
	defer backend.Close()

	out, err := run(t, "--base-url", backend.URL, "products", "--search", "widget")
	require.NoError(t, err)
	assert.Contains(t, out, "W-1")
	assert.Contains(t, out, "1,250 pcs")
	assert.Contains(t, out, "$2.50")
	assert.Contains(t, out, "$3,125.00")
	assert.Contains(t, out, "overstock")
	assert.Contains(t, out, "Mar 5, 2024")
}

func TestWriteProductsEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeProducts(&buf, nil)
	assert.Equal(t, "No products found\n", buf.String())
}

func TestAdjustRejectsBadQuantity(t *testing.T) {
	_, err := run(t, "products", "adjust", "3", "add", "0")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalid))

	_, err = run(t, "products", "adjust", "x", "add", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid product id")
}

func TestReadBody(t *testing.T) {
	raw, err := readBody(strings.NewReader(`{"a":1}`), nil, "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	raw, err = readBody(nil, nil, "")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := consoleNotifier{w: &buf}
	toast.Error(n, "Failed to load data")
	assert.Contains(t, buf.String(), "Failed to load data\n")
}

func TestNewServerFromDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Server.InlineIcons = true
	srv, err := newServer(cfg)
	require.NoError(t, err)
	assert.Equal(t, ":3000", srv.Config().Address)
	assert.Equal(t, "WMS Pro", srv.Config().Title)
}
