package server

import (
	"io"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/static/css/style.css", "css/style.css", true},
		{"/static/", "", false},
		{"/static/../go.mod", "", false},
		{"/static/css/./style.css", "", false},
		{"/static//etc/passwd", "", false},
		{"/static/a\\b", "", false},
		{"/static/a\x00b", "", false},
		{"/other/style.css", "", false},
	}
	for _, tt := range tests {
		got, ok := staticPath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestFingerprinted(t *testing.T) {
	assert.True(t, fingerprinted("css/style.a1b2c3d4.css"))
	assert.False(t, fingerprinted("css/style.css"))
	assert.False(t, fingerprinted("css/style.min.css"))
	assert.False(t, fingerprinted("css/style.zzzzzzzz.css"))
}

func TestServeStatic(t *testing.T) {
	fsys := fstest.MapFS{
		"css/style.css":          {Data: []byte("body{}")},
		"css/style.0123abcd.css": {Data: []byte("main{}")},
	}
	_, ts := newTestServer(t, nil, WithStatic(fsys))

	resp, err := http.Get(ts.URL + "/static/css/style.css")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{}", string(body))
	assert.Equal(t, "public, max-age=3600, must-revalidate", resp.Header.Get("Cache-Control"))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")

	resp, err = http.Get(ts.URL + "/static/css/style.0123abcd.css")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "public, max-age=31536000, immutable", resp.Header.Get("Cache-Control"))

	for _, p := range []string{"/static/css/missing.css", "/static/css"} {
		resp, err = http.Get(ts.URL + p)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, p)
	}
}

func TestServeStaticDevMode(t *testing.T) {
	fsys := fstest.MapFS{"app.css": {Data: []byte("x")}}
	_, ts := newTestServer(t, &ServerConfig{DevMode: true}, WithStatic(fsys))

	resp, err := http.Get(ts.URL + "/static/app.css")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))
}
