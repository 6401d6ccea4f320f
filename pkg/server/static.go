package server

import (
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// StaticPrefix is the URL prefix for stylesheets, images and other files.
const StaticPrefix = "/static/"

// staticPath maps a request path under StaticPrefix to a path in the
// static filesystem. Traversal, backslashes, NUL bytes and absolute paths
// are refused.
func staticPath(urlPath string) (string, bool) {
	rel, ok := strings.CutPrefix(urlPath, StaticPrefix)
	if !ok || rel == "" {
		return "", false
	}
	if strings.ContainsAny(rel, "\\\x00") || strings.HasPrefix(rel, "/") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}
	clean := path.Clean(rel)
	if !fs.ValidPath(clean) || clean == "." {
		return "", false
	}
	return clean, true
}

func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request) {
	rel, ok := staticPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	f, err := s.static.Open(rel)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	switch {
	case s.config.DevMode:
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	case fingerprinted(rel):
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	default:
		w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
	}

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		http.Error(w, "static file is not seekable", http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, rel, info.ModTime(), rs)
}

// fingerprinted reports whether the file name carries a content hash, as in
// style.a1b2c3d4.css.
func fingerprinted(name string) bool {
	parts := strings.Split(path.Base(name), ".")
	if len(parts) < 3 {
		return false
	}
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
