package server

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"strings"
)

// ClientPath is where the bridge client is served.
const ClientPath = "/_wmsui/client.js"

// clientJS connects the page to /ws, forwards events and applies server
// messages. Targets are the nearest element carrying an id.
const clientJS = `(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var page = encodeURIComponent(location.pathname + location.search);
  var ws = new WebSocket(proto + "//" + location.host + "/ws?page=" + page);

  function targetOf(e) {
    var el = e.target && e.target.closest ? e.target.closest("[id]") : null;
    return el ? el.id : "";
  }
  function send(ev) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(ev));
  }
  function valueOf(e) {
    return e.target && typeof e.target.value === "string" ? e.target.value : "";
  }

  document.addEventListener("click", function (e) {
    send({ type: "click", target: targetOf(e) });
  });
  document.addEventListener("keydown", function (e) {
    send({ type: "keydown", target: targetOf(e), key: e.key });
  });
  document.addEventListener("keypress", function (e) {
    send({ type: "keypress", target: targetOf(e), key: e.key, value: valueOf(e) });
  });
  document.addEventListener("input", function (e) {
    send({ type: "input", target: targetOf(e), value: valueOf(e) });
  });

  ws.onmessage = function (m) {
    var msg = JSON.parse(m.data);
    if (msg.type === "render") {
      var active = document.activeElement && document.activeElement.id;
      var start = active ? document.activeElement.selectionStart : null;
      document.body.innerHTML = msg.html;
      if (active) {
        var el = document.getElementById(active);
        if (el) {
          el.focus();
          if (start !== null && el.setSelectionRange) el.setSelectionRange(start, start);
        }
      }
      if (window.lucide) window.lucide.createIcons();
    } else if (msg.type === "navigate") {
      location.href = msg.url;
    }
  };
})();
`

var clientETag = func() string {
	sum := sha256.Sum256([]byte(clientJS))
	return fmt.Sprintf("%q", fmt.Sprintf("%x", sum[:8]))
}()

func (s *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", clientETag)
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if s.config.DevMode {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
	}

	if etagMatches(r.Header.Get("If-None-Match"), clientETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write([]byte(clientJS))
}

func etagMatches(ifNoneMatchHeader, etag string) bool {
	if ifNoneMatchHeader == "" || etag == "" {
		return false
	}
	// Handle lists: If-None-Match: "abc", W/"def"
	for _, part := range strings.Split(ifNoneMatchHeader, ",") {
		candidate := strings.TrimSpace(part)
		if candidate == etag || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
