// Package server hosts WMS pages over HTTP and a WebSocket event bridge.
//
// Every page load opens a bridge connection. The server gives each
// connection a Session holding its own page tree and shell, so modals,
// toasts and the sidebar are per browser tab.
//
// # Routes
//
//   - GET /ws: WebSocket bridge
//   - GET /healthz: liveness probe
//   - GET /metrics: Prometheus metrics
//   - GET /_wmsui/client.js: the bridge client
//   - GET /*: the page layout
//
// # Bridge Protocol
//
// Messages are JSON text frames. The browser sends events:
//
//	{"type":"click","target":"mobileMenuBtn"}
//	{"type":"keypress","target":"globalSearch","key":"Enter","value":"widget 9"}
//
// and the server answers with renders and navigations:
//
//	{"type":"render","html":"<aside id=\"sidebar\" ...>"}
//	{"type":"navigate","url":"/inventory?search=widget%209"}
//
// # Session Lifecycle
//
// A session runs two goroutines:
//   - ReadLoop: decodes events and dispatches them to the shell
//   - WriteLoop: writes queued messages and sends heartbeat pings
//
// Renders are coalesced: bursts of page changes within RenderDebounce produce
// a single render message.
//
// # Example Usage
//
//	srv := server.New(server.DefaultServerConfig(),
//	    server.WithAPI(apiClient),
//	    server.WithPage("/inventory", pages.Inventory()),
//	)
//	srv.Run()
package server
