// Package middleware provides observability for the WMS UI layer.
//
// Prometheus metrics cover outbound API calls, toasts shown, bridge events
// and live page sessions. OpenTelemetry tracing wraps outbound HTTP calls in
// client spans and propagates trace context to the backend.
//
//	m := middleware.NewMetrics(middleware.WithNamespace("wmsui"))
//	client := &http.Client{Transport: middleware.Transport(http.DefaultTransport)}
//
//	// Expose metrics endpoint
//	r.Handle("/metrics", m.Handler())
package middleware
