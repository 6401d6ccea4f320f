package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	m := NewMetrics()

	m.ObserveRequest("POST", "status", 20*time.Millisecond)
	m.ObserveRequest("POST", "status", 10*time.Millisecond)
	m.ObserveRequest("GET", "success", time.Millisecond)
	m.RecordToast("error")
	m.RecordEvent("click")
	m.RecordNavigation()
	m.RecordSessionOpen()
	m.RecordSessionOpen()
	m.RecordSessionClose()
	m.RecordWSError("read")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("POST", "status")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toastsShown.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bridgeEvents.WithLabelValues("click")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.navigations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.wsErrors.WithLabelValues("read")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "network", time.Second)
		m.RecordToast("info")
		m.RecordEvent("keydown")
		m.RecordNavigation()
		m.RecordSessionOpen()
		m.RecordSessionClose()
		m.RecordWSError("upgrade")
	})
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("wms"), WithConstLabels(prometheus.Labels{"site": "dc1"}))
	m.RecordToast("success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `wms_toasts_total{site="dc1",type="success"} 1`)
}
