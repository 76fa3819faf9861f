package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSyncMetrics_Record(t *testing.T) {
	m := NewSyncMetrics(prometheus.NewRegistry())

	m.RecordImported("woocommerce")
	m.RecordImported("woocommerce")
	m.RecordSkipped("upload", "duplicate")
	m.RecordRun("woocommerce", "failed", 1.5)
	m.RecordPageError("woocommerce")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersImportedTotal.WithLabelValues("woocommerce")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersSkippedTotal.WithLabelValues("upload", "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRunsTotal.WithLabelValues("woocommerce", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncPageErrorsTotal.WithLabelValues("woocommerce")))
}

func TestHTTPMetrics_Record(t *testing.T) {
	m := NewHTTPMetrics(prometheus.NewRegistry())
	m.RecordRequest("GET", "/api/locations", 200, 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/locations", "200")))
}
