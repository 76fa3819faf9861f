package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SyncMetrics covers order imports and sync runs.
type SyncMetrics struct {
	OrdersImportedTotal *prometheus.CounterVec
	OrdersSkippedTotal  *prometheus.CounterVec
	SyncRunsTotal       *prometheus.CounterVec
	SyncRunDuration     *prometheus.HistogramVec
	SyncPageErrorsTotal *prometheus.CounterVec
}

// NewSyncMetrics registers the sync collectors on reg.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)
	return &SyncMetrics{
		OrdersImportedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_orders_imported_total",
				Help: "Orders stored by the importer",
			},
			[]string{"source"},
		),
		OrdersSkippedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_orders_skipped_total",
				Help: "Orders skipped as duplicates or because they failed to import",
			},
			[]string{"source", "reason"},
		),
		SyncRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_sync_runs_total",
				Help: "Finished sync runs",
			},
			[]string{"platform", "result"},
		),
		SyncRunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sales_sync_run_duration_seconds",
				Help:    "Wall time of a sync run",
				Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 900},
			},
			[]string{"platform"},
		),
		SyncPageErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_sync_page_errors_total",
				Help: "Page fetches that aborted a sync run",
			},
			[]string{"platform"},
		),
	}
}

func (m *SyncMetrics) RecordImported(source string) {
	m.OrdersImportedTotal.WithLabelValues(source).Inc()
}

func (m *SyncMetrics) RecordSkipped(source, reason string) {
	m.OrdersSkippedTotal.WithLabelValues(source, reason).Inc()
}

func (m *SyncMetrics) RecordRun(platform, result string, durationSeconds float64) {
	m.SyncRunsTotal.WithLabelValues(platform, result).Inc()
	m.SyncRunDuration.WithLabelValues(platform).Observe(durationSeconds)
}

func (m *SyncMetrics) RecordPageError(platform string) {
	m.SyncPageErrorsTotal.WithLabelValues(platform).Inc()
}

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_http_requests_total",
				Help: "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sales_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (m *HTTPMetrics) RecordRequest(method, route string, status int, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}
