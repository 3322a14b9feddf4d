package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the personnel service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec   // method, route, status
	HTTPDuration     *prometheus.HistogramVec // method, route
	DBQueryDuration  *prometheus.HistogramVec // query_type: employee_list, department_create...
	RecordChanges    *prometheus.CounterVec   // entity, action: create, update, delete
	ExportGeneration prometheus.Histogram
}

// NewMetrics registers every collector with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "personnel_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "personnel_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "personnel_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}),
		RecordChanges: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "personnel_record_changes_total",
			Help: "Committed create, update and delete operations.",
		}, []string{"entity", "action"}),
		ExportGeneration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name: "personnel_export_generation_duration_seconds",
			Help: "Duration of employee workbook generation.",
		}),
	}
}

// ObserveQuery records the time elapsed since start for queryType.
func (m *Metrics) ObserveQuery(queryType string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// RecordChange counts a committed write.
func (m *Metrics) RecordChange(entity, action string) {
	if m == nil {
		return
	}
	m.RecordChanges.WithLabelValues(entity, action).Inc()
}

// ObserveHTTP records one handled request.
func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveExport records the time spent building an export workbook.
func (m *Metrics) ObserveExport(start time.Time) {
	if m == nil {
		return
	}
	m.ExportGeneration.Observe(time.Since(start).Seconds())
}
