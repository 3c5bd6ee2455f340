package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rejection reasons recorded on ledger_postings_rejected_total.
const (
	ReasonImbalanced      = "imbalanced"
	ReasonAccountNotFound = "account_not_found"
	ReasonMissingConfig   = "missing_config"
	ReasonValidation      = "validation"
	ReasonInternal        = "internal"
)

// Collector holds the ledger's prometheus instruments on a private registry.
type Collector struct {
	registry         *prometheus.Registry
	entriesPosted    prometheus.Counter
	postingsRejected *prometheus.CounterVec
	persistDuration  prometheus.Histogram
	httpRequests     *prometheus.CounterVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		entriesPosted: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "ledger_entries_posted_total",
			Help: "Total number of journal entries committed to the ledger",
		}),
		postingsRejected: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_postings_rejected_total",
			Help: "Total number of rejected entry creations, by reason",
		}, []string{"reason"}),
		persistDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_entry_persist_duration_seconds",
			Help:    "Time taken to validate and persist a journal entry",
			Buckets: prometheus.DefBuckets,
		}),
		httpRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests, by route and status",
		}, []string{"method", "route", "status"}),
	}
}

// RecordEntryPosted counts one committed entry and its persist latency.
func (m *Collector) RecordEntryPosted(duration time.Duration) {
	m.entriesPosted.Inc()
	m.persistDuration.Observe(duration.Seconds())
}

// RecordPostingRejected counts one rejected entry creation.
// Reasons: imbalanced, account_not_found, missing_config, validation, internal.
func (m *Collector) RecordPostingRejected(reason string) {
	m.postingsRejected.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest counts one completed HTTP request.
func (m *Collector) RecordHTTPRequest(method, route, status string) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
