// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts calls against the back-office API by endpoint
	// name and HTTP status ("error" for transport failures).
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_client_requests_total",
		Help: "Requests issued against the back-office API.",
	}, []string{"endpoint", "status"})

	// UpstreamDuration observes back-office API request latency.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backoffice_client_request_duration_seconds",
		Help:    "Back-office API request duration.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	// DraftsSaved counts completed order-composition workflows.
	DraftsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_drafts_saved_total",
		Help: "Order drafts saved through the composition workflow.",
	})
)
