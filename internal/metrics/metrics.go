package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AvailabilityRequests counts availability queries by outcome
	// (ok, invalid, error).
	AvailabilityRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "officina_availability_requests_total",
		Help: "Availability requests processed, by outcome.",
	}, []string{"outcome"})

	// SlotsComputed counts slots returned across all workshops.
	SlotsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "officina_slots_computed_total",
		Help: "Available slots computed across all responses.",
	})

	// RequestDuration observes availability computation latency.
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "officina_availability_request_duration_seconds",
		Help:    "Duration of availability request handling.",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
