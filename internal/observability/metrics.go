// Package observability exposes the Prometheus metrics the matching core
// reports. Metrics are registered at init via promauto and scraped off the
// /metrics endpoint.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchesCreatedTotal counts pending matches created by candidate searches.
	MatchesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freightmatch",
		Name:      "matches_created_total",
		Help:      "Total number of matches created by candidate searches",
	})

	// CandidateSearchDuration observes end-to-end candidate search latency.
	CandidateSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "freightmatch",
		Name:      "candidate_search_duration_seconds",
		Help:      "Candidate search latency distribution",
		Buckets:   prometheus.DefBuckets,
	})

	// OfferResponsesTotal counts carrier responses by decision and outcome.
	OfferResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freightmatch",
			Name:      "offer_responses_total",
			Help:      "Total carrier offer responses handled",
		},
		[]string{"decision", "outcome"},
	)

	// TrackingEventsTotal counts ingested tracking events by type.
	TrackingEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freightmatch",
			Name:      "tracking_events_total",
			Help:      "Total tracking events ingested",
		},
		[]string{"event_type"},
	)

	// RouteEstimatesTotal counts route estimates by the path that answered:
	// cache, provider, or formula fallback.
	RouteEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freightmatch",
			Name:      "route_estimates_total",
			Help:      "Total route estimates served, by answering path",
		},
		[]string{"source"},
	)

	// EventsPublishedTotal counts domain events handed to the notification sink.
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freightmatch",
			Name:      "events_published_total",
			Help:      "Total domain events published to the notification sink",
		},
		[]string{"type", "outcome"},
	)

	// HTTPRequestsTotal counts HTTP requests handled by the caller API.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freightmatch",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "freightmatch",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
