package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linkedin_client",
			Name:      "http_requests_total",
			Help:      "HTTP round trips that produced a response, by method and status code.",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "linkedin_client",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP round trips including body read.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linkedin_client",
			Name:      "http_retries_total",
			Help:      "Attempts beyond the first made by the retry policy.",
		},
		[]string{"method"},
	)
)
