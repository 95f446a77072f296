package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var remoteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "linkedin_client",
		Name:      "remote_errors_total",
		Help:      "Responses with status >= 400, by operation and status code.",
	},
	[]string{"operation", "code"},
)
