package client

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var callsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "linkedin_client",
		Name:      "calls_total",
		Help:      "Resource method calls by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

func observe(operation string, err error) {
	callsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	var (
		cfgErr    *ConfigurationError
		remoteErr *RemoteAPIError
		decodeErr *DecodeError
		netErr    *TransportError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &cfgErr):
		return "configuration_error"
	case errors.As(err, &remoteErr):
		return "remote_error"
	case errors.As(err, &decodeErr):
		return "decode_error"
	case errors.As(err, &netErr):
		return "transport_error"
	default:
		return "error"
	}
}
