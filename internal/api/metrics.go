package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nido_client",
			Name:      "requests_total",
			Help:      "HTTP requests issued by the SDK.",
		},
		[]string{"method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nido_client",
			Name:      "request_failures_total",
			Help:      "Requests that ended in a status, transport or decode error.",
		},
		[]string{"method", "reason"},
	)
)
