// Package services – Metrics
//
// This file registers the Prometheus counter and histogram that record every
// Gateway operation by name and outcome, and maps service errors onto the
// bounded outcome label.
package services

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// gatewayOps counts gateway operations by name and outcome
	// (ok, not_found, conflict, invalid, error).
	gatewayOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_operations_total",
			Help: "Total number of auction data gateway operations.",
		},
		[]string{"operation", "outcome"},
	)

	// gatewayLat records operation duration in seconds.
	gatewayLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_operation_duration_seconds",
			Help:    "Duration of auction data gateway operations in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(gatewayOps, gatewayLat)
}

// outcome buckets err into a bounded label value.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRealmNotFound), errors.Is(err, ErrAuctionFileNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid"
	case errors.Is(err, ErrConstraintViolation):
		return "conflict"
	default:
		return "error"
	}
}

func observe(op string, start time.Time, err error) {
	gatewayOps.WithLabelValues(op, outcome(err)).Inc()
	gatewayLat.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
