// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors, registered once on the
// default registry and served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IngestsTotal counts ingest attempts by outcome: created,
	// already_exists, not_found_upstream, upstream_error, invalid_input.
	IngestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereq_ingests_total",
			Help: "Total number of entry ingest attempts",
		},
		[]string{"result"},
	)

	// VotesTotal counts vote attempts by outcome: accepted, duplicate,
	// not_found, error.
	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereq_votes_total",
			Help: "Total number of vote attempts",
		},
		[]string{"result"},
	)

	// RequestDuration observes HTTP handler latency per route pattern.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinereq_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "pattern"},
	)
)
