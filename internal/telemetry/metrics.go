/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GenerationsTotal counts schedule generation runs by outcome.
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arenacomp_generations_total",
		Help: "Schedule generation runs by outcome.",
	}, []string{"outcome"})

	// PublishesTotal counts schedule publish/unpublish transitions.
	PublishesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arenacomp_publishes_total",
		Help: "Schedule lifecycle transitions.",
	}, []string{"transition"})

	// ProgressionRunsTotal counts filter-progression walks.
	ProgressionRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arenacomp_progression_runs_total",
		Help: "Tournament progression runs.",
	})

	// EliminationsTotal counts athletes eliminated, by elimination type.
	EliminationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arenacomp_eliminations_total",
		Help: "Athletes eliminated by elimination type.",
	}, []string{"type"})

	// HTTPRequestsTotal counts API requests.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arenacomp_http_requests_total",
		Help: "HTTP requests by method and status class.",
	}, []string{"method", "status"})

	// HTTPRequestDuration observes API latency.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arenacomp_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
