// Package telemetry holds logging setup and the Prometheus metrics exported on /metrics.
//
// HTTP metrics are labelled by gin route template (c.FullPath()), never the raw URL,
// so ids in paths do not blow up label cardinality.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route template, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// OnboardingsTotal counts completed onboardings. The outcome label is
// "admin" (first member promoted), "member", or "noop" (already onboarded).
var OnboardingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "onboardings_total",
		Help: "Total number of onboarding calls, by outcome.",
	},
	[]string{"outcome"},
)

// AuthorizationDenialsTotal counts requests rejected by the access policy, by reason.
var AuthorizationDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "authorization_denials_total",
		Help: "Total number of requests rejected by the access policy, by reason.",
	},
	[]string{"reason"},
)

var (
	SalesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_total",
			Help: "Total number of sales recorded.",
		},
	)

	SaleItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sale_items_total",
			Help: "Total number of sale lines recorded.",
		},
	)
)

var (
	PriceDecayRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_decay_runs_total",
			Help: "Total number of dynamic price decay runs, by result.",
		},
		[]string{"result"},
	)

	PriceAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_adjustments_total",
			Help: "Total number of dynamic price changes, by direction.",
		},
		[]string{"direction"},
	)
)
