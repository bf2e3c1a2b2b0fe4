// Package metrics exposes Prometheus counters and histograms around
// solver invocations — observability the distilled spec treats as out of
// the core's concern, but that this corpus's production services always
// carry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SolveDuration tracks wall-clock seconds spent inside solve.Solve,
	// labeled by the terminal status the solver returned.
	SolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wedplan_solve_duration_seconds",
		Help:    "Wall-clock time spent solving a seating optimization request.",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	// SolveTotal counts completed solves by terminal status.
	SolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wedplan_solve_total",
		Help: "Total number of completed solve invocations, by terminal status.",
	}, []string{"status"})

	// SolveBranches tracks the branch-and-bound node count per solve.
	SolveBranches = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wedplan_solve_branches",
		Help:    "Number of branch-and-bound nodes explored per solve.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	// ValidationErrorsTotal counts rejected requests by domain error kind.
	ValidationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wedplan_validation_errors_total",
		Help: "Total number of requests rejected during domain validation, by error kind.",
	}, []string{"kind"})
)
