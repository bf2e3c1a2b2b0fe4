package service

import (
	"context"
	"time"

	"wedplan-go/internal/domain"
	"wedplan-go/internal/metrics"
	"wedplan-go/internal/solve"
)

// SeatingService is the thin business-logic layer the HTTP handler calls
// into, mirroring the teacher's OptimizationService shape: a struct
// wrapping the underlying computation, instrumented with metrics around
// the one blocking call it makes.
type SeatingService struct{}

// NewSeatingService constructs a SeatingService. It carries no state: the
// solver builds a fresh model per call (spec §5).
func NewSeatingService() *SeatingService {
	return &SeatingService{}
}

// Optimize runs the full validate → build → solve → extract pipeline for
// one problem, recording solve duration and outcome metrics around the
// call. Domain validation errors are returned unwrapped for the handler
// to classify via errors.As.
func (s *SeatingService) Optimize(ctx context.Context, p domain.Problem) (domain.Response, error) {
	start := time.Now()

	resp, err := solve.Solve(ctx, p)
	if err != nil {
		return domain.Response{}, err
	}

	metrics.SolveDuration.WithLabelValues(string(resp.Status)).Observe(time.Since(start).Seconds())
	metrics.SolveTotal.WithLabelValues(string(resp.Status)).Inc()
	metrics.SolveBranches.Observe(float64(resp.Stats.Branches))

	return resp, nil
}
