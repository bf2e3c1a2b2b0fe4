// Package solve is the top-level Solver Driver and Solution Extractor
// (spec §4.4, §4.5): it wires mapping, model building, objective
// installation, warm-start seeding, and solver invocation into the single
// `solve(problem) -> response` operation, then reads the solver's
// variable assignment back into a seat-by-seat response.
package solve

import (
	"context"
	"time"

	"wedplan-go/internal/builder"
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/domain"
	"wedplan-go/internal/heuristic"
	"wedplan-go/internal/mapping"
	"wedplan-go/internal/objective"
)

// Solve runs the full pipeline for one Problem: validate and map, build
// the constraint model, install the objective, seed a warm start, invoke
// the solver, and extract the response. It never retries and never
// allocates solver state before validation succeeds.
func Solve(ctx context.Context, p domain.Problem) (domain.Response, error) {
	m, err := mapping.New(p)
	if err != nil {
		return domain.Response{}, err
	}

	model := cpsat.NewModel()
	v := builder.Build(model, m)
	objective.Build(model, m, v)

	warm := heuristic.WarmStart(m, v)

	timeLimit := time.Duration(p.Options.TimeLimitSeconds * float64(time.Second))
	solver := cpsat.NewSolver(timeLimit, p.Options.NumWorkers)
	result := solver.Solve(ctx, model, warm)

	return extract(m, v, result), nil
}
