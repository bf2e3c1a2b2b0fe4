package cpsat

import (
	"context"
	"time"
)

// Solver configures and runs a branch-and-bound search over a compiled
// Model. It is the in-process stand-in for an OR-Tools CpSolver: callers
// set a wall-clock time limit and a worker count exactly as they would on
// the real thing.
type Solver struct {
	TimeLimit  time.Duration
	NumWorkers int
}

// NewSolver returns a Solver configured from SolveOptions-shaped inputs.
func NewSolver(timeLimit time.Duration, numWorkers int) *Solver {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Solver{TimeLimit: timeLimit, NumWorkers: numWorkers}
}

// Solve compiles m and searches it, honoring ctx's deadline, if it has
// one, as an additional limit on top of s.TimeLimit: whichever is earlier
// wins. Cancelling ctx does not stop a search that is already running.
// warmStart, when non-nil, seeds the search with a known-feasible
// incumbent (see internal/heuristic) so branch-and-bound starts pruning
// immediately instead of waiting to discover its first integral point.
func (s *Solver) Solve(ctx context.Context, m *Model, warmStart map[BoolVar]bool) Result {
	limit := s.TimeLimit
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < limit || limit <= 0 {
			limit = remaining
		}
	}
	if limit <= 0 {
		limit = time.Millisecond
	}

	cp := Compile(m)
	result := Search(cp, warmStart, limit, s.NumWorkers)

	select {
	case <-ctx.Done():
		if result.Status == StatusUnknown {
			return result
		}
	default:
	}
	return result
}
