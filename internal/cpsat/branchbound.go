package cpsat

import (
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const integralityTolerance = 1e-6

// node is one subproblem in the branch-and-bound enumeration tree: every
// variable in fixed has been pinned to 0 or 1 by an ancestor branching
// decision; every other variable is still free in [0, 1].
type node struct {
	fixed map[BoolVar]int8
}

// relaxation is the result of solving a node's LP relaxation.
type relaxation struct {
	feasible bool
	bound    float64            // objective value of the relaxation (maximize sense)
	values   map[BoolVar]float64 // free-variable values in the relaxed optimum
}

// solveRelaxation solves the LP relaxation of cp with fixed's variables
// pinned, using gonum's simplex solver. Every free variable is bounded to
// [0, 1] via an explicit slack row (x_i + u_i = 1); every inequality row
// is converted to an equality via a non-negative slack, mirroring the
// standard-form conversion used by branch-and-bound-over-simplex MILP
// solvers such as jjhbw/GoMILP's convertToEqualities.
func solveRelaxation(cp *CompiledProblem, fixed map[BoolVar]int8) relaxation {
	free := make([]BoolVar, 0, cp.NumVars)
	for v := 0; v < cp.NumVars; v++ {
		if _, ok := fixed[BoolVar(v)]; !ok {
			free = append(free, BoolVar(v))
		}
	}
	freeIndex := make(map[BoolVar]int, len(free))
	for i, v := range free {
		freeIndex[v] = i
	}

	eqRows := make([]reducedRow, 0, len(cp.Eq))
	for _, r := range cp.Eq {
		eqRows = append(eqRows, reduce(r, fixed))
	}
	ineqRows := make([]reducedRow, 0, len(cp.Ineq))
	for _, r := range cp.Ineq {
		ineqRows = append(ineqRows, reduce(r, fixed))
	}

	numFree := len(free)
	numIneq := len(ineqRows)
	// columns: [free x vars | inequality slacks | upper-bound slacks]
	numCols := numFree + numIneq + numFree
	numRows := len(eqRows) + numIneq + numFree

	data := make([]float64, numRows*numCols)
	b := make([]float64, numRows)
	set := func(r, c int, val float64) { data[r*numCols+c] = val }

	rowN := 0
	for _, rr := range eqRows {
		for v, c := range rr.coeffs {
			set(rowN, freeIndex[v], float64(c))
		}
		b[rowN] = rr.rhs
		rowN++
	}
	for i, rr := range ineqRows {
		for v, c := range rr.coeffs {
			set(rowN, freeIndex[v], float64(c))
		}
		set(rowN, numFree+i, 1) // slack
		b[rowN] = rr.rhs
		rowN++
	}
	for i, v := range free {
		set(rowN, freeIndex[v], 1)
		set(rowN, numFree+numIneq+i, 1) // upper-bound slack
		b[rowN] = 1
		rowN++
	}

	c := make([]float64, numCols)
	for i, v := range free {
		c[i] = -float64(cp.Obj[v]) // minimize negative == maximize
	}

	A := mat.NewDense(numRows, numCols, data)
	optF, optX, err := lp.Simplex(nil, c, A, b, 0)
	if err != nil {
		return relaxation{feasible: false}
	}

	values := make(map[BoolVar]float64, numFree)
	for i, v := range free {
		values[v] = clamp01(optX[i])
	}

	fixedContribution := 0
	for v, val := range fixed {
		fixedContribution += cp.Obj[v] * int(val)
	}

	return relaxation{
		feasible: true,
		bound:    -optF + float64(fixedContribution),
		values:   values,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// mostFractional returns the free variable whose relaxed value is
// farthest from an integer, the classic branching heuristic: branching on
// the most undecided variable tends to resolve the largest share of the
// tree fastest.
func mostFractional(values map[BoolVar]float64) (BoolVar, float64, bool) {
	best := BoolVar(-1)
	bestDist := -1.0
	for v, val := range values {
		dist := math.Min(val, 1-val)
		if dist > integralityTolerance && dist > bestDist {
			bestDist = dist
			best = v
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, values[best], true
}

// Result is the outcome of a branch-and-bound search.
type Result struct {
	Status    Status
	Objective int
	Values    map[BoolVar]bool
	Stats     Stats
}

// Stats mirrors the diagnostic counters the spec asks the solver driver
// to surface.
type Stats struct {
	Conflicts       int64
	Branches        int64
	WallTimeSeconds float64
}

// Status is the closed set of terminal outcomes (spec §4.5 / §7).
type Status string

const (
	StatusOptimal      Status = "OPTIMAL"
	StatusFeasible     Status = "FEASIBLE"
	StatusInfeasible   Status = "INFEASIBLE"
	StatusUnknown      Status = "UNKNOWN"
	StatusModelInvalid Status = "MODEL_INVALID"
)

// searchState is the shared, mutex-guarded frontier that NumWorkers
// goroutines pull from concurrently. This is the "opaque" parallelism the
// spec reserves for the solver: nothing above cpsat ever sees a
// goroutine.
type searchState struct {
	mu       sync.Mutex
	frontier []node
	active   int
	cond     *sync.Cond

	incumbent       map[BoolVar]bool
	incumbentScore  float64
	hasIncumbent    bool
	branches        int64
	proved          bool // true once the frontier is exhausted
	deadline        time.Time
}

func newSearchState() *searchState {
	s := &searchState{incumbentScore: math.Inf(-1)}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Search runs branch-and-bound over cp, seeded by an optional warm-start
// incumbent (itself a feasible assignment, or nil), bounded by timeLimit
// and fanned out across numWorkers goroutines.
func Search(cp *CompiledProblem, warmStart map[BoolVar]bool, timeLimit time.Duration, numWorkers int) Result {
	start := time.Now()
	if numWorkers < 1 {
		numWorkers = 1
	}

	s := newSearchState()
	s.deadline = start.Add(timeLimit)

	if warmStart != nil {
		if score, ok := evaluateIntegral(cp, warmStart); ok {
			s.hasIncumbent = true
			s.incumbent = warmStart
			s.incumbentScore = score
		}
	}

	// This timer guarantees every worker parked in cond.Wait() gets woken
	// up once timeLimit elapses, even if no other goroutine ever pushes
	// or finishes a node again (the single-node, no-branching case:
	// popNode's deadline check only runs between Wait() calls, never
	// while parked in one).
	timer := time.AfterFunc(timeLimit, func() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	})
	defer timer.Stop()

	pushNode(s, node{fixed: map[BoolVar]int8{}})

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(cp, s)
		}()
	}
	wg.Wait()

	wallTime := time.Since(start).Seconds()
	timedOut := time.Now().After(s.deadline) || wallTime >= timeLimit.Seconds()

	status := resolveStatus(s, timedOut)

	result := Result{
		Status: status,
		Stats: Stats{
			Branches:        s.branches,
			WallTimeSeconds: wallTime,
		},
	}
	if status == StatusOptimal || status == StatusFeasible {
		result.Objective = int(math.Round(s.incumbentScore))
		result.Values = s.incumbent
	}
	return result
}

func resolveStatus(s *searchState, timedOut bool) Status {
	switch {
	case s.hasIncumbent && s.proved && !timedOut:
		return StatusOptimal
	case s.hasIncumbent:
		return StatusFeasible
	case s.proved && !timedOut:
		return StatusInfeasible
	default:
		return StatusUnknown
	}
}

func worker(cp *CompiledProblem, s *searchState) {
	for {
		n, ok := popNode(s)
		if !ok {
			return
		}
		if time.Now().After(s.deadline) {
			nodeDone(s)
			continue
		}

		rel := solveRelaxation(cp, n.fixed)
		s.mu.Lock()
		s.branches++
		s.mu.Unlock()

		if !rel.feasible {
			nodeDone(s)
			continue
		}

		s.mu.Lock()
		prune := s.hasIncumbent && rel.bound <= s.incumbentScore+integralityTolerance
		s.mu.Unlock()
		if prune {
			nodeDone(s)
			continue
		}

		branchVar, _, fractional := mostFractional(rel.values)
		if !fractional {
			assignment := integralAssignment(cp, n.fixed, rel.values)
			s.mu.Lock()
			if !s.hasIncumbent || rel.bound > s.incumbentScore {
				s.hasIncumbent = true
				s.incumbent = assignment
				s.incumbentScore = rel.bound
			}
			s.mu.Unlock()
			nodeDone(s)
			continue
		}

		for _, branchValue := range [2]int8{1, 0} {
			child := node{fixed: cloneFixed(n.fixed)}
			child.fixed[branchVar] = branchValue
			pushNode(s, child)
		}
		nodeDone(s)
	}
}

func cloneFixed(fixed map[BoolVar]int8) map[BoolVar]int8 {
	out := make(map[BoolVar]int8, len(fixed)+1)
	for k, v := range fixed {
		out[k] = v
	}
	return out
}

func integralAssignment(cp *CompiledProblem, fixed map[BoolVar]int8, values map[BoolVar]float64) map[BoolVar]bool {
	assignment := make(map[BoolVar]bool, cp.NumVars)
	for v, val := range fixed {
		assignment[v] = val == 1
	}
	for v, val := range values {
		assignment[v] = val > 0.5
	}
	return assignment
}

func evaluateIntegral(cp *CompiledProblem, assignment map[BoolVar]bool) (float64, bool) {
	for _, r := range cp.Eq {
		if !rowSatisfied(r, assignment, true) {
			return 0, false
		}
	}
	for _, r := range cp.Ineq {
		if !rowSatisfied(r, assignment, false) {
			return 0, false
		}
	}
	score := 0
	for v, c := range cp.Obj {
		if assignment[v] {
			score += c
		}
	}
	return float64(score), true
}

func rowSatisfied(r row, assignment map[BoolVar]bool, eq bool) bool {
	sum := 0
	for v, c := range r.coeffs {
		if assignment[v] {
			sum += c
		}
	}
	if eq {
		return sum == r.rhs
	}
	return sum <= r.rhs
}

func pushNode(s *searchState, n node) {
	s.mu.Lock()
	s.frontier = append(s.frontier, n)
	s.active++
	s.cond.Broadcast()
	s.mu.Unlock()
}

func popNode(s *searchState) (node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.frontier) == 0 {
		if s.active == 0 {
			s.proved = true
			return node{}, false
		}
		if time.Now().After(s.deadline) {
			return node{}, false
		}
		s.cond.Wait()
	}
	// LIFO (depth-first): keeps memory bounded and tends to find
	// incumbents quickly, the same trade-off noted in GoMILP's
	// enumeration tree.
	last := len(s.frontier) - 1
	n := s.frontier[last]
	s.frontier = s.frontier[:last]
	return n, true
}

func nodeDone(s *searchState) {
	s.mu.Lock()
	s.active--
	s.cond.Broadcast()
	s.mu.Unlock()
}

