package cpsat

// CompiledProblem is a Model flattened into equality and inequality rows
// ready for repeated LP relaxation during branch-and-bound. Building it
// once avoids re-deriving coefficients from literals at every node.
type CompiledProblem struct {
	NumVars int
	Eq      []row
	Ineq    []row
	Obj     map[BoolVar]int
}

// Compile flattens a Model's posted constraints into a CompiledProblem.
func Compile(m *Model) *CompiledProblem {
	cp := &CompiledProblem{NumVars: m.NumVars(), Obj: m.Objective()}
	for _, r := range m.rowsView() {
		if r.eq {
			cp.Eq = append(cp.Eq, r)
		} else {
			cp.Ineq = append(cp.Ineq, r)
		}
	}
	return cp
}

// reducedRow is a row's coefficients restricted to the variables still
// free at a branch-and-bound node, with fixed variables' contributions
// folded into the right-hand side.
type reducedRow struct {
	coeffs map[BoolVar]int
	rhs    float64
}

func reduce(r row, fixed map[BoolVar]int8) reducedRow {
	rr := reducedRow{coeffs: make(map[BoolVar]int, len(r.coeffs)), rhs: float64(r.rhs)}
	for v, c := range r.coeffs {
		if val, isFixed := fixed[v]; isFixed {
			rr.rhs -= float64(c) * float64(val)
			continue
		}
		if c != 0 {
			rr.coeffs[v] = c
		}
	}
	return rr
}
