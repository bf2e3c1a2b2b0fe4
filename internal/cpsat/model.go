// Package cpsat is a small pseudo-boolean ILP engine shaped after the
// OR-Tools CP-SAT model-building API that the original wedplan design was
// written against (new_bool_var, add_bool_or, add_implication,
// add_exactly_one, add_at_most_one, add_max_equality, maximize). Spec
// treats the solver as an opaque black box with exactly these primitives;
// this package implements that box in-process with a branch-and-bound
// search over an LP relaxation, in the style of jjhbw/GoMILP (see
// _examples/other_examples), rather than vendoring or faking an external
// solver dependency.
package cpsat

import "fmt"

// BoolVar identifies a boolean decision variable by its dense index.
type BoolVar int

// Literal is a variable or its negation, as posted into clauses and
// implications.
type Literal struct {
	Var     BoolVar
	Negated bool
}

// LiteralLike is satisfied by both BoolVar and Literal so that constraint
// builders can mix bare variables and explicit negations in one call, the
// way OR-Tools' Python wrapper accepts an IntVar or its .Not() wherever a
// literal is expected.
type LiteralLike interface {
	asLiteral() Literal
}

func (v BoolVar) asLiteral() Literal { return Literal{Var: v} }
func (l Literal) asLiteral() Literal { return l }

// Not returns the negated literal.
func (v BoolVar) Not() Literal { return Literal{Var: v, Negated: true} }

// Not returns the negation of a literal.
func (l Literal) Not() Literal { return Literal{Var: l.Var, Negated: !l.Negated} }

func toLiterals(ls []LiteralLike) []Literal {
	out := make([]Literal, len(ls))
	for i, l := range ls {
		out[i] = l.asLiteral()
	}
	return out
}

// row is one linear constraint over boolean variables: sum(coeff[v]*v) <=
// rhs, or == rhs when eq is true.
type row struct {
	coeffs map[BoolVar]int
	rhs    int
	eq     bool
}

// Model accumulates decision variables, constraints, and a single linear
// objective. It never touches the solver; Solver.Solve compiles and
// searches it.
type Model struct {
	names []string
	rows  []row
	obj   map[BoolVar]int
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{obj: make(map[BoolVar]int)}
}

// NewBoolVar allocates a fresh boolean variable.
func (m *Model) NewBoolVar(name string) BoolVar {
	m.names = append(m.names, name)
	return BoolVar(len(m.names) - 1)
}

// NumVars returns the number of variables allocated so far.
func (m *Model) NumVars() int { return len(m.names) }

// VarName returns the debug name a variable was created with.
func (m *Model) VarName(v BoolVar) string {
	if int(v) < 0 || int(v) >= len(m.names) {
		return fmt.Sprintf("v%d", v)
	}
	return m.names[v]
}

// addRow converts a literal-coefficient inequality into BoolVar
// coefficients. A negated literal contributes (1 - v): its coefficient is
// -coeff and the constant 1*coeff folds into rhs.
func (m *Model) addRow(lits []Literal, coeffs []int, rhs int, eq bool) {
	c := make(map[BoolVar]int, len(lits))
	adjustedRHS := rhs
	for i, l := range lits {
		coeff := 1
		if i < len(coeffs) {
			coeff = coeffs[i]
		}
		if l.Negated {
			c[l.Var] -= coeff
			adjustedRHS -= coeff
		} else {
			c[l.Var] += coeff
		}
	}
	m.rows = append(m.rows, row{coeffs: c, rhs: adjustedRHS, eq: eq})
}

// AddBoolOr posts a clause: at least one of the literals must be true.
// Equivalent to sum(lit_as_indicator) >= 1, i.e. -sum <= -1.
func (m *Model) AddBoolOr(lits ...LiteralLike) {
	ls := toLiterals(lits)
	coeffs := make([]int, len(ls))
	for i := range coeffs {
		coeffs[i] = -1
	}
	m.addRow(ls, coeffs, -1, false)
}

// AddImplication posts a => b.
func (m *Model) AddImplication(a, b LiteralLike) {
	m.AddBoolOr(a.asLiteral().Not(), b)
}

// AddExactlyOne posts sum(vars) == 1.
func (m *Model) AddExactlyOne(vars ...BoolVar) {
	lits := make([]Literal, len(vars))
	for i, v := range vars {
		lits[i] = v.asLiteral()
	}
	m.addRow(lits, nil, 1, true)
}

// AddAtMostOne posts sum(vars) <= 1.
func (m *Model) AddAtMostOne(vars ...BoolVar) {
	lits := make([]Literal, len(vars))
	for i, v := range vars {
		lits[i] = v.asLiteral()
	}
	m.addRow(lits, nil, 1, false)
}

// AddEquality posts a == b for two boolean variables (a - b == 0).
func (m *Model) AddEquality(a, b BoolVar) {
	m.addRow([]Literal{a.asLiteral(), b.asLiteral()}, []int{1, -1}, 0, true)
}

// AddMaxEquality posts target == max(vars), i.e. boolean OR: target is 1
// iff at least one of vars is 1.
//
//	target >= v_i  for every i   (target can't be 0 while some v_i is 1)
//	target <= sum(v_i)           (target can't be 1 while every v_i is 0)
func (m *Model) AddMaxEquality(target BoolVar, vars []BoolVar) {
	for _, v := range vars {
		// target - v >= 0  =>  -target + v <= 0
		m.addRow([]Literal{target.asLiteral(), v.asLiteral()}, []int{-1, 1}, 0, false)
	}
	lits := make([]Literal, 0, len(vars)+1)
	coeffs := make([]int, 0, len(vars)+1)
	lits = append(lits, target.asLiteral())
	coeffs = append(coeffs, 1)
	for _, v := range vars {
		lits = append(lits, v.asLiteral())
		coeffs = append(coeffs, -1)
	}
	// target - sum(v_i) <= 0
	m.addRow(lits, coeffs, 0, false)
}

// Maximize installs score*target as an objective term. Called once per
// nonzero affinity edge by the objective builder; terms accumulate. A
// model with no terms has the constant objective zero.
func (m *Model) Maximize(coeff int, v BoolVar) {
	m.obj[v] += coeff
}

// Objective returns the accumulated objective map, for the solver to
// compile.
func (m *Model) Objective() map[BoolVar]int { return m.obj }

// rowsView exposes the posted constraint rows, for the solver to compile.
func (m *Model) rowsView() []row { return m.rows }
