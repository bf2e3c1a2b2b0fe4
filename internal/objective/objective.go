// Package objective installs the linear maximization objective described
// in spec §4.3: a memoized co-location indicator per canonical group pair,
// summed with its signed affinity score.
package objective

import (
	"wedplan-go/internal/builder"
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/mapping"
)

// Build introduces one co-location indicator per distinct (nonzero-score)
// group pair referenced by m.Affinities and installs
// maximize(Σ score·c[pair]). If every edge has a zero score (or there are
// no edges), no indicator is allocated and the objective is the constant
// zero the solver still optimizes against — it simply returns the first
// feasible assignment.
func Build(model *cpsat.Model, m *mapping.Mapping, v *builder.Vars) {
	colocated := make(map[[2]int]cpsat.BoolVar)

	for _, edge := range m.Affinities {
		if edge.Score == 0 {
			continue
		}
		pair := canonicalPair(edge.A, edge.B)
		c, ok := colocated[pair]
		if !ok {
			c = coLocationIndicator(model, m, v, pair[0], pair[1])
			colocated[pair] = c
		}
		model.Maximize(edge.Score, c)
	}
}

// coLocationIndicator posts c = OR_t ( y[rep(A),t] AND y[rep(B),t] ),
// using each group's first member as its representative (valid because
// cohesion, C4, guarantees every member of a group shares one table).
func coLocationIndicator(model *cpsat.Model, m *mapping.Mapping, v *builder.Vars, groupA, groupB int) cpsat.BoolVar {
	repA := representative(m, groupA)
	repB := representative(m, groupB)

	sameTableAt := make([]cpsat.BoolVar, len(m.Tables))
	for _, t := range m.Tables {
		s := model.NewBoolVar("colocated_same_table")
		yA := v.Y[repA][t.Index]
		yB := v.Y[repB][t.Index]
		model.AddImplication(s, yA)
		model.AddImplication(s, yB)
		// yA AND yB => s, i.e. NOT yA OR NOT yB OR s.
		model.AddBoolOr(yA.Not(), yB.Not(), s)
		sameTableAt[t.Index] = s
	}

	c := model.NewBoolVar("colocated")
	model.AddMaxEquality(c, sameTableAt)
	return c
}

func representative(m *mapping.Mapping, groupIndex int) int {
	return m.Groups[groupIndex].GuestIndices[0]
}

func canonicalPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
