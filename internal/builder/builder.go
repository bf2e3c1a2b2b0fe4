package builder

import (
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/mapping"
)

// Build allocates the shared variable space and posts the assignment,
// cohesion, and adjacency sub-builders in order, returning the variables
// the objective builder and solution extractor need to read back.
func Build(model *cpsat.Model, m *mapping.Mapping) *Vars {
	v := NewVars(model, m)
	Assignment(model, m, v)
	Cohesion(model, m, v)
	Adjacency(model, m, v)
	return v
}
