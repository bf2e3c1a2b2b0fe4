package builder

import (
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/mapping"
)

// Cohesion posts C4: every member of a group shares the representative
// member's table, for every group with two or more members. Groups of
// size 1 need no constraint — they're already free to sit wherever their
// own assignment variables put them.
func Cohesion(model *cpsat.Model, m *mapping.Mapping, v *Vars) {
	for _, g := range m.Groups {
		if len(g.GuestIndices) < 2 {
			continue
		}
		rep := g.GuestIndices[0]
		for _, member := range g.GuestIndices[1:] {
			for _, t := range m.Tables {
				model.AddEquality(v.Y[member][t.Index], v.Y[rep][t.Index])
			}
		}
	}
}
