package builder

import (
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/mapping"
)

// Adjacency posts the two optional strictness layers: C5 (contiguous
// circular block for adjacent groups) and C5' (partner seat adjacency).
// Both are no-ops when the mapping carries no entries of the
// corresponding kind.
func Adjacency(model *cpsat.Model, m *mapping.Mapping, v *Vars) {
	for _, ag := range m.AdjacentGroups {
		postBlockContiguity(model, m, v, ag)
	}
	for _, p := range m.Partners {
		postPartnerAdjacency(model, m, v, p)
	}
}

// postBlockContiguity enumerates one block-choice indicator per (table,
// start seat) with capacity large enough to hold the group, constrains
// exactly one to be chosen, and ties the chosen block to occupancy. It
// also re-posts cohesion for the group's members directly, independent of
// any plain Group sharing the same membership, so the contiguity
// constraint never depends on cohesion having been posted elsewhere.
func postBlockContiguity(model *cpsat.Model, m *mapping.Mapping, v *Vars, ag mapping.AdjacentGroup) {
	n := len(ag.GuestIndices)
	if n < 2 {
		return
	}

	var blockVars []cpsat.BoolVar
	type block struct {
		t     int
		seats []int
	}
	var blocks []block

	for _, t := range m.Tables {
		if t.Capacity < n {
			continue
		}
		for s := 0; s < t.Capacity; s++ {
			seats := make([]int, n)
			for k := 0; k < n; k++ {
				seats[k] = (s + k) % t.Capacity
			}
			b := model.NewBoolVar("adjblock")
			blockVars = append(blockVars, b)
			blocks = append(blocks, block{t: t.Index, seats: seats})
		}
	}

	model.AddExactlyOne(blockVars...)

	for i, b := range blocks {
		chosen := blockVars[i]
		for _, member := range ag.GuestIndices {
			lits := make([]cpsat.LiteralLike, 0, len(b.seats)+1)
			lits = append(lits, chosen.Not())
			for _, seat := range b.seats {
				lits = append(lits, v.X[member][b.t][seat])
			}
			model.AddBoolOr(lits...)
		}
		for _, seat := range b.seats {
			lits := make([]cpsat.LiteralLike, 0, len(ag.GuestIndices)+1)
			lits = append(lits, chosen.Not())
			for _, member := range ag.GuestIndices {
				lits = append(lits, v.X[member][b.t][seat])
			}
			model.AddBoolOr(lits...)
		}
	}

	rep := ag.GuestIndices[0]
	for _, member := range ag.GuestIndices[1:] {
		for _, t := range m.Tables {
			model.AddEquality(v.Y[member][t.Index], v.Y[rep][t.Index])
		}
	}
}

// postPartnerAdjacency posts C5': for every table and seat, if a sits
// there, b must occupy one of its two circular neighbors, and
// symmetrically.
func postPartnerAdjacency(model *cpsat.Model, m *mapping.Mapping, v *Vars, p mapping.PartnerPair) {
	for _, t := range m.Tables {
		cap := t.Capacity
		for s := 0; s < cap; s++ {
			prev := (s - 1 + cap) % cap
			next := (s + 1) % cap
			model.AddBoolOr(v.X[p.A][t.Index][s].Not(), v.X[p.B][t.Index][prev], v.X[p.B][t.Index][next])
			model.AddBoolOr(v.X[p.B][t.Index][s].Not(), v.X[p.A][t.Index][prev], v.X[p.A][t.Index][next])
		}
	}
}
