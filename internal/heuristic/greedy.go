// Package heuristic builds a cheap seating that satisfies assignment and
// same-table cohesion and hands it to the solver as a warm-start
// incumbent candidate. It is adapted from
// the teacher repository's greedy table-assignment algorithm
// (internal/algorithms/table_assignment.go): sort the largest, most
// constrained parties first, then best-fit them into the least wasteful
// available table. Here the "parties" are guest groups rather than
// individual customers, and tables are wedding tables rather than bar
// tables, but the greedy discipline — biggest party first, tightest fit
// first — is unchanged.
package heuristic

import (
	"sort"

	"wedplan-go/internal/builder"
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/mapping"
)

type unit struct {
	guestIndices []int
}

// WarmStart greedily seats every unit (same-table group, or lone guest)
// into tables, largest unit first, into the tightest-fitting table with
// enough remaining capacity. Members of a unit are packed into
// consecutive free seats at their table. Only x and y variables are set:
// adjacent groups and partner pairs are not units, and block and
// co-location indicators are left false, so the result is not feasible
// for every model (e.g. one with an adjacent group, or with two
// affinity-linked groups placed at one table). The solver re-validates
// any warm start against the full constraint set and ignores one that
// fails.
//
// Returns nil when no complete feasible packing is found; the solver
// then searches cold, which is always correct, just potentially slower.
func WarmStart(m *mapping.Mapping, v *builder.Vars) map[cpsat.BoolVar]bool {
	units := buildUnits(m)
	sort.Slice(units, func(i, j int) bool {
		return len(units[i].guestIndices) > len(units[j].guestIndices)
	})

	remaining := make([]int, len(m.Tables))
	used := make([]int, len(m.Tables))
	for _, t := range m.Tables {
		remaining[t.Index] = t.Capacity
	}

	assignment := make(map[cpsat.BoolVar]bool)

	for _, u := range units {
		size := len(u.guestIndices)
		best := bestFitTable(remaining, size)
		if best == -1 {
			return nil
		}

		start := used[best]
		for k, guest := range u.guestIndices {
			seat := start + k
			assignment[v.X[guest][best][seat]] = true
			assignment[v.Y[guest][best]] = true
		}
		used[best] += size
		remaining[best] -= size
	}

	return assignment
}

// bestFitTable returns the table index with the smallest remaining
// capacity that still accommodates size, mirroring the teacher's
// preference for tables that match group size closely over tables with
// wasted slack. Returns -1 if no table fits.
func bestFitTable(remaining []int, size int) int {
	best := -1
	bestSlack := -1
	for i, r := range remaining {
		if r < size {
			continue
		}
		slack := r - size
		if best == -1 || slack < bestSlack {
			best = i
			bestSlack = slack
		}
	}
	return best
}

// buildUnits partitions every guest into exactly one seating unit: a
// group's full membership, or a singleton for an ungrouped guest. Groups
// are already validated (spec §4.1 / mapping) so that no guest appears in
// more than one plain group.
func buildUnits(m *mapping.Mapping) []unit {
	inGroup := make(map[int]bool, m.NumGuests())
	units := make([]unit, 0, m.NumGuests())

	for _, g := range m.Groups {
		units = append(units, unit{guestIndices: g.GuestIndices})
		for _, idx := range g.GuestIndices {
			inGroup[idx] = true
		}
	}
	for _, g := range m.Guests {
		if !inGroup[g.Index] {
			units = append(units, unit{guestIndices: []int{g.Index}})
		}
	}
	return units
}
