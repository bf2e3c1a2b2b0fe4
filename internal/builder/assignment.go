package builder

import (
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/mapping"
)

// Assignment posts C1 (every guest seated exactly once), C2 (every seat
// occupied by at most one guest), and C3 (y linked to x via max-equality).
func Assignment(model *cpsat.Model, m *mapping.Mapping, v *Vars) {
	// C1: Σ_{t,s} x[g,t,s] = 1 for every guest.
	for g := range m.Guests {
		var seats []cpsat.BoolVar
		for _, t := range m.Tables {
			seats = append(seats, v.X[g][t.Index]...)
		}
		model.AddExactlyOne(seats...)
	}

	// C2: Σ_g x[g,t,s] <= 1 for every (t, s).
	for _, t := range m.Tables {
		for s := 0; s < t.Capacity; s++ {
			var occupants []cpsat.BoolVar
			for g := range m.Guests {
				occupants = append(occupants, v.X[g][t.Index][s])
			}
			model.AddAtMostOne(occupants...)
		}
	}

	// C3: y[g,t] == OR_s x[g,t,s].
	for g := range m.Guests {
		for _, t := range m.Tables {
			model.AddMaxEquality(v.Y[g][t.Index], v.X[g][t.Index])
		}
	}
}
