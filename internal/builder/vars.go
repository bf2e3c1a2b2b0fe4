// Package builder posts the Model Builder's constraints (spec §4.2) into a
// cpsat.Model: assignment exclusivity, group cohesion, and the optional
// contiguous-block / partner-adjacency strictness layers. None of these
// sub-builders invoke the solver; they only allocate variables and rows.
package builder

import (
	"strconv"

	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/mapping"
)

// Vars is the shared variable space every sub-builder reads and writes:
// x[g][t][s] (guest g in seat s of table t) and y[g][t] (guest g at table
// t, any seat). Keeping both layers lets group-cohesion and affinity
// constraints operate on y without ever enumerating seats.
type Vars struct {
	X [][][]cpsat.BoolVar // [guest][table][seat]
	Y [][]cpsat.BoolVar   // [guest][table]
}

// NewVars allocates x and y for every guest/table/seat combination implied
// by m, naming each variable for debuggability.
func NewVars(model *cpsat.Model, m *mapping.Mapping) *Vars {
	v := &Vars{
		X: make([][][]cpsat.BoolVar, m.NumGuests()),
		Y: make([][]cpsat.BoolVar, m.NumGuests()),
	}
	for g := range m.Guests {
		v.X[g] = make([][]cpsat.BoolVar, m.NumTables())
		v.Y[g] = make([]cpsat.BoolVar, m.NumTables())
		for _, t := range m.Tables {
			v.X[g][t.Index] = make([]cpsat.BoolVar, t.Capacity)
			for s := 0; s < t.Capacity; s++ {
				v.X[g][t.Index][s] = model.NewBoolVar(seatVarName(g, t.Index, s))
			}
			v.Y[g][t.Index] = model.NewBoolVar(tableVarName(g, t.Index))
		}
	}
	return v
}

func seatVarName(g, t, s int) string {
	return "x_" + strconv.Itoa(g) + "_" + strconv.Itoa(t) + "_" + strconv.Itoa(s)
}

func tableVarName(g, t int) string {
	return "y_" + strconv.Itoa(g) + "_" + strconv.Itoa(t)
}
