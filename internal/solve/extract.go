package solve

import (
	"wedplan-go/internal/builder"
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/domain"
	"wedplan-go/internal/mapping"
)

// extract maps a cpsat.Result back onto domain types. Only OPTIMAL and
// FEASIBLE carry an objective value and populated tables; every other
// status yields an empty tables list and a nil objective, per spec §4.5.
func extract(m *mapping.Mapping, v *builder.Vars, result cpsat.Result) domain.Response {
	resp := domain.Response{
		Status: domain.Status(result.Status),
		Stats: domain.SolverStats{
			Conflicts:       result.Stats.Conflicts,
			Branches:        result.Stats.Branches,
			WallTimeSeconds: result.Stats.WallTimeSeconds,
		},
	}

	if result.Status != cpsat.StatusOptimal && result.Status != cpsat.StatusFeasible {
		return resp
	}

	objective := result.Objective
	resp.ObjectiveValue = &objective

	resp.Tables = make([]domain.TableAssignment, len(m.Tables))
	for _, t := range m.Tables {
		seats := make([]domain.SeatAssignment, t.Capacity)
		for s := 0; s < t.Capacity; s++ {
			seats[s] = domain.SeatAssignment{SeatIndex: s}
		}
		resp.Tables[t.Index] = domain.TableAssignment{TableID: t.ID, Seats: seats}
	}

	for g := range m.Guests {
		for _, t := range m.Tables {
			for s := 0; s < t.Capacity; s++ {
				if !result.Values[v.X[g][t.Index][s]] {
					continue
				}
				guestID := m.Guests[g].ID
				guestName := m.Guests[g].Name
				resp.Tables[t.Index].Seats[s].GuestID = &guestID
				resp.Tables[t.Index].Seats[s].GuestName = &guestName
			}
		}
	}

	return resp
}
