package builder_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedplan-go/internal/builder"
	"wedplan-go/internal/cpsat"
	"wedplan-go/internal/domain"
	"wedplan-go/internal/mapping"
)

func TestBuild_EachGuestSeatedExactlyOnce(t *testing.T) {
	p := domain.Problem{
		Tables: []domain.Table{{ID: "t1", Capacity: 2}, {ID: "t2", Capacity: 2}},
		Guests: []domain.Guest{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Options: domain.SolveOptions{TimeLimitSeconds: 2, NumWorkers: 1, AllowEmptySeats: true},
	}
	m, err := mapping.New(p)
	require.NoError(t, err)

	model := cpsat.NewModel()
	v := builder.Build(model, m)

	solver := cpsat.NewSolver(2*time.Second, 2)
	result := solver.Solve(context.Background(), model, nil)
	require.Equal(t, cpsat.StatusOptimal, result.Status)

	for g := range m.Guests {
		count := 0
		for _, table := range m.Tables {
			for s := 0; s < table.Capacity; s++ {
				if result.Values[v.X[g][table.Index][s]] {
					count++
				}
			}
		}
		assert.Equal(t, 1, count, "guest %d should occupy exactly one seat", g)
	}
}

func TestBuild_GroupCohesionSharesTable(t *testing.T) {
	p := domain.Problem{
		Tables:  []domain.Table{{ID: "t1", Capacity: 4}, {ID: "t2", Capacity: 4}},
		Guests:  []domain.Guest{{ID: "alice"}, {ID: "bob"}, {ID: "carol"}, {ID: "dave"}},
		Groups:  []domain.Group{{ID: "family", GuestIDs: []string{"alice", "bob", "carol"}}},
		Options: domain.SolveOptions{TimeLimitSeconds: 2, NumWorkers: 1, AllowEmptySeats: true},
	}
	m, err := mapping.New(p)
	require.NoError(t, err)

	model := cpsat.NewModel()
	v := builder.Build(model, m)

	solver := cpsat.NewSolver(2*time.Second, 1)
	result := solver.Solve(context.Background(), model, nil)
	require.Equal(t, cpsat.StatusOptimal, result.Status)

	tableOf := func(guestID string) int {
		idx := m.GuestIDToIndex[guestID]
		for _, table := range m.Tables {
			if result.Values[v.Y[idx][table.Index]] {
				return table.Index
			}
		}
		t.Fatalf("guest %s has no table", guestID)
		return -1
	}

	aliceTable := tableOf("alice")
	assert.Equal(t, aliceTable, tableOf("bob"))
	assert.Equal(t, aliceTable, tableOf("carol"))
}

func TestBuild_PartnerAdjacency(t *testing.T) {
	p := domain.Problem{
		Tables:   []domain.Table{{ID: "t1", Capacity: 6}},
		Guests:   []domain.Guest{{ID: "alice"}, {ID: "bob"}, {ID: "carol"}, {ID: "dave"}, {ID: "eve"}, {ID: "frank"}},
		Partners: []domain.Partner{{A: "alice", B: "bob"}},
		Options:  domain.SolveOptions{TimeLimitSeconds: 3, NumWorkers: 1, AllowEmptySeats: true},
	}
	m, err := mapping.New(p)
	require.NoError(t, err)

	model := cpsat.NewModel()
	v := builder.Build(model, m)

	solver := cpsat.NewSolver(3*time.Second, 1)
	result := solver.Solve(context.Background(), model, nil)
	require.Equal(t, cpsat.StatusOptimal, result.Status)

	aliceIdx := m.GuestIDToIndex["alice"]
	bobIdx := m.GuestIDToIndex["bob"]
	aliceSeat, bobSeat := -1, -1
	cap := m.Tables[0].Capacity
	for s := 0; s < cap; s++ {
		if result.Values[v.X[aliceIdx][0][s]] {
			aliceSeat = s
		}
		if result.Values[v.X[bobIdx][0][s]] {
			bobSeat = s
		}
	}
	require.NotEqual(t, -1, aliceSeat)
	require.NotEqual(t, -1, bobSeat)
	diff := (aliceSeat - bobSeat + cap) % cap
	assert.True(t, diff == 1 || diff == cap-1)
}

func TestBuild_AdjacentGroupContiguousBlock(t *testing.T) {
	p := domain.Problem{
		Tables:         []domain.Table{{ID: "t1", Capacity: 8}},
		Guests:         []domain.Guest{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}},
		AdjacentGroups: []domain.AdjacentGroup{{ID: "trio", GuestIDs: []string{"a", "b", "c"}}},
		Options:        domain.SolveOptions{TimeLimitSeconds: 5, NumWorkers: 2, AllowEmptySeats: true},
	}
	m, err := mapping.New(p)
	require.NoError(t, err)

	model := cpsat.NewModel()
	v := builder.Build(model, m)

	solver := cpsat.NewSolver(5*time.Second, 2)
	result := solver.Solve(context.Background(), model, nil)
	require.Equal(t, cpsat.StatusOptimal, result.Status)

	cap := m.Tables[0].Capacity
	var seats []int
	for _, guestID := range []string{"a", "b", "c"} {
		idx := m.GuestIDToIndex[guestID]
		for s := 0; s < cap; s++ {
			if result.Values[v.X[idx][0][s]] {
				seats = append(seats, s)
			}
		}
	}
	require.Len(t, seats, 3)
	assert.True(t, isContiguousBlock(seats, cap))
}

// isContiguousBlock mirrors the original wedplan test helper
// (_are_contiguous): sorted seat indices form a contiguous circular block
// when rotating the gaps around the circle leaves at most one gap larger
// than 1.
func isContiguousBlock(seats []int, capacity int) bool {
	sorted := append([]int(nil), seats...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	gaps := 0
	for i := 0; i < len(sorted); i++ {
		next := sorted[(i+1)%len(sorted)]
		cur := sorted[i]
		step := (next - cur + capacity) % capacity
		if step != 1 {
			gaps++
		}
	}
	return gaps <= 1
}
