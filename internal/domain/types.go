// Package domain holds the core data model for the seating optimization
// problem: tables, guests, groups, affinities, and the typed errors raised
// while validating a request.
package domain

// Table is a circular table with a fixed seat capacity. Seats are numbered
// 0..Capacity-1; seat s has neighbors (s-1+Capacity)%Capacity and
// (s+1)%Capacity.
type Table struct {
	ID       string
	Label    string
	Capacity int
}

// Guest is a single seating participant.
type Guest struct {
	ID   string
	Name string
}

// Group is a set of guests that must be seated at the same table.
type Group struct {
	ID       string
	GuestIDs []string
}

// AdjacentGroup is a Group with the additional requirement that its
// members occupy a contiguous circular block of seats at one table.
type AdjacentGroup struct {
	ID       string
	GuestIDs []string
}

// Partner is an unordered pair of guests that must share a table and sit
// in adjacent seats.
type Partner struct {
	A string
	B string
}

// AffinityEdge is a signed preference between two groups for sharing a
// table. Score is one of -1, 0, +1.
type AffinityEdge struct {
	A     string
	B     string
	Score int
}

// SolveOptions configures the solver driver.
type SolveOptions struct {
	TimeLimitSeconds float64
	NumWorkers       int
	AllowEmptySeats  bool
}

// DefaultSolveOptions mirrors the wire-format defaults from the HTTP
// surface (§6): a five-second budget, a single worker, empty seats
// permitted.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		TimeLimitSeconds: 5.0,
		NumWorkers:       1,
		AllowEmptySeats:  true,
	}
}

// Problem is the full seating optimization request in its internal,
// string-id-keyed form (as accepted at the API boundary).
type Problem struct {
	Tables         []Table
	Guests         []Guest
	Groups         []Group
	AdjacentGroups []AdjacentGroup
	Partners       []Partner
	Affinities     []AffinityEdge
	Options        SolveOptions
}

// Status is the closed set of terminal solver outcomes.
type Status string

const (
	StatusOptimal      Status = "OPTIMAL"
	StatusFeasible     Status = "FEASIBLE"
	StatusInfeasible   Status = "INFEASIBLE"
	StatusUnknown      Status = "UNKNOWN"
	StatusModelInvalid Status = "MODEL_INVALID"
)

// SeatAssignment is one seat's occupant, or an empty seat when GuestID is
// nil.
type SeatAssignment struct {
	SeatIndex int
	GuestID   *string
	GuestName *string
}

// TableAssignment is one table's full seat-by-seat occupancy.
type TableAssignment struct {
	TableID string
	Seats   []SeatAssignment
}

// SolverStats carries the diagnostic counters exposed by the driver.
type SolverStats struct {
	Conflicts       int64
	Branches        int64
	WallTimeSeconds float64
}

// Response is the result of solving a Problem.
type Response struct {
	Status         Status
	ObjectiveValue *int
	Tables         []TableAssignment
	Stats          SolverStats
}
