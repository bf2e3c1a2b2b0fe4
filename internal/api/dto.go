// Package api defines the wire-format request/response DTOs for
// POST /v1/optimize (spec §6). Struct tags drive both JSON decoding and
// go-playground/validator schema checks; domain conversion happens in
// ToDomain, after which all further checks run through internal/mapping.
package api

import (
	"wedplan-go/internal/domain"
)

// TableIn is the wire form of domain.Table.
type TableIn struct {
	ID       string `json:"id" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=2"`
	Label    string `json:"label"`
}

// GuestIn is the wire form of domain.Guest.
type GuestIn struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

// GroupIn is the wire form of domain.Group.
type GroupIn struct {
	ID       string   `json:"id" binding:"required"`
	GuestIDs []string `json:"guest_ids" binding:"required,min=1"`
}

// AdjacentGroupIn is the wire form of domain.AdjacentGroup: a named set
// of guests that must additionally occupy a contiguous circular block
// (spec §3, expansion). Requires at least 2 members — a block of 1 is
// just a regular group.
type AdjacentGroupIn struct {
	ID       string   `json:"id" binding:"required"`
	GuestIDs []string `json:"guest_ids" binding:"required,min=2"`
}

// PartnerIn is the wire form of domain.Partner: an unordered pair
// submitted once, not twice (symmetry is structural, not declared).
type PartnerIn struct {
	A string `json:"a" binding:"required"`
	B string `json:"b" binding:"required"`
}

// AffinityEdgeIn is the wire form of domain.AffinityEdge.
type AffinityEdgeIn struct {
	A     string `json:"a" binding:"required"`
	B     string `json:"b" binding:"required"`
	Score int    `json:"score" binding:"oneof=-1 0 1"`
}

// SolveOptionsIn is the wire form of domain.SolveOptions. Defaults
// (DefaultSolveOptionsIn) are applied by ToDomain only when the request
// omits the options object entirely; they are not applied per field. An
// options object that is present must carry time_limit_seconds and
// num_workers, and a missing allow_empty_seats in it reads as false.
type SolveOptionsIn struct {
	TimeLimitSeconds float64 `json:"time_limit_seconds" binding:"required,gt=0"`
	NumWorkers       int     `json:"num_workers" binding:"required,min=1"`
	AllowEmptySeats  bool    `json:"allow_empty_seats"`
}

// DefaultSolveOptionsIn mirrors domain.DefaultSolveOptions for requests
// that omit the options object entirely.
func DefaultSolveOptionsIn() SolveOptionsIn {
	d := domain.DefaultSolveOptions()
	return SolveOptionsIn{
		TimeLimitSeconds: d.TimeLimitSeconds,
		NumWorkers:       d.NumWorkers,
		AllowEmptySeats:  d.AllowEmptySeats,
	}
}

// ProblemIn is the full wire-format request body for POST /v1/optimize.
type ProblemIn struct {
	Tables         []TableIn         `json:"tables" binding:"required,min=1,dive"`
	Guests         []GuestIn         `json:"guests" binding:"required,min=1,dive"`
	Groups         []GroupIn         `json:"groups" binding:"dive"`
	AdjacentGroups []AdjacentGroupIn `json:"adjacent_groups" binding:"dive"`
	Partners       []PartnerIn       `json:"partners" binding:"dive"`
	Affinities     []AffinityEdgeIn  `json:"affinities" binding:"dive"`
	Options        *SolveOptionsIn   `json:"options"`
}

// ToDomain converts a bound ProblemIn into a domain.Problem, applying
// default solve options when the request omitted them.
func (p ProblemIn) ToDomain() domain.Problem {
	opts := DefaultSolveOptionsIn()
	if p.Options != nil {
		opts = *p.Options
	}

	tables := make([]domain.Table, len(p.Tables))
	for i, t := range p.Tables {
		tables[i] = domain.Table{ID: t.ID, Label: t.Label, Capacity: t.Capacity}
	}

	guests := make([]domain.Guest, len(p.Guests))
	for i, g := range p.Guests {
		guests[i] = domain.Guest{ID: g.ID, Name: g.Name}
	}

	groups := make([]domain.Group, len(p.Groups))
	for i, g := range p.Groups {
		groups[i] = domain.Group{ID: g.ID, GuestIDs: g.GuestIDs}
	}

	adjacentGroups := make([]domain.AdjacentGroup, len(p.AdjacentGroups))
	for i, g := range p.AdjacentGroups {
		adjacentGroups[i] = domain.AdjacentGroup{ID: g.ID, GuestIDs: g.GuestIDs}
	}

	partners := make([]domain.Partner, len(p.Partners))
	for i, pr := range p.Partners {
		partners[i] = domain.Partner{A: pr.A, B: pr.B}
	}

	affinities := make([]domain.AffinityEdge, len(p.Affinities))
	for i, a := range p.Affinities {
		affinities[i] = domain.AffinityEdge{A: a.A, B: a.B, Score: a.Score}
	}

	return domain.Problem{
		Tables:         tables,
		Guests:         guests,
		Groups:         groups,
		AdjacentGroups: adjacentGroups,
		Partners:       partners,
		Affinities:     affinities,
		Options: domain.SolveOptions{
			TimeLimitSeconds: opts.TimeLimitSeconds,
			NumWorkers:       opts.NumWorkers,
			AllowEmptySeats:  opts.AllowEmptySeats,
		},
	}
}

// SeatOut is the wire form of one seat's occupancy.
type SeatOut struct {
	SeatIndex int     `json:"seat_index"`
	GuestID   *string `json:"guest_id"`
	GuestName *string `json:"guest_name"`
}

// TableOut is the wire form of one table's seat-by-seat assignment.
type TableOut struct {
	TableID string    `json:"table_id"`
	Seats   []SeatOut `json:"seats"`
}

// SolverStatsOut is the wire form of domain.SolverStats.
type SolverStatsOut struct {
	Conflicts       int64   `json:"conflicts"`
	Branches        int64   `json:"branches"`
	WallTimeSeconds float64 `json:"wall_time_seconds"`
}

// ResponseOut is the wire form of domain.Response, returned by
// POST /v1/optimize.
type ResponseOut struct {
	Status         string         `json:"status"`
	ObjectiveValue *int           `json:"objective_value"`
	Tables         []TableOut     `json:"tables"`
	SolverStats    SolverStatsOut `json:"solver_stats"`
}

// FromDomain converts a domain.Response into its wire form.
func FromDomain(r domain.Response) ResponseOut {
	tables := make([]TableOut, len(r.Tables))
	for i, t := range r.Tables {
		seats := make([]SeatOut, len(t.Seats))
		for j, s := range t.Seats {
			seats[j] = SeatOut{SeatIndex: s.SeatIndex, GuestID: s.GuestID, GuestName: s.GuestName}
		}
		tables[i] = TableOut{TableID: t.TableID, Seats: seats}
	}

	return ResponseOut{
		Status:         string(r.Status),
		ObjectiveValue: r.ObjectiveValue,
		Tables:         tables,
		SolverStats: SolverStatsOut{
			Conflicts:       r.Stats.Conflicts,
			Branches:        r.Stats.Branches,
			WallTimeSeconds: r.Stats.WallTimeSeconds,
		},
	}
}
