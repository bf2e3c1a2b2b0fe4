// Package mapping validates a domain.Problem and converts its string IDs
// into the dense integer indices the solver packages operate on. It is the
// Validator / Mapper component of the pipeline (spec §4.1): pure, and it
// never allocates a solver variable.
package mapping

import (
	"wedplan-go/internal/domain"
)

// Table is table metadata keyed by dense index.
type Table struct {
	ID       string
	Index    int
	Capacity int
	Label    string
}

// Guest is guest metadata keyed by dense index.
type Guest struct {
	ID    string
	Index int
	Name  string
}

// Group is same-table group metadata keyed by dense index.
type Group struct {
	ID           string
	Index        int
	GuestIndices []int
}

// AdjacentGroup is a contiguous-block group, mirroring Group plus the
// adjacency requirement.
type AdjacentGroup struct {
	ID           string
	GuestIndices []int
}

// PartnerPair is a resolved, order-independent pair of guest indices.
type PartnerPair struct {
	A int
	B int
}

// AffinityEdge is a resolved signed preference between two groups,
// keyed by group index rather than group id.
type AffinityEdge struct {
	A     int
	B     int
	Score int
}

// Mapping is the complete index space for one problem instance.
type Mapping struct {
	Tables         []Table
	Guests         []Guest
	Groups         []Group
	AdjacentGroups []AdjacentGroup
	Partners       []PartnerPair
	Affinities     []AffinityEdge

	GuestIDToIndex map[string]int
	TableIDToIndex map[string]int
	GroupIDToIndex map[string]int

	TotalSeats int
}

func (m *Mapping) NumGuests() int { return len(m.Guests) }
func (m *Mapping) NumTables() int { return len(m.Tables) }
func (m *Mapping) NumGroups() int { return len(m.Groups) }

// MaxCapacity returns the largest single-table capacity in the mapping,
// or 0 if there are no tables.
func (m *Mapping) MaxCapacity() int {
	max := 0
	for _, t := range m.Tables {
		if t.Capacity > max {
			max = t.Capacity
		}
	}
	return max
}

// New validates a Problem and builds its Mapping.
//
// Checks run in this order: ID uniqueness, then reference validity
// (unknown guests or groups, repeated membership, partner pairs), then
// group size and total capacity feasibility. Partner symmetry is not
// checked here: a PartnerPair is a single unordered pair.
func New(p domain.Problem) (*Mapping, error) {
	if err := validateUniqueTableIDs(p.Tables); err != nil {
		return nil, err
	}
	if err := validateUniqueGuestIDs(p.Guests); err != nil {
		return nil, err
	}
	if err := validateUniqueGroupIDs(p.Groups); err != nil {
		return nil, err
	}
	if err := validateUniqueAdjacentGroupIDs(p.AdjacentGroups); err != nil {
		return nil, err
	}

	tableIDToIndex := make(map[string]int, len(p.Tables))
	tables := make([]Table, len(p.Tables))
	for i, t := range p.Tables {
		tableIDToIndex[t.ID] = i
		tables[i] = Table{ID: t.ID, Index: i, Capacity: t.Capacity, Label: t.Label}
	}

	guestIDToIndex := make(map[string]int, len(p.Guests))
	guests := make([]Guest, len(p.Guests))
	for i, g := range p.Guests {
		guestIDToIndex[g.ID] = i
		guests[i] = Guest{ID: g.ID, Index: i, Name: g.Name}
	}

	maxCap := 0
	for _, t := range tables {
		if t.Capacity > maxCap {
			maxCap = t.Capacity
		}
	}

	// groupMembership tracks, per guest index, which plain group already
	// claimed that guest. A guest may only ever belong to one relationship
	// of each kind; adjacent groups and partner pairs are tracked in their
	// own maps below, the same way.
	groupMembership := make(map[int]string, len(p.Guests))

	// tooLarge holds the first oversized group found; it is reported only
	// after every reference has been validated.
	var tooLarge error

	groups := make([]Group, len(p.Groups))
	groupIDToIndex := make(map[string]int, len(p.Groups))
	for i, g := range p.Groups {
		indices, err := resolveGuestIndices(g.GuestIDs, guestIDToIndex, "group '"+g.ID+"'")
		if err != nil {
			return nil, err
		}
		if err := claimMembership(groupMembership, indices, g.GuestIDs, g.ID); err != nil {
			return nil, err
		}
		if tooLarge == nil && len(indices) > maxCap {
			tooLarge = &domain.GroupTooLargeError{GroupID: g.ID, Size: len(indices), MaxCapacity: maxCap}
		}
		groupIDToIndex[g.ID] = i
		groups[i] = Group{ID: g.ID, Index: i, GuestIndices: indices}
	}

	// adjacentGroupMembership is tracked separately from groupMembership:
	// a guest may belong to at most one plain group AND at most one
	// adjacent group (spec §3), so the two claims must not collide with
	// each other.
	adjacentGroupMembership := make(map[int]string, len(p.Guests))

	adjacentGroups := make([]AdjacentGroup, len(p.AdjacentGroups))
	for i, ag := range p.AdjacentGroups {
		indices, err := resolveGuestIndices(ag.GuestIDs, guestIDToIndex, "adjacent group '"+ag.ID+"'")
		if err != nil {
			return nil, err
		}
		if err := claimMembership(adjacentGroupMembership, indices, ag.GuestIDs, ag.ID); err != nil {
			return nil, err
		}
		if tooLarge == nil && len(indices) > maxCap {
			tooLarge = &domain.GroupTooLargeError{GroupID: ag.ID, Size: len(indices), MaxCapacity: maxCap}
		}
		adjacentGroups[i] = AdjacentGroup{ID: ag.ID, GuestIndices: indices}
	}

	partners, err := resolvePartners(p.Partners, guestIDToIndex)
	if err != nil {
		return nil, err
	}

	affinities, err := resolveAffinities(p.Affinities, groupIDToIndex)
	if err != nil {
		return nil, err
	}
	if tooLarge != nil {
		return nil, tooLarge
	}

	totalSeats := 0
	for _, t := range tables {
		totalSeats += t.Capacity
	}

	if !p.Options.AllowEmptySeats && len(guests) != totalSeats {
		return nil, &domain.CapacityError{Message: capacityMessage(len(guests), totalSeats)}
	}
	if totalSeats < len(guests) {
		return nil, &domain.CapacityError{Message: capacityMessage(len(guests), totalSeats)}
	}

	return &Mapping{
		Tables:         tables,
		Guests:         guests,
		Groups:         groups,
		AdjacentGroups: adjacentGroups,
		Partners:       partners,
		Affinities:     affinities,
		GuestIDToIndex: guestIDToIndex,
		TableIDToIndex: tableIDToIndex,
		GroupIDToIndex: groupIDToIndex,
		TotalSeats:     totalSeats,
	}, nil
}

// resolveAffinities maps each affinity edge's group ids to indices and
// sums scores for duplicate canonical pairs, per the spec's Open
// Question resolution (sum, don't reject or dedupe-by-overwrite).
func resolveAffinities(edges []domain.AffinityEdge, groupIDToIndex map[string]int) ([]AffinityEdge, error) {
	scoreByPair := make(map[[2]int]int, len(edges))
	order := make([][2]int, 0, len(edges))

	for _, e := range edges {
		aIdx, ok := groupIDToIndex[e.A]
		if !ok {
			return nil, &domain.GroupNotFoundError{GroupID: e.A, Context: "affinity edge"}
		}
		bIdx, ok := groupIDToIndex[e.B]
		if !ok {
			return nil, &domain.GroupNotFoundError{GroupID: e.B, Context: "affinity edge"}
		}
		pair := canonicalPair(aIdx, bIdx)
		if _, seen := scoreByPair[pair]; !seen {
			order = append(order, pair)
		}
		scoreByPair[pair] += e.Score
	}

	resolved := make([]AffinityEdge, 0, len(order))
	for _, pair := range order {
		resolved = append(resolved, AffinityEdge{A: pair[0], B: pair[1], Score: scoreByPair[pair]})
	}
	return resolved, nil
}

func canonicalPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func capacityMessage(guests, seats int) string {
	if guests > seats {
		return "total guest count exceeds total seat capacity"
	}
	return "total seat capacity exceeds the guest count, but empty seats are disallowed"
}

func validateUniqueTableIDs(tables []domain.Table) error {
	seen := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		if _, ok := seen[t.ID]; ok {
			return &domain.DuplicateIDError{EntityType: "table", EntityID: t.ID}
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

func validateUniqueGuestIDs(guests []domain.Guest) error {
	seen := make(map[string]struct{}, len(guests))
	for _, g := range guests {
		if _, ok := seen[g.ID]; ok {
			return &domain.DuplicateIDError{EntityType: "guest", EntityID: g.ID}
		}
		seen[g.ID] = struct{}{}
	}
	return nil
}

func validateUniqueGroupIDs(groups []domain.Group) error {
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.ID]; ok {
			return &domain.DuplicateIDError{EntityType: "group", EntityID: g.ID}
		}
		seen[g.ID] = struct{}{}
	}
	return nil
}

func validateUniqueAdjacentGroupIDs(groups []domain.AdjacentGroup) error {
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.ID]; ok {
			return &domain.DuplicateIDError{EntityType: "adjacent group", EntityID: g.ID}
		}
		seen[g.ID] = struct{}{}
	}
	return nil
}

// resolveGuestIndices maps guest IDs to indices, rejecting unknown IDs and
// in-group duplicates.
func resolveGuestIndices(guestIDs []string, guestIDToIndex map[string]int, context string) ([]int, error) {
	seen := make(map[string]struct{}, len(guestIDs))
	indices := make([]int, 0, len(guestIDs))
	for _, id := range guestIDs {
		if _, dup := seen[id]; dup {
			return nil, &domain.DuplicateGroupMemberError{GuestID: id}
		}
		seen[id] = struct{}{}

		idx, ok := guestIDToIndex[id]
		if !ok {
			return nil, &domain.GuestNotFoundError{GuestID: id, Context: context}
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// claimMembership records that every guest in indices belongs to owner,
// rejecting a guest that is already claimed by a different group.
func claimMembership(membership map[int]string, indices []int, guestIDs []string, owner string) error {
	for i, idx := range indices {
		if prior, ok := membership[idx]; ok && prior != owner {
			return &domain.DuplicateGroupMemberError{GuestID: guestIDs[i]}
		}
		membership[idx] = owner
	}
	return nil
}

func resolvePartners(partners []domain.Partner, guestIDToIndex map[string]int) ([]PartnerPair, error) {
	claimed := make(map[int]struct{}, len(partners)*2)
	resolved := make([]PartnerPair, 0, len(partners))

	for _, p := range partners {
		if p.A == p.B {
			return nil, &domain.PartnerSizeError{GuestIDs: []string{p.A, p.B}}
		}
		aIdx, ok := guestIDToIndex[p.A]
		if !ok {
			return nil, &domain.GuestNotFoundError{GuestID: p.A, Context: "partner entry"}
		}
		bIdx, ok := guestIDToIndex[p.B]
		if !ok {
			return nil, &domain.GuestNotFoundError{GuestID: p.B, Context: "partner entry"}
		}
		for _, idx := range [2]int{aIdx, bIdx} {
			if _, already := claimed[idx]; already {
				return nil, &domain.DuplicateGroupMemberError{GuestID: guestIDByIndex(guestIDToIndex, idx)}
			}
			claimed[idx] = struct{}{}
		}
		resolved = append(resolved, PartnerPair{A: aIdx, B: bIdx})
	}
	return resolved, nil
}

func guestIDByIndex(guestIDToIndex map[string]int, idx int) string {
	for id, i := range guestIDToIndex {
		if i == idx {
			return id
		}
	}
	return ""
}
