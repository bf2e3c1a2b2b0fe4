package mapping_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedplan-go/internal/domain"
	"wedplan-go/internal/mapping"
)

func baseProblem() domain.Problem {
	return domain.Problem{
		Tables: []domain.Table{
			{ID: "t1", Capacity: 4},
			{ID: "t2", Capacity: 4},
		},
		Guests: []domain.Guest{
			{ID: "alice", Name: "Alice"},
			{ID: "bob", Name: "Bob"},
		},
		Options: domain.DefaultSolveOptions(),
	}
}

func TestNew_HappyPath(t *testing.T) {
	p := baseProblem()
	p.Groups = []domain.Group{{ID: "g1", GuestIDs: []string{"alice", "bob"}}}

	m, err := mapping.New(p)
	require.NoError(t, err)

	assert.Equal(t, 2, m.NumGuests())
	assert.Equal(t, 2, m.NumTables())
	assert.Equal(t, 1, m.NumGroups())
	assert.Equal(t, 8, m.TotalSeats)
	assert.Equal(t, []int{0, 1}, m.Groups[0].GuestIndices)
}

func TestNew_DuplicateTableID(t *testing.T) {
	p := baseProblem()
	p.Tables = append(p.Tables, domain.Table{ID: "t1", Capacity: 2})

	_, err := mapping.New(p)
	var dupErr *domain.DuplicateIDError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "table", dupErr.EntityType)
}

func TestNew_GuestNotFoundInGroup(t *testing.T) {
	p := baseProblem()
	p.Groups = []domain.Group{{ID: "g1", GuestIDs: []string{"alice", "carol"}}}

	_, err := mapping.New(p)
	var notFound *domain.GuestNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "carol", notFound.GuestID)
}

func TestNew_DuplicateGroupMember(t *testing.T) {
	p := baseProblem()
	p.Groups = []domain.Group{{ID: "g1", GuestIDs: []string{"alice", "alice"}}}

	_, err := mapping.New(p)
	var dupMember *domain.DuplicateGroupMemberError
	require.True(t, errors.As(err, &dupMember))
}

func TestNew_GuestInTwoGroupsRejected(t *testing.T) {
	p := baseProblem()
	p.Groups = []domain.Group{
		{ID: "g1", GuestIDs: []string{"alice"}},
		{ID: "g2", GuestIDs: []string{"alice", "bob"}},
	}

	_, err := mapping.New(p)
	var dupMember *domain.DuplicateGroupMemberError
	require.True(t, errors.As(err, &dupMember))
}

func TestNew_GroupTooLarge(t *testing.T) {
	p := baseProblem()
	p.Tables = []domain.Table{{ID: "t1", Capacity: 2}}
	p.Groups = []domain.Group{{ID: "g1", GuestIDs: []string{"alice", "bob"}}}
	p.Guests = append(p.Guests, domain.Guest{ID: "carol", Name: "Carol"})
	p.Groups[0].GuestIDs = append(p.Groups[0].GuestIDs, "carol")

	_, err := mapping.New(p)
	var tooLarge *domain.GroupTooLargeError
	require.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, 3, tooLarge.Size)
	assert.Equal(t, 2, tooLarge.MaxCapacity)
}

func TestNew_CapacityErrorWhenEmptySeatsDisallowed(t *testing.T) {
	p := baseProblem()
	p.Options.AllowEmptySeats = false

	_, err := mapping.New(p)
	var capErr *domain.CapacityError
	require.True(t, errors.As(err, &capErr))
}

func TestNew_CapacityErrorWhenGuestsExceedSeats(t *testing.T) {
	p := baseProblem()
	p.Tables = []domain.Table{{ID: "t1", Capacity: 1}}

	_, err := mapping.New(p)
	var capErr *domain.CapacityError
	require.True(t, errors.As(err, &capErr))
}

func TestNew_GuestInTwoPartnerPairsRejected(t *testing.T) {
	p := baseProblem()
	p.Guests = append(p.Guests, domain.Guest{ID: "carol", Name: "Carol"})
	p.Partners = []domain.Partner{
		{A: "alice", B: "bob"},
		{A: "alice", B: "carol"},
	}

	_, err := mapping.New(p)
	var dupMember *domain.DuplicateGroupMemberError
	require.True(t, errors.As(err, &dupMember))
}

func TestNew_PartnerSelfPairRejected(t *testing.T) {
	p := baseProblem()
	p.Partners = []domain.Partner{{A: "alice", B: "alice"}}

	_, err := mapping.New(p)
	var sizeErr *domain.PartnerSizeError
	require.True(t, errors.As(err, &sizeErr))
}

func TestNew_AdjacentGroupTooLarge(t *testing.T) {
	p := baseProblem()
	p.Tables = []domain.Table{{ID: "t1", Capacity: 1}}
	p.AdjacentGroups = []domain.AdjacentGroup{{ID: "ag1", GuestIDs: []string{"alice", "bob"}}}

	_, err := mapping.New(p)
	var tooLarge *domain.GroupTooLargeError
	require.True(t, errors.As(err, &tooLarge))
}

func TestNew_GuestInTwoAdjacentGroupsRejected(t *testing.T) {
	p := baseProblem()
	p.Guests = append(p.Guests, domain.Guest{ID: "carol", Name: "Carol"})
	p.AdjacentGroups = []domain.AdjacentGroup{
		{ID: "ag1", GuestIDs: []string{"alice"}},
		{ID: "ag2", GuestIDs: []string{"alice", "carol"}},
	}

	_, err := mapping.New(p)
	var dupMember *domain.DuplicateGroupMemberError
	require.True(t, errors.As(err, &dupMember))
}

func TestNew_AffinityGroupNotFound(t *testing.T) {
	p := baseProblem()
	p.Groups = []domain.Group{{ID: "g1", GuestIDs: []string{"alice"}}}
	p.Affinities = []domain.AffinityEdge{{A: "g1", B: "ghost", Score: 1}}

	_, err := mapping.New(p)
	var notFound *domain.GroupNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ghost", notFound.GroupID)
}

func TestNew_DuplicateAffinityEdgesSum(t *testing.T) {
	p := baseProblem()
	p.Groups = []domain.Group{
		{ID: "ga", GuestIDs: []string{"alice"}},
		{ID: "gb", GuestIDs: []string{"bob"}},
	}
	p.Affinities = []domain.AffinityEdge{
		{A: "ga", B: "gb", Score: 1},
		{A: "gb", B: "ga", Score: 1},
	}

	m, err := mapping.New(p)
	require.NoError(t, err)
	require.Len(t, m.Affinities, 1)
	assert.Equal(t, 2, m.Affinities[0].Score)
}

func TestNew_ValidationIsIdempotent(t *testing.T) {
	p := baseProblem()
	p.Groups = []domain.Group{{ID: "g1", GuestIDs: []string{"alice", "bob"}}}

	m1, err := mapping.New(p)
	require.NoError(t, err)
	m2, err := mapping.New(p)
	require.NoError(t, err)

	assert.Equal(t, m1.TotalSeats, m2.TotalSeats)
	assert.Equal(t, m1.Groups[0].GuestIndices, m2.Groups[0].GuestIndices)
}
