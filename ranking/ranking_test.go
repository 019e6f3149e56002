package ranking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/votekit/models"
)

func newTestSorter(t *testing.T) *Sorter {
	t.Helper()
	sorter, err := NewSorter("en")
	require.NoError(t, err)
	return sorter
}

// drinksActivity is the canonical fixture: three candidates with 100, 130,
// and 50 votes.
func drinksActivity() []models.Candidate {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return []models.Candidate{
		{CandidateID: "1", ActivityID: "drinks-2024", Name: "Iced Latte", VoteCount: 100, ApprovalState: models.ApprovalApproved, CreatedAt: base},
		{CandidateID: "2", ActivityID: "drinks-2024", Name: "Matcha", VoteCount: 130, ApprovalState: models.ApprovalApproved, CreatedAt: base.Add(time.Hour)},
		{CandidateID: "3", ActivityID: "drinks-2024", Name: "Americano", VoteCount: 50, ApprovalState: models.ApprovalApproved, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func ids(candidates []models.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.CandidateID
	}
	return out
}

func TestApply_VoteCount(t *testing.T) {
	sorter := newTestSorter(t)

	tests := []struct {
		name     string
		order    string
		expected []string
	}{
		{
			name:     "descending",
			order:    models.OrderDescending,
			expected: []string{"2", "1", "3"},
		},
		{
			name:     "ascending",
			order:    models.OrderAscending,
			expected: []string{"3", "1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked, err := sorter.Apply(drinksActivity(), models.SortSpec{
				SortBy: models.SortByVoteCount,
				Order:  tt.order,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(ranked))
		})
	}
}

func TestApply_DescendingIsNonIncreasing(t *testing.T) {
	sorter := newTestSorter(t)

	ranked, err := sorter.Apply(drinksActivity(), models.SortSpec{
		SortBy: models.SortByVoteCount,
		Order:  models.OrderDescending,
	})
	require.NoError(t, err)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].VoteCount, ranked[i].VoteCount,
			"vote counts must be non-increasing at index %d", i)
	}
}

func TestApply_Idempotent(t *testing.T) {
	sorter := newTestSorter(t)
	spec := models.SortSpec{SortBy: models.SortByVoteCount, Order: models.OrderDescending}

	once, err := sorter.Apply(drinksActivity(), spec)
	require.NoError(t, err)
	twice, err := sorter.Apply(once, spec)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	sorter := newTestSorter(t)

	input := drinksActivity()
	_, err := sorter.Apply(input, models.SortSpec{
		SortBy: models.SortByVoteCount,
		Order:  models.OrderDescending,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, ids(input), "input order must be untouched")
}

func TestApply_StableTies(t *testing.T) {
	sorter := newTestSorter(t)

	tied := []models.Candidate{
		{CandidateID: "a", Name: "First In", VoteCount: 10},
		{CandidateID: "b", Name: "Second In", VoteCount: 10},
		{CandidateID: "c", Name: "Third In", VoteCount: 10},
	}

	// Equal keys keep input order in both directions: descending inverts
	// strict comparisons only, so ties are not reversed.
	for _, order := range []string{models.OrderAscending, models.OrderDescending} {
		ranked, err := sorter.Apply(tied, models.SortSpec{SortBy: models.SortByVoteCount, Order: order})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, ids(ranked), "order %s", order)
	}
}

func TestApply_ReversingOrderReversesStrictKeys(t *testing.T) {
	sorter := newTestSorter(t)

	asc, err := sorter.Apply(drinksActivity(), models.SortSpec{
		SortBy: models.SortByVoteCount, Order: models.OrderAscending,
	})
	require.NoError(t, err)
	desc, err := sorter.Apply(drinksActivity(), models.SortSpec{
		SortBy: models.SortByVoteCount, Order: models.OrderDescending,
	})
	require.NoError(t, err)

	for i := range asc {
		assert.Equal(t, asc[i].CandidateID, desc[len(desc)-1-i].CandidateID)
	}
}

func TestApply_NameUsesCollation(t *testing.T) {
	sorter := newTestSorter(t)

	candidates := []models.Candidate{
		{CandidateID: "1", Name: "cherry"},
		{CandidateID: "2", Name: "Banana"},
		{CandidateID: "3", Name: "apple"},
	}

	ranked, err := sorter.Apply(candidates, models.SortSpec{
		SortBy: models.SortByName, Order: models.OrderAscending,
	})
	require.NoError(t, err)

	// Plain byte comparison would put "Banana" before "apple"; collation
	// must not.
	assert.Equal(t, []string{"3", "2", "1"}, ids(ranked))
}

func TestApply_Latest(t *testing.T) {
	sorter := newTestSorter(t)

	ranked, err := sorter.Apply(drinksActivity(), models.SortSpec{
		SortBy: models.SortByLatest, Order: models.OrderDescending,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "2", "1"}, ids(ranked), "newest first")
}

func TestApply_EmptyAndSingle(t *testing.T) {
	sorter := newTestSorter(t)
	spec := models.SortSpec{SortBy: models.SortByVoteCount, Order: models.OrderDescending}

	empty, err := sorter.Apply([]models.Candidate{}, spec)
	require.NoError(t, err)
	assert.Empty(t, empty)

	single, err := sorter.Apply(drinksActivity()[:1], spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(single))
}

func TestApply_InvalidSpec(t *testing.T) {
	sorter := newTestSorter(t)

	_, err := sorter.Apply(drinksActivity(), models.SortSpec{SortBy: "magic", Order: models.OrderAscending})
	assert.Error(t, err)

	_, err = sorter.Apply(drinksActivity(), models.SortSpec{SortBy: models.SortByVoteCount, Order: "sideways"})
	assert.Error(t, err)
}

func TestNewSorter_InvalidLocale(t *testing.T) {
	_, err := NewSorter("not a locale!!")
	assert.Error(t, err)
}

func TestApply_GoldenRanking(t *testing.T) {
	sorter := newTestSorter(t)

	ranked, err := sorter.Apply(drinksActivity(), models.SortSpec{
		SortBy: models.SortByVoteCount, Order: models.OrderDescending,
	})
	require.NoError(t, err)

	payload, err := json.MarshalIndent(ranked, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "ranked_votes_desc", payload)
}
