package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

func rows(n int) []model.LeaderboardRow {
	out := make([]model.LeaderboardRow, n)
	for i := range out {
		out[i] = model.LeaderboardRow{ID: string(rune('a' + i))}
	}
	return out
}

func TestRank(t *testing.T) {
	assert.Equal(t, 1, Rank(1, 0))
	assert.Equal(t, 10, Rank(1, 9))
	assert.Equal(t, 11, Rank(2, 0))
	assert.Equal(t, 25, Rank(3, 4))
	assert.Equal(t, 1, Rank(0, 0), "page below 1 is normalized")
}

func TestResolveAgeRange(t *testing.T) {
	r := ResolveAgeRange("25-34")
	assert.Equal(t, 25, r.Lower)
	assert.Equal(t, 34, r.Upper)

	r = ResolveAgeRange("45+")
	assert.Equal(t, 45, r.Lower)
	assert.Equal(t, 100, r.Upper)

	r = ResolveAgeRange("nonsense")
	assert.Equal(t, "All Ages", r.Label)
	assert.Zero(t, r.Lower)
	assert.Zero(t, r.Upper)
}

func TestBeginNormalizesQuery(t *testing.T) {
	s := NewSession()

	_, params := s.Begin(Query{Page: 0, AgeRange: "18-24", City: "  mumbai "})

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 18, params.LowerAge)
	assert.Equal(t, 24, params.UpperAge)
	assert.Equal(t, "MUMBAI", params.City)
	assert.False(t, params.FetchUser)
}

func TestFindMeIsOneShot(t *testing.T) {
	s := NewSession()
	s.RequestFindMe()

	_, params := s.Begin(Query{Page: 1})
	assert.True(t, params.FetchUser, "armed findMe applies to the next request")

	_, params = s.Begin(Query{Page: 2})
	assert.False(t, params.FetchUser, "findMe does not stick across requests")
}

func TestApplyRanksAndPaging(t *testing.T) {
	s := NewSession()

	token, params := s.Begin(Query{Page: 2})
	require.True(t, s.Apply(token, params.Page, rows(PageSize), "c"))

	ranked, page, hasNext := s.View()
	assert.Equal(t, 2, page)
	assert.True(t, hasNext, "a full page implies a next page")
	require.Len(t, ranked, PageSize)
	assert.Equal(t, 11, ranked[0].Rank)
	assert.Equal(t, 20, ranked[9].Rank)
	assert.True(t, ranked[2].IsCurrentUser)
	assert.False(t, ranked[3].IsCurrentUser)
}

func TestApplyShortPageDisablesNext(t *testing.T) {
	s := NewSession()

	token, params := s.Begin(Query{Page: 1})
	require.True(t, s.Apply(token, params.Page, rows(4), ""))

	ranked, _, hasNext := s.View()
	assert.Len(t, ranked, 4)
	assert.False(t, hasNext)
	assert.False(t, ranked[0].IsCurrentUser, "no current user id means no highlight")
}

func TestApplyDiscardsStaleResponse(t *testing.T) {
	s := NewSession()

	tokenOld, _ := s.Begin(Query{Page: 1})
	tokenNew, _ := s.Begin(Query{Page: 2})

	// Page 2 resolves first; the late page 1 response must not clobber it
	require.True(t, s.Apply(tokenNew, 2, rows(PageSize), ""))
	assert.False(t, s.Apply(tokenOld, 1, rows(3), ""))

	_, page, hasNext := s.View()
	assert.Equal(t, 2, page)
	assert.True(t, hasNext)
}
