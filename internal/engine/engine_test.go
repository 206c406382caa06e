package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yash-007/zenith-engine/internal/apperr"
	"github.com/Yash-007/zenith-engine/internal/featured"
	"github.com/Yash-007/zenith-engine/internal/leaderboard"
	model "github.com/Yash-007/zenith-engine/internal/models"
	"github.com/Yash-007/zenith-engine/internal/remote"
)

// fakeAPI implements API in memory and records what the engine asked for.
type fakeAPI struct {
	categories []model.Category
	challenges model.ChallengesByCategory
	pending    *model.Submission
	user       model.User
	rows       []model.LeaderboardRow
	page       model.SubmissionPage
	rewards    []model.RewardEntry
	chats      []model.ChatExchange
	chatReply  string

	refreshErr  error
	submitErr   error
	submitCalls int
	lastSubmit  remote.SubmitRequest
	lastParams  remote.LeaderboardParams
	redeemCalls int
	lastRedeem  int
}

func (f *fakeAPI) Categories(ctx context.Context) ([]model.Category, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.categories, nil
}

func (f *fakeAPI) UserChallenges(ctx context.Context) (*remote.UserChallengesData, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return &remote.UserChallengesData{
		ChallengesByInterest:    f.challenges,
		RecentPendingSubmission: f.pending,
	}, nil
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (*model.User, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	user := f.user
	return &user, nil
}

func (f *fakeAPI) SubmitChallenge(ctx context.Context, req remote.SubmitRequest) (*model.Submission, error) {
	f.submitCalls++
	f.lastSubmit = req
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &model.Submission{ID: "sub-new", ChallengeID: req.ChallengeID, Status: model.StatusPending}, nil
}

func (f *fakeAPI) Submissions(ctx context.Context, page int) (*model.SubmissionPage, error) {
	p := f.page
	return &p, nil
}

func (f *fakeAPI) SubmissionDetails(ctx context.Context, id string) (*model.Submission, error) {
	return &model.Submission{ID: id}, nil
}

func (f *fakeAPI) Leaderboard(ctx context.Context, params remote.LeaderboardParams) ([]model.LeaderboardRow, error) {
	f.lastParams = params
	return f.rows, nil
}

func (f *fakeAPI) RewardHistory(ctx context.Context) ([]model.RewardEntry, error) {
	return f.rewards, nil
}

func (f *fakeAPI) Redeem(ctx context.Context, points int) (*model.RewardEntry, error) {
	f.redeemCalls++
	f.lastRedeem = points
	return &model.RewardEntry{PointsRewarded: points}, nil
}

func (f *fakeAPI) ChatHistory(ctx context.Context) ([]model.ChatExchange, error) {
	return f.chats, nil
}

func (f *fakeAPI) SendChatQuery(ctx context.Context, query string) (string, error) {
	return f.chatReply, nil
}

func pendingStatus() *string {
	s := model.StatusPending
	return &s
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		categories: []model.Category{{ID: 1, Name: "Fitness"}, {ID: 2, Name: "Mindfulness"}},
		challenges: model.ChallengesByCategory{
			1: {
				{ID: "ch-1", Title: "Morning Run", Category: 1},
				{ID: "ch-2", Title: "Pushups", Category: 1, IsSubmitted: true, SubmissionStatus: pendingStatus()},
			},
			2: {
				{ID: "ch-3", Title: "Meditation", Category: 2},
			},
		},
		user: model.User{ID: "u1", Name: "Asha"},
	}
}

func images() []remote.ImageFile {
	return []remote.ImageFile{{Name: "proof.jpg", Data: []byte("x")}}
}

func TestChallengesBeforeLoad(t *testing.T) {
	e := New(newFakeAPI(), featured.First(), 0)

	_, err := e.Challenges()
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNetwork))
}

func TestRefreshAndDeriveChallenges(t *testing.T) {
	api := newFakeAPI()
	e := New(api, featured.First(), 0)

	require.NoError(t, e.Refresh(context.Background()))

	view, err := e.Challenges()
	require.NoError(t, err)
	require.NotNil(t, view.Featured)
	assert.Equal(t, "ch-1", view.Featured.ID, "first policy picks the first filtered challenge")
	assert.Len(t, view.Available, 2)
	for _, ch := range view.Available {
		assert.NotEqual(t, view.Featured.ID, ch.ID, "featured never repeats in available")
	}
	assert.Len(t, view.Categories, 2)
	assert.Empty(t, view.ActiveFilter)
	assert.Equal(t, "", view.FilterQuery)
}

func TestChallengesFilterByInterest(t *testing.T) {
	api := newFakeAPI()
	e := New(api, featured.First(), 0)
	require.NoError(t, e.Refresh(context.Background()))

	e.Toggle(2)
	view, err := e.Challenges()
	require.NoError(t, err)
	require.NotNil(t, view.Featured)
	assert.Equal(t, "ch-3", view.Featured.ID)
	assert.Empty(t, view.Available)
	assert.Equal(t, []int{2}, view.ActiveFilter)
	assert.Equal(t, "2", view.FilterQuery)

	// Deselecting the last specific interest falls back to everything
	e.Toggle(2)
	view, err = e.Challenges()
	require.NoError(t, err)
	assert.Len(t, view.Available, 2)
	assert.Empty(t, view.ActiveFilter)
}

func TestChallengesMemoStableAcrossReads(t *testing.T) {
	api := newFakeAPI()
	e := New(api, featured.Random(7), 0)
	require.NoError(t, e.Refresh(context.Background()))

	first, err := e.Challenges()
	require.NoError(t, err)
	second, err := e.Challenges()
	require.NoError(t, err)

	assert.Equal(t, first.Featured.ID, second.Featured.ID, "featured pick must not flicker between reads")
}

func TestApplyFilterQueryRestoresSelection(t *testing.T) {
	e := New(newFakeAPI(), featured.First(), 0)

	e.ApplyFilterQuery("2,1")
	assert.Equal(t, "1,2", e.FilterQuery())

	e.ApplyFilterQuery("")
	assert.Equal(t, "", e.FilterQuery())
}

func TestSubmitCatalogChallenge(t *testing.T) {
	api := newFakeAPI()
	e := New(api, featured.First(), 0)
	require.NoError(t, e.Refresh(context.Background()))

	confirmed, err := e.SubmitChallenge(context.Background(), SubmitInput{
		ChallengeID: "ch-1",
		Images:      images(),
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, confirmed.Status)
	assert.Equal(t, "u1", api.lastSubmit.UserID)
	assert.True(t, api.lastSubmit.IsChallengeExists)
}

func TestSubmitPendingChallengeBlocked(t *testing.T) {
	api := newFakeAPI()
	e := New(api, featured.First(), 0)
	require.NoError(t, e.Refresh(context.Background()))

	_, err := e.SubmitChallenge(context.Background(), SubmitInput{
		ChallengeID: "ch-2",
		Images:      images(),
	})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindDuplicate))
	assert.Equal(t, 0, api.submitCalls)
}

func TestSubmitCustomChallenge(t *testing.T) {
	api := newFakeAPI()
	e := New(api, featured.First(), 0)
	require.NoError(t, e.Refresh(context.Background()))

	_, err := e.SubmitChallenge(context.Background(), SubmitInput{
		IsCustom: true,
		Images:   images(),
	})

	require.NoError(t, err)
	assert.False(t, api.lastSubmit.IsChallengeExists)
	assert.Equal(t, "Custom Challenge", api.lastSubmit.ChallengeName)
	assert.NotEmpty(t, api.lastSubmit.ChallengeID, "custom submissions get a generated id")
}

func TestActivityHeatmap(t *testing.T) {
	api := newFakeAPI()
	now := time.Now().UTC()
	api.page = model.SubmissionPage{
		Submissions: []model.Submission{
			{SubmittedAt: now.Add(-2 * time.Hour)},
			{SubmittedAt: now.Add(-3 * time.Hour)},
		},
	}
	e := New(api, featured.First(), 0)

	counts, err := e.ActivityHeatmap(context.Background())
	require.NoError(t, err)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 2, total)
}

func TestLeaderboardPage(t *testing.T) {
	api := newFakeAPI()
	api.rows = []model.LeaderboardRow{{ID: "u2"}, {ID: "u1"}, {ID: "u3"}}
	e := New(api, featured.First(), 0)
	require.NoError(t, e.Refresh(context.Background()))

	view, err := e.LeaderboardPage(context.Background(), leaderboard.Query{
		Page:     1,
		AgeRange: "18-24",
		City:     " pune ",
	})

	require.NoError(t, err)
	assert.Equal(t, "PUNE", api.lastParams.City)
	assert.Equal(t, 18, api.lastParams.LowerAge)
	require.Len(t, view.Rows, 3)
	assert.Equal(t, 1, view.Rows[0].Rank)
	assert.Equal(t, 2, view.Rows[1].Rank)
	assert.True(t, view.Rows[1].IsCurrentUser)
	assert.False(t, view.HasNext, "short page means no next")
}

func TestFindMeAppliesOnce(t *testing.T) {
	api := newFakeAPI()
	e := New(api, featured.First(), 0)

	e.FindMe()
	_, err := e.LeaderboardPage(context.Background(), leaderboard.Query{Page: 1})
	require.NoError(t, err)
	assert.True(t, api.lastParams.FetchUser)

	_, err = e.LeaderboardPage(context.Background(), leaderboard.Query{Page: 2})
	require.NoError(t, err)
	assert.False(t, api.lastParams.FetchUser)
}

func TestRedeemPoints(t *testing.T) {
	api := newFakeAPI()
	e := New(api, featured.First(), 0)

	entry, err := e.RedeemPoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RedeemAmount, entry.PointsRewarded)
	assert.Equal(t, RedeemAmount, api.lastRedeem)
	assert.Equal(t, 1, api.redeemCalls)
}

func TestAskCoach(t *testing.T) {
	api := newFakeAPI()
	api.chatReply = "try splitting the run into intervals"
	e := New(api, featured.First(), 0)

	_, err := e.AskCoach(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	exchange, err := e.AskCoach(context.Background(), "how do I improve my 5k time?")
	require.NoError(t, err)
	assert.Equal(t, api.chatReply, exchange.Response)
}
