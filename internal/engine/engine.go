package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Yash-007/zenith-engine/internal/activity"
	"github.com/Yash-007/zenith-engine/internal/apperr"
	"github.com/Yash-007/zenith-engine/internal/featured"
	"github.com/Yash-007/zenith-engine/internal/interest"
	"github.com/Yash-007/zenith-engine/internal/leaderboard"
	"github.com/Yash-007/zenith-engine/internal/logger"
	model "github.com/Yash-007/zenith-engine/internal/models"
	"github.com/Yash-007/zenith-engine/internal/remote"
	"github.com/Yash-007/zenith-engine/internal/store"
	"github.com/Yash-007/zenith-engine/internal/submission"
)

// Montant fixe de rachat: minimum 3000 points pour ₹200, maximum 3000 par
// opération (règles produit de la page rewards).
const RedeemAmount = 3000

// API est ce que le moteur attend du collaborateur distant.
type API interface {
	Categories(ctx context.Context) ([]model.Category, error)
	UserChallenges(ctx context.Context) (*remote.UserChallengesData, error)
	CurrentUser(ctx context.Context) (*model.User, error)
	SubmitChallenge(ctx context.Context, req remote.SubmitRequest) (*model.Submission, error)
	Submissions(ctx context.Context, page int) (*model.SubmissionPage, error)
	SubmissionDetails(ctx context.Context, id string) (*model.Submission, error)
	Leaderboard(ctx context.Context, params remote.LeaderboardParams) ([]model.LeaderboardRow, error)
	RewardHistory(ctx context.Context) ([]model.RewardEntry, error)
	Redeem(ctx context.Context, points int) (*model.RewardEntry, error)
	ChatHistory(ctx context.Context) ([]model.ChatExchange, error)
	SendChatQuery(ctx context.Context, query string) (string, error)
}

// Engine orchestre le store, le filtre d'intérêts, la sélection featured, le
// tracker de soumissions et la vue classement. Les sélecteurs sont purs et
// synchrones; seuls les fetchs distants suspendent.
type Engine struct {
	api        API
	store      *store.Store
	tracker    *submission.Tracker
	board      *leaderboard.Session
	policy     featured.Policy
	windowDays int

	mu     sync.Mutex
	filter interest.Filter

	// mémo de la partition featured/available: recalculée uniquement quand le
	// snapshot ou le filtre change, sinon le challenge mis en avant
	// scintillerait à chaque lecture.
	memoVersion   uint64
	memoFilter    string
	memoValid     bool
	memoFeatured  *model.Challenge
	memoAvailable []model.Challenge

	redeeming bool
}

func New(api API, policy featured.Policy, windowDays int) *Engine {
	if windowDays <= 0 {
		windowDays = activity.DefaultWindowDays
	}
	return &Engine{
		api:        api,
		store:      store.New(),
		tracker:    submission.NewTracker(),
		board:      leaderboard.NewSession(),
		policy:     policy,
		windowDays: windowDays,
		filter:     interest.All(),
	}
}

// Store expose le store d'entités (tests et inspection).
func (e *Engine) Store() *store.Store {
	return e.store
}

// Refresh recharge intégralement le snapshot: catégories, challenges groupés
// par intérêt et utilisateur courant. Les réponses arrivées après un refresh
// plus récent sont écartées au moment de l'application.
func (e *Engine) Refresh(ctx context.Context) error {
	token := e.store.Begin()

	categories, err := e.api.Categories(ctx)
	if err != nil {
		e.store.Fail(token, err)
		return err
	}
	data, err := e.api.UserChallenges(ctx)
	if err != nil {
		e.store.Fail(token, err)
		return err
	}
	user, err := e.api.CurrentUser(ctx)
	if err != nil {
		e.store.Fail(token, err)
		return err
	}

	if !e.store.Load(token, store.Snapshot{
		Categories:        categories,
		Challenges:        data.ChallengesByInterest,
		User:              *user,
		PendingSubmission: data.RecentPendingSubmission,
	}) {
		logger.Debug("refresh %d superseded, response discarded", token)
	}
	return nil
}

// Invalidate vide le store (retour à l'état chargement).
func (e *Engine) Invalidate() {
	e.store.Invalidate()
}

// SetFilter remplace la sélection de catégories. Vide = "All".
func (e *Engine) SetFilter(ids []int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter.Set(ids)
}

// Toggle bascule une catégorie dans la sélection.
func (e *Engine) Toggle(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter.Toggle(id)
}

// ToggleAll revient à "All" (exclusif de toute sélection spécifique).
func (e *Engine) ToggleAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter.ToggleAll()
}

// ApplyFilterQuery restaure la sélection depuis sa forme URL.
func (e *Engine) ApplyFilterQuery(raw string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter = interest.ParseQuery(raw)
}

// FilterQuery encode la sélection courante pour l'URL.
func (e *Engine) FilterQuery() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter.EncodeQuery()
}

// ChallengesView est la vue dérivée de la page challenges.
type ChallengesView struct {
	Featured          *model.Challenge  `json:"featured"`
	Available         []model.Challenge `json:"available"`
	Categories        []model.Category  `json:"categories"`
	PendingSubmission *model.Submission `json:"pendingSubmission,omitempty"`
	ActiveFilter      []int             `json:"activeFilter"`
	FilterQuery       string            `json:"filterQuery"`
}

// Challenges dérive la vue courante: sous-ensemble filtré, partition
// featured/available, catégories et bannière de soumission en attente.
func (e *Engine) Challenges() (*ChallengesView, error) {
	snap, loaded := e.store.Snapshot()
	if !loaded {
		if err := e.store.Err(); err != nil {
			return nil, err
		}
		return nil, apperr.Network("challenges are not loaded yet", nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	version := e.store.Version()
	encoded := e.filter.EncodeQuery()
	if !e.memoValid || e.memoVersion != version || e.memoFilter != encoded {
		filtered := e.filter.Derive(snap.Challenges)
		e.memoFeatured, e.memoAvailable = featured.Partition(e.policy, filtered)
		e.memoVersion = version
		e.memoFilter = encoded
		e.memoValid = true
	}

	return &ChallengesView{
		Featured:          e.memoFeatured,
		Available:         e.memoAvailable,
		Categories:        snap.Categories,
		PendingSubmission: snap.PendingSubmission,
		ActiveFilter:      e.filter.IDs(),
		FilterQuery:       encoded,
	}, nil
}

// SubmitInput décrit une soumission côté UI, catalogue ou libre.
type SubmitInput struct {
	ChallengeID   string
	ChallengeName string
	Text          string
	Images        []remote.ImageFile
	IsCustom      bool
}

// SubmitChallenge valide, garde contre les doublons, envoie, puis refetch
// l'utilisateur et les challenges (compteurs et bannière sont serveur).
func (e *Engine) SubmitChallenge(ctx context.Context, input SubmitInput) (*model.Submission, error) {
	snap, loaded := e.store.Snapshot()
	if !loaded {
		if err := e.Refresh(ctx); err != nil {
			return nil, err
		}
		snap, _ = e.store.Snapshot()
	}

	req := remote.SubmitRequest{
		UserID:            snap.User.ID,
		ChallengeID:       input.ChallengeID,
		ChallengeName:     input.ChallengeName,
		Text:              input.Text,
		Images:            input.Images,
		IsChallengeExists: !input.IsCustom,
	}

	var currentStatus *string
	if input.IsCustom {
		// Achievement libre: pas d'entrée catalogue, id généré côté client
		req.ChallengeID = uuid.NewString()
		if req.ChallengeName == "" {
			req.ChallengeName = "Custom Challenge"
		}
	} else {
		currentStatus = challengeStatus(snap.Challenges, input.ChallengeID)
	}

	confirmed, err := e.tracker.Submit(ctx, e.api, currentStatus, req)
	if err != nil {
		return nil, err
	}

	logger.Success("submission %s accepted for challenge %s", confirmed.ID, req.ChallengeID)

	// Points, streaks et bannière "under review" sont des projections
	// serveur: on refetch tout plutôt que d'incrémenter localement.
	if err := e.Refresh(ctx); err != nil {
		logger.Warning("post-submit refresh failed: %v", err)
	}

	return confirmed, nil
}

// challengeStatus retrouve le statut de soumission courant d'un challenge du
// catalogue, nil s'il n'a jamais été soumis.
func challengeStatus(challenges model.ChallengesByCategory, id string) *string {
	for _, bucket := range challenges {
		for _, ch := range bucket {
			if ch.ID == id {
				if ch.IsSubmitted {
					return ch.SubmissionStatus
				}
				return nil
			}
		}
	}
	return nil
}

// ActivityHeatmap agrège l'historique de soumissions en compteurs par jour
// calendaire sur la fenêtre glissante configurée.
func (e *Engine) ActivityHeatmap(ctx context.Context) (map[string]int, error) {
	page, err := e.api.Submissions(ctx, 0)
	if err != nil {
		return nil, err
	}
	return activity.Aggregate(page.Submissions, e.windowDays), nil
}

// SubmissionHistory récupère une page d'historique, libellés d'affichage et
// remarques de rejet garantis non vides compris.
func (e *Engine) SubmissionHistory(ctx context.Context, page int) (*model.SubmissionPage, error) {
	return e.api.Submissions(ctx, page)
}

// SubmissionDetails récupère une soumission par id.
func (e *Engine) SubmissionDetails(ctx context.Context, id string) (*model.Submission, error) {
	return e.api.SubmissionDetails(ctx, id)
}

// LeaderboardView est une page de classement prête à afficher.
type LeaderboardView struct {
	Rows    []model.RankedRow `json:"rows"`
	Page    int               `json:"page"`
	HasNext bool              `json:"hasNext"`
}

// FindMe arme le modificateur one-shot de la prochaine requête classement.
func (e *Engine) FindMe() {
	e.board.RequestFindMe()
}

// LeaderboardPage interroge le serveur avec les filtres normalisés et calcule
// les rangs d'affichage. Une réponse périmée (page/filtre dépassés) est
// écartée et la vue courante est retournée telle quelle.
func (e *Engine) LeaderboardPage(ctx context.Context, q leaderboard.Query) (*LeaderboardView, error) {
	token, params := e.board.Begin(q)

	rows, err := e.api.Leaderboard(ctx, params)
	if err != nil {
		return nil, err
	}

	var currentUserID string
	if snap, loaded := e.store.Snapshot(); loaded {
		currentUserID = snap.User.ID
	}

	if !e.board.Apply(token, params.Page, rows, currentUserID) {
		logger.Debug("leaderboard page %d superseded, response discarded", params.Page)
	}

	viewRows, page, hasNext := e.board.View()
	return &LeaderboardView{Rows: viewRows, Page: page, HasNext: hasNext}, nil
}

// CurrentUser retourne l'utilisateur du snapshot courant.
func (e *Engine) CurrentUser() (model.User, bool) {
	snap, loaded := e.store.Snapshot()
	return snap.User, loaded
}

// StoreErr expose le flag d'erreur du dernier chargement raté.
func (e *Engine) StoreErr() error {
	return e.store.Err()
}

// RedeemPoints rachète le montant fixe puis refetch l'utilisateur. Gardé
// contre la double invocation pendant que la requête est en vol.
func (e *Engine) RedeemPoints(ctx context.Context) (*model.RewardEntry, error) {
	e.mu.Lock()
	if e.redeeming {
		e.mu.Unlock()
		return nil, apperr.Duplicate("a redemption is already in progress")
	}
	e.redeeming = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.redeeming = false
		e.mu.Unlock()
	}()

	entry, err := e.api.Redeem(ctx, RedeemAmount)
	if err != nil {
		return nil, err
	}

	if err := e.Refresh(ctx); err != nil {
		logger.Warning("post-redeem refresh failed: %v", err)
	}
	return entry, nil
}

// RewardHistory liste les rachats passés.
func (e *Engine) RewardHistory(ctx context.Context) ([]model.RewardEntry, error) {
	return e.api.RewardHistory(ctx)
}

// ChatHistory liste les échanges passés avec le coach IA.
func (e *Engine) ChatHistory(ctx context.Context) ([]model.ChatExchange, error) {
	return e.api.ChatHistory(ctx)
}

// AskCoach envoie une question au coach IA (proxy sans intelligence locale).
func (e *Engine) AskCoach(ctx context.Context, query string) (*model.ChatExchange, error) {
	if len(query) == 0 {
		return nil, apperr.Validation("please type a question first")
	}
	response, err := e.api.SendChatQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return &model.ChatExchange{Query: query, Response: response}, nil
}
