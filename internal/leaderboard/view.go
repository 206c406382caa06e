package leaderboard

import (
	"strings"
	"sync"

	model "github.com/Yash-007/zenith-engine/internal/models"
	"github.com/Yash-007/zenith-engine/internal/remote"
)

// PageSize est la taille de page du classement. "Next" se désactive dès
// qu'une page revient incomplète — heuristique de fin de données, pas de
// requête de comptage total.
const PageSize = 10

// AgeRange est une tranche d'âge nommée; les bornes sont résolues côté client
// puis déléguées au serveur. Lower/Upper à 0 = non borné ("All Ages").
type AgeRange struct {
	Label string
	Value string
	Lower int
	Upper int
}

// AgeRanges sont les tranches proposées par l'UI.
var AgeRanges = []AgeRange{
	{Label: "All Ages", Value: "all"},
	{Label: "18-24", Value: "18-24", Lower: 18, Upper: 24},
	{Label: "25-34", Value: "25-34", Lower: 25, Upper: 34},
	{Label: "35-44", Value: "35-44", Lower: 35, Upper: 44},
	{Label: "45+", Value: "45+", Lower: 45, Upper: 100},
}

// ResolveAgeRange retrouve une tranche par sa valeur; inconnue => "All Ages".
func ResolveAgeRange(value string) AgeRange {
	for _, r := range AgeRanges {
		if r.Value == value {
			return r
		}
	}
	return AgeRanges[0]
}

// Query est la requête de vue côté client avant normalisation.
type Query struct {
	Page     int
	AgeRange string
	City     string
}

// Rank calcule le rang d'affichage: (page-1)*PageSize + index + 1.
// Le tri lui-même est serveur; le client ne réordonne jamais.
func Rank(page, index int) int {
	if page < 1 {
		page = 1
	}
	return (page-1)*PageSize + index + 1
}

// Session est l'état d'une vue de classement: modificateur findMe one-shot,
// jeton de séquence anti réponses périmées, dernière page appliquée. Les
// lignes sont jetables et ne rejoignent jamais l'Entity Store.
type Session struct {
	mu      sync.Mutex
	seq     uint64
	applied uint64
	findMe  bool

	rows    []model.RankedRow
	page    int
	hasNext bool
}

func NewSession() *Session {
	return &Session{}
}

// RequestFindMe arme le modificateur "find me" pour la prochaine requête
// uniquement; il n'est pas collant entre les changements de page.
func (s *Session) RequestFindMe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findMe = true
}

// Begin normalise la requête (ville majuscules, bornes d'âge résolues),
// consomme l'éventuel findMe armé et réserve un jeton de séquence.
func (s *Session) Begin(q Query) (uint64, remote.LeaderboardParams) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q.Page < 1 {
		q.Page = 1
	}
	ageRange := ResolveAgeRange(q.AgeRange)

	params := remote.LeaderboardParams{
		Page:     q.Page,
		LowerAge: ageRange.Lower,
		UpperAge: ageRange.Upper,
		City:     strings.ToUpper(strings.TrimSpace(q.City)),
	}
	if s.findMe {
		params.FetchUser = true
		s.findMe = false // one-shot
	}

	s.seq++
	return s.seq, params
}

// Apply installe une page de résultats avec les rangs calculés. Retourne
// false si une requête plus récente a déjà abouti: la réponse en retard est
// écartée au lieu d'écraser la page courante.
func (s *Session) Apply(token uint64, page int, rows []model.LeaderboardRow, currentUserID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token <= s.applied {
		return false
	}
	s.applied = token

	if page < 1 {
		page = 1
	}
	ranked := make([]model.RankedRow, len(rows))
	for i, row := range rows {
		ranked[i] = model.RankedRow{
			LeaderboardRow: row,
			Rank:           Rank(page, i),
			IsCurrentUser:  currentUserID != "" && row.ID == currentUserID,
		}
	}

	s.rows = ranked
	s.page = page
	s.hasNext = len(rows) == PageSize
	return true
}

// View retourne la dernière page appliquée.
func (s *Session) View() (rows []model.RankedRow, page int, hasNext bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows, s.page, s.hasNext
}
