package store

import (
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// Snapshot est la dernière photo connue des collections serveur. Toutes les
// dérivations (filtre, featured, agrégats) se calculent sur une copie de ce
// snapshot, jamais sur un cache local.
type Snapshot struct {
	Categories        []model.Category
	Challenges        model.ChallengesByCategory
	User              model.User
	PendingSubmission *model.Submission
	LoadedAt          time.Time
}

// Store détient le snapshot courant. Le remplacement est toujours intégral
// (pas de merge partiel): deux réponses désordonnées pour la même ressource ne
// peuvent pas produire un état déchiré, la dernière appliquée gagne. Les
// réponses périmées sont écartées par jeton de séquence.
type Store struct {
	mu      sync.RWMutex
	snap    Snapshot
	loaded  bool
	version uint64
	seq     uint64 // dernier jeton distribué
	applied uint64 // jeton de la dernière réponse appliquée
	loadErr error
}

func New() *Store {
	return &Store{}
}

// Begin réserve un jeton de séquence pour un chargement à venir. Une réponse
// ne sera appliquée que si aucun jeton plus récent n'a déjà abouti.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Load remplace le snapshot entier. Retourne false si la réponse est périmée
// (un chargement plus récent a déjà été appliqué).
func (s *Store) Load(token uint64, snap Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token <= s.applied {
		return false // réponse en retard, écartée
	}

	if snap.Challenges == nil {
		snap.Challenges = model.ChallengesByCategory{}
	}
	if snap.LoadedAt.IsZero() {
		snap.LoadedAt = time.Now()
	}

	s.snap = snap
	s.loaded = true
	s.loadErr = nil
	s.applied = token
	s.version++
	return true
}

// Fail enregistre l'échec d'un chargement. Le snapshot précédent est conservé
// (stale-while-revalidate) et le flag d'erreur reste observable: une liste
// vide et un fetch raté doivent rester distinguables.
func (s *Store) Fail(token uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token <= s.applied {
		return
	}
	s.loadErr = err
}

// Invalidate remet le store à l'état vide/chargement.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = Snapshot{}
	s.loaded = false
	s.loadErr = nil
	s.version++
}

// Snapshot retourne une copie du snapshot courant et un booléen indiquant si
// un chargement a déjà abouti.
func (s *Store) Snapshot() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Categories: slices.Clone(s.snap.Categories),
		Challenges: maps.Clone(s.snap.Challenges),
		User:       s.snap.User,
		LoadedAt:   s.snap.LoadedAt,
	}
	if s.snap.PendingSubmission != nil {
		pending := *s.snap.PendingSubmission
		snap.PendingSubmission = &pending
	}
	return snap, s.loaded
}

// Err retourne l'erreur du dernier chargement raté, nil sinon.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Version est incrémentée à chaque chargement appliqué; sert de clé de
// mémoïsation aux dérivations.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
