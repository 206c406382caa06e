package interest

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// Filter est l'ensemble des catégories sélectionnées. Variante taguée plutôt
// que sentinelle numérique: un ensemble vide signifie "All" (tout afficher),
// jamais "rien" — pas d'id magique qui pourrait entrer en collision avec un
// vrai id de catégorie.
type Filter struct {
	specific map[int]struct{}
}

// All retourne le filtre "toutes catégories".
func All() Filter {
	return Filter{specific: map[int]struct{}{}}
}

// New construit un filtre à partir d'ids spécifiques.
func New(ids ...int) Filter {
	f := All()
	for _, id := range ids {
		f.specific[id] = struct{}{}
	}
	return f
}

// IsAll indique si aucune catégorie spécifique n'est sélectionnée.
func (f Filter) IsAll() bool {
	return len(f.specific) == 0
}

// Has indique si la catégorie est retenue par le filtre.
func (f Filter) Has(id int) bool {
	if f.IsAll() {
		return true
	}
	_, ok := f.specific[id]
	return ok
}

// IDs retourne les ids sélectionnés, triés. Vide pour "All".
func (f Filter) IDs() []int {
	ids := maps.Keys(f.specific)
	slices.Sort(ids)
	return ids
}

// Set remplace la sélection entière. Un ensemble vide redevient "All".
func (f *Filter) Set(ids []int) {
	f.specific = map[int]struct{}{}
	for _, id := range ids {
		f.specific[id] = struct{}{}
	}
}

// Toggle ajoute ou retire une catégorie (différence symétrique). Retirer la
// dernière sélection spécifique revient à "All".
func (f *Filter) Toggle(id int) {
	if f.specific == nil {
		f.specific = map[int]struct{}{}
	}
	if _, ok := f.specific[id]; ok {
		delete(f.specific, id)
	} else {
		f.specific[id] = struct{}{}
	}
}

// ToggleAll sélectionne "All": exclusivité mutuelle avec toute sélection
// spécifique.
func (f *Filter) ToggleAll() {
	f.specific = map[int]struct{}{}
}

// Derive retourne l'union aplatie des buckets retenus, en ordre croissant
// d'id de catégorie (l'ordre d'insertion de la map serveur ne compte pas).
func (f Filter) Derive(challenges model.ChallengesByCategory) []model.Challenge {
	categoryIDs := maps.Keys(challenges)
	slices.Sort(categoryIDs)

	var result []model.Challenge
	for _, id := range categoryIDs {
		if f.Has(id) {
			result = append(result, challenges[id]...)
		}
	}
	return result
}

// EncodeQuery encode le filtre pour l'URL: ids triés, séparés par des
// virgules. "All" s'encode en chaîne vide. L'aller-retour encode/parse est
// exact pour tout filtre.
func (f Filter) EncodeQuery() string {
	ids := f.IDs()
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// ParseQuery décode un filtre depuis l'URL. Les doublons et les segments non
// numériques sont ignorés; une chaîne vide donne "All".
func ParseQuery(raw string) Filter {
	f := All()
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id < 0 {
			continue
		}
		f.specific[id] = struct{}{}
	}
	return f
}
