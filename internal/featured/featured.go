package featured

import (
	"math/rand"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// Policy choisit l'index du challenge mis en avant parmi n candidats.
// Stratégie injectable: l'aléatoire de production se remplace par un choix
// déterministe dans les tests.
type Policy interface {
	Pick(n int) int
}

type randomPolicy struct {
	r *rand.Rand
}

func (p randomPolicy) Pick(n int) int {
	return p.r.Intn(n)
}

// Random retourne la politique aléatoire uniforme (comportement historique).
func Random(seed int64) Policy {
	return randomPolicy{r: rand.New(rand.NewSource(seed))}
}

type fixedPolicy int

func (p fixedPolicy) Pick(n int) int {
	i := int(p)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// First choisit toujours le premier challenge filtré.
func First() Policy {
	return fixedPolicy(0)
}

// Fixed choisit toujours l'index donné (borné à la taille de la liste).
func Fixed(index int) Policy {
	return fixedPolicy(index)
}

// Partition sépare la liste filtrée en (featured, available). Invariant:
// les deux sorties forment une partition exacte de l'entrée — aucun challenge
// n'apparaît deux fois, aucun n'est perdu. Liste vide => featured nil.
func Partition(policy Policy, filtered []model.Challenge) (*model.Challenge, []model.Challenge) {
	if len(filtered) == 0 {
		return nil, nil
	}

	index := policy.Pick(len(filtered))
	if index < 0 || index >= len(filtered) {
		index = 0
	}

	picked := filtered[index]
	available := make([]model.Challenge, 0, len(filtered)-1)
	available = append(available, filtered[:index]...)
	available = append(available, filtered[index+1:]...)

	return &picked, available
}
