package handler

import (
	"net/http"
	"sort"

	"github.com/Yash-007/zenith-engine/internal/activity"
	"github.com/Yash-007/zenith-engine/internal/utils"
)

// GetCurrentUser renvoie l'utilisateur du snapshot, en le chargeant au
// besoin. Les compteurs affichés sont la projection serveur telle quelle.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, loaded := h.engine.CurrentUser()
	if !loaded {
		if err := h.engine.Refresh(r.Context()); err != nil {
			respondError(w, err)
			return
		}
		user, _ = h.engine.CurrentUser()
	}

	utils.Success(w, user)
}

// activityBucket est un jour de la heatmap avec son niveau d'affichage.
type activityBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// GetActivity renvoie les compteurs de soumissions par jour calendaire sur la
// fenêtre annuelle, représentation creuse (pas d'entrée pour les jours vides).
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	counts, err := h.engine.ActivityHeatmap(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	buckets := make([]activityBucket, 0, len(counts))
	for date, count := range counts {
		buckets = append(buckets, activityBucket{
			Date:  date,
			Count: count,
			Level: activity.IntensityLevel(count),
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })

	utils.Success(w, buckets)
}
