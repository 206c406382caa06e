package handler

import (
	"net/http"
	"strconv"

	"github.com/Yash-007/zenith-engine/internal/leaderboard"
	"github.com/Yash-007/zenith-engine/internal/utils"
)

// GetLeaderboard récupère une page de classement. Filtres délégués au
// serveur (ville normalisée, tranche d'âge résolue en bornes); le client ne
// calcule que le rang d'affichage. findMe=true ne vaut que pour cette
// requête.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if raw := query.Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			page = p
		}
	}

	if query.Get("findMe") == "true" {
		h.engine.FindMe()
	}

	view, err := h.engine.LeaderboardPage(r.Context(), leaderboard.Query{
		Page:     page,
		AgeRange: query.Get("ageRange"),
		City:     query.Get("city"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, view)
}

// GetAgeRanges expose les tranches d'âge proposées par les filtres
func (h *Handler) GetAgeRanges(w http.ResponseWriter, r *http.Request) {
	ranges := make([]map[string]interface{}, len(leaderboard.AgeRanges))
	for i, ar := range leaderboard.AgeRanges {
		ranges[i] = map[string]interface{}{
			"label": ar.Label,
			"value": ar.Value,
		}
	}
	utils.Success(w, ranges)
}
