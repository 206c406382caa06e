package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Yash-007/zenith-engine/internal/utils"
)

// GetChallenges dérive la vue challenges courante. Le paramètre "interests"
// est l'état URL du filtre (ids triés séparés par des virgules); sa présence
// fait de l'URL la source de vérité, recharger la même URL reproduit la même
// vue.
func (h *Handler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	if raw, ok := r.URL.Query()["interests"]; ok {
		h.engine.ApplyFilterQuery(raw[0])
	}

	view, err := h.engine.Challenges()
	if err != nil {
		// Store jamais chargé: on tente un chargement avant d'abandonner
		if refreshErr := h.engine.Refresh(r.Context()); refreshErr != nil {
			respondError(w, refreshErr)
			return
		}
		view, err = h.engine.Challenges()
		if err != nil {
			respondError(w, err)
			return
		}
	}

	utils.Success(w, view)
}

// RefreshChallenges force un rechargement intégral du snapshot
func (h *Handler) RefreshChallenges(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Refresh(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.engine.Challenges()
	if err != nil {
		respondError(w, err)
		return
	}
	utils.Success(w, view)
}

// ToggleInterest bascule une catégorie du filtre ("all" pour tout réafficher)
// et renvoie la vue re-dérivée.
func (h *Handler) ToggleInterest(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]

	if raw == "all" {
		h.engine.ToggleAll()
	} else {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			utils.Error(w, http.StatusBadRequest, "invalid category id")
			return
		}
		h.engine.Toggle(id)
	}

	view, err := h.engine.Challenges()
	if err != nil {
		respondError(w, err)
		return
	}
	utils.Success(w, view)
}
