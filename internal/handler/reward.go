package handler

import (
	"net/http"

	"github.com/Yash-007/zenith-engine/internal/utils"
)

// GetRewardHistory renvoie l'historique des rachats de points
func (h *Handler) GetRewardHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.engine.RewardHistory(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.Success(w, history)
}

// RedeemPoints rachète le montant fixe de points. Le bouton côté UI doit
// rester désactivé pendant la requête; la garde du moteur couvre les
// double-clics qui passeraient quand même.
func (h *Handler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	entry, err := h.engine.RedeemPoints(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.Success(w, entry)
}
