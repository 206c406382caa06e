package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Yash-007/zenith-engine/internal/utils"
)

// GetChatHistory renvoie les échanges passés avec le coach IA
func (h *Handler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.engine.ChatHistory(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.Success(w, history)
}

// AskCoach relaie une question au coach IA du backend
func (h *Handler) AskCoach(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exchange, err := h.engine.AskCoach(r.Context(), strings.TrimSpace(body.Query))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.Success(w, exchange)
}
