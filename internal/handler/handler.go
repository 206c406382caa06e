package handler

import (
	"errors"
	"net/http"

	"github.com/Yash-007/zenith-engine/internal/apperr"
	"github.com/Yash-007/zenith-engine/internal/engine"
	"github.com/Yash-007/zenith-engine/internal/utils"
)

// Handler porte le moteur injecté; pas de singleton ambiant.
type Handler struct {
	engine *engine.Engine
}

func New(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// respondError mappe la taxonomie d'erreurs du moteur vers un statut HTTP.
// Les erreurs ne traversent jamais la façade sans enveloppe typée.
func respondError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		utils.Error(w, ae.StatusCode(), ae.Message)
		return
	}
	utils.Error(w, http.StatusInternalServerError, apperr.UserMessage(err))
}
